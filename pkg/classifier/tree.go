package classifier

import (
	"math/rand"

	"MedicalAssistant/internal/entity"
)

// node is either a split on one binary feature or a leaf carrying the class
// distribution of the training rows that reached it.
type node struct {
	feature int
	absent  *node
	present *node
	proba   []float64
}

func (n *node) leaf() bool {
	return n.absent == nil && n.present == nil
}

func (n *node) predict(x entity.SymptomVector) []float64 {
	cur := n
	for !cur.leaf() {
		if x[cur.feature] != 0 {
			cur = cur.present
		} else {
			cur = cur.absent
		}
	}
	return cur.proba
}

type treeBuilder struct {
	x           []entity.SymptomVector
	y           []int
	nClasses    int
	nFeatures   int
	maxDepth    int
	minSplit    int
	maxFeatures int
	rng         *rand.Rand

	total      float64
	importance []float64
}

func (b *treeBuilder) fit(idx []int) *node {
	b.total = float64(len(idx))
	b.importance = make([]float64, b.nFeatures)
	return b.build(idx, 0)
}

func (b *treeBuilder) build(idx []int, depth int) *node {
	counts := b.counts(idx)
	n := len(idx)
	impurity := gini(counts, n)

	if impurity == 0 || n < b.minSplit || (b.maxDepth > 0 && depth >= b.maxDepth) {
		return b.leafNode(counts, n)
	}

	feature, gain, ok := b.bestSplit(idx, impurity)
	if !ok {
		return b.leafNode(counts, n)
	}

	absent := make([]int, 0, n)
	present := make([]int, 0, n)
	for _, i := range idx {
		if b.x[i][feature] != 0 {
			present = append(present, i)
		} else {
			absent = append(absent, i)
		}
	}

	b.importance[feature] += float64(n) / b.total * gain

	return &node{
		feature: feature,
		absent:  b.build(absent, depth+1),
		present: b.build(present, depth+1),
	}
}

// bestSplit draws features in random order and evaluates them until
// maxFeatures non-constant candidates were seen. Ties keep the first feature.
func (b *treeBuilder) bestSplit(idx []int, impurity float64) (int, float64, bool) {
	n := len(idx)
	bestFeature, bestGain := -1, -1.0
	evaluated := 0

	left := make([]int, b.nClasses)
	right := make([]int, b.nClasses)

	for _, f := range b.rng.Perm(b.nFeatures) {
		for c := range left {
			left[c], right[c] = 0, 0
		}
		nPresent := 0
		for _, i := range idx {
			if b.x[i][f] != 0 {
				right[b.y[i]]++
				nPresent++
			} else {
				left[b.y[i]]++
			}
		}
		if nPresent == 0 || nPresent == n {
			continue
		}

		nAbsent := n - nPresent
		weighted := float64(nAbsent)/float64(n)*gini(left, nAbsent) +
			float64(nPresent)/float64(n)*gini(right, nPresent)
		gain := impurity - weighted
		if gain > bestGain {
			bestFeature, bestGain = f, gain
		}

		evaluated++
		if evaluated >= b.maxFeatures {
			break
		}
	}

	if bestFeature < 0 {
		return 0, 0, false
	}
	if bestGain < 0 {
		bestGain = 0
	}
	return bestFeature, bestGain, true
}

func (b *treeBuilder) counts(idx []int) []int {
	counts := make([]int, b.nClasses)
	for _, i := range idx {
		counts[b.y[i]]++
	}
	return counts
}

func (b *treeBuilder) leafNode(counts []int, n int) *node {
	proba := make([]float64, len(counts))
	if n > 0 {
		for c, k := range counts {
			proba[c] = float64(k) / float64(n)
		}
	}
	return &node{feature: -1, proba: proba}
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, k := range counts {
		p := float64(k) / float64(n)
		sum += p * p
	}
	return 1 - sum
}
