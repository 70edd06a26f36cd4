package classifier

import (
	"math"
	"math/rand"

	"MedicalAssistant/internal/entity"
)

type ForestParams struct {
	Trees           int `json:"trees" validate:"min=1"`
	MaxDepth        int `json:"max_depth" validate:"min=0"`
	MinSamplesSplit int `json:"min_samples_split" validate:"min=0"`
	// MaxFeatures is the number of candidate features per split; 0 means
	// the square root of the vocabulary size.
	MaxFeatures int `json:"max_features" validate:"min=0"`
}

// forest is a bagged set of decision trees. Its probability output is the
// mean of the leaf distributions reached in every tree.
type forest struct {
	trees       []*node
	nClasses    int
	prior       []float64
	importances []float64
}

func fitForest(x []entity.SymptomVector, y []int, idx []int, nClasses, nFeatures int, params ForestParams, seed int64) *forest {
	rng := rand.New(rand.NewSource(seed))

	maxFeatures := params.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = int(math.Sqrt(float64(nFeatures)))
	}
	if maxFeatures < 1 {
		maxFeatures = 1
	}
	minSplit := params.MinSamplesSplit
	if minSplit < 2 {
		minSplit = 2
	}
	nTrees := params.Trees
	if nTrees < 1 {
		nTrees = 1
	}

	f := &forest{
		trees:       make([]*node, 0, nTrees),
		nClasses:    nClasses,
		prior:       make([]float64, nClasses),
		importances: make([]float64, nFeatures),
	}

	for _, i := range idx {
		f.prior[y[i]]++
	}
	for c := range f.prior {
		f.prior[c] /= float64(len(idx))
	}

	for t := 0; t < nTrees; t++ {
		sample := make([]int, len(idx))
		for i := range sample {
			sample[i] = idx[rng.Intn(len(idx))]
		}

		b := &treeBuilder{
			x:           x,
			y:           y,
			nClasses:    nClasses,
			nFeatures:   nFeatures,
			maxDepth:    params.MaxDepth,
			minSplit:    minSplit,
			maxFeatures: maxFeatures,
			rng:         rand.New(rand.NewSource(rng.Int63())),
		}
		f.trees = append(f.trees, b.fit(sample))

		total := 0.0
		for _, v := range b.importance {
			total += v
		}
		if total > 0 {
			for i, v := range b.importance {
				f.importances[i] += v / total
			}
		}
	}

	for i := range f.importances {
		f.importances[i] /= float64(nTrees)
	}

	return f
}

// predictProba returns the class distribution for x. A vector without any
// known symptom carries no evidence, so the class prior is returned.
func (f *forest) predictProba(x entity.SymptomVector) []float64 {
	out := make([]float64, f.nClasses)
	if x.Active() == 0 {
		copy(out, f.prior)
		return out
	}

	for _, t := range f.trees {
		for c, p := range t.predict(x) {
			out[c] += p
		}
	}
	for c := range out {
		out[c] /= float64(len(f.trees))
	}
	return out
}

func (f *forest) predict(x entity.SymptomVector) int {
	proba := f.predictProba(x)
	best := 0
	for c, p := range proba {
		if p > proba[best] {
			best = c
		}
	}
	return best
}

func (f *forest) accuracy(x []entity.SymptomVector, y []int, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	correct := 0
	for _, i := range idx {
		if f.predict(x[i]) == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(idx))
}
