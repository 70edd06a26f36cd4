package classifier

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"

	"MedicalAssistant/internal/entity"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
)

const (
	TopK = 3

	// LowConfidenceThreshold marks a top prediction that should be shown
	// with a warning.
	LowConfidenceThreshold = 50.0
	// RepromptThreshold marks a top prediction too weak to act on; the user
	// is asked for more symptoms.
	RepromptThreshold = 30.0

	DefaultSeed               = 42
	DefaultValidationFraction = 0.2
)

var (
	ErrEmptyTrainingTable = errors.New("classifier: training table has no samples")
	ErrVectorSize         = errors.New("classifier: sample vector does not match vocabulary")
	ErrUnknownVariant     = errors.New("classifier: unknown variant")
)

type Variant string

const (
	VariantSingle   Variant = "single"
	VariantEnsemble Variant = "ensemble"
)

type IConditionClassifier interface {
	// Predict returns at most TopK canonical conditions ordered by
	// decreasing confidence, each confidence in [0, 100].
	Predict(symptoms entity.SymptomSet) []entity.Prediction
	Vocabulary() entity.SymptomVocabulary
	Classes() []string
	Variant() Variant
	// Importances returns the vocabulary ordered by decreasing feature
	// importance.
	Importances() []FeatureImportance
	Report() TrainingReport
}

type FeatureImportance struct {
	Symptom    string  `json:"symptom"`
	Importance float64 `json:"importance"`
}

// TrainingReport summarises a fit. Fingerprint changes whenever the training
// data or the configuration would produce a different model.
type TrainingReport struct {
	Variant        Variant   `json:"variant"`
	Fingerprint    string    `json:"fingerprint"`
	Seed           int64     `json:"seed"`
	Samples        int       `json:"samples"`
	Classes        int       `json:"classes"`
	Features       int       `json:"features"`
	TrainSize      int       `json:"train_size"`
	ValidationSize int       `json:"validation_size"`
	Accuracies     []float64 `json:"accuracies"`
}

type Config struct {
	Variant            Variant
	Seed               int64
	ValidationFraction float64
	Single             ForestParams
	Members            []ForestParams
}

func DefaultConfig(variant Variant) Config {
	return Config{
		Variant:            variant,
		Seed:               DefaultSeed,
		ValidationFraction: DefaultValidationFraction,
		Single:             ForestParams{Trees: 100},
		Members: []ForestParams{
			{Trees: 100, MaxDepth: 10},
			{Trees: 150, MaxDepth: 15},
		},
	}
}

type model struct {
	vocab       entity.SymptomVocabulary
	index       map[string]int
	classes     []string
	variant     Variant
	importances []FeatureImportance
	report      TrainingReport
}

func (m *model) Vocabulary() entity.SymptomVocabulary {
	return m.vocab
}

func (m *model) Classes() []string {
	out := make([]string, len(m.classes))
	copy(out, m.classes)
	return out
}

func (m *model) Variant() Variant {
	return m.variant
}

func (m *model) Importances() []FeatureImportance {
	out := make([]FeatureImportance, len(m.importances))
	copy(out, m.importances)
	return out
}

func (m *model) Report() TrainingReport {
	return m.report
}

func (m *model) vector(symptoms entity.SymptomSet) entity.SymptomVector {
	return entity.NewSymptomVector(m.vocab, m.index, symptoms)
}

type singleClassifier struct {
	model
	forest *forest
}

func (c *singleClassifier) Predict(symptoms entity.SymptomSet) []entity.Prediction {
	return topPredictions(c.forest.predictProba(c.vector(symptoms)), c.classes, TopK)
}

type ensembleClassifier struct {
	model
	members []*forest
}

func (c *ensembleClassifier) Predict(symptoms entity.SymptomSet) []entity.Prediction {
	vec := c.vector(symptoms)
	votes := make([][]entity.Prediction, 0, len(c.members))
	for _, f := range c.members {
		votes = append(votes, topPredictions(f.predictProba(vec), c.classes, TopK))
	}
	return vote(votes, TopK)
}

// Train fits a classifier of the configured variant. The single variant is
// fit on the full table; ensemble members are fit on the training split.
// The held-out split is only used to log accuracy.
func Train(table *entity.TrainingTable, cfg Config, log *logrus.Logger) (IConditionClassifier, error) {
	if table == nil || len(table.Samples) == 0 || len(table.Vocabulary) == 0 {
		return nil, ErrEmptyTrainingTable
	}
	nFeatures := len(table.Vocabulary)

	x := make([]entity.SymptomVector, len(table.Samples))
	labels := make([]string, len(table.Samples))
	for i, s := range table.Samples {
		if len(s.Vector) != nFeatures {
			return nil, ErrVectorSize
		}
		x[i] = s.Vector
		labels[i] = s.Label
	}
	classes, y := encodeLabels(labels)

	trainIdx, validIdx := split(len(x), cfg.ValidationFraction, cfg.Seed)

	base := model{
		vocab:   table.Vocabulary,
		index:   table.Vocabulary.Index(),
		classes: classes,
		variant: cfg.Variant,
		report: TrainingReport{
			Variant:        cfg.Variant,
			Seed:           cfg.Seed,
			Samples:        len(x),
			Classes:        len(classes),
			Features:       nFeatures,
			TrainSize:      len(trainIdx),
			ValidationSize: len(validIdx),
		},
	}

	var forests []*forest
	switch cfg.Variant {
	case VariantSingle, "":
		base.variant = VariantSingle
		base.report.Variant = VariantSingle
		base.report.TrainSize = len(x)
		all := make([]int, len(x))
		for i := range all {
			all[i] = i
		}
		f := fitForest(x, y, all, len(classes), nFeatures, cfg.Single, cfg.Seed)
		forests = append(forests, f)
	case VariantEnsemble:
		if len(cfg.Members) == 0 {
			cfg.Members = DefaultConfig(VariantEnsemble).Members
		}
		for _, params := range cfg.Members {
			forests = append(forests, fitForest(x, y, trainIdx, len(classes), nFeatures, params, cfg.Seed))
		}
	default:
		return nil, ErrUnknownVariant
	}

	for _, f := range forests {
		base.report.Accuracies = append(base.report.Accuracies, f.accuracy(x, y, validIdx))
	}
	base.importances = averageImportances(forests, table.Vocabulary)
	cfg.Variant = base.variant
	base.report.Fingerprint = fingerprint(table, cfg)

	var result IConditionClassifier
	if base.variant == VariantSingle {
		result = &singleClassifier{model: base, forest: forests[0]}
	} else {
		result = &ensembleClassifier{model: base, members: forests}
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"variant":    result.Variant(),
			"samples":    len(x),
			"classes":    len(classes),
			"features":   nFeatures,
			"validation": len(validIdx),
			"accuracy":   result.Report().Accuracies,
		}).Info("[classifier.Train] model trained")
	}

	return result, nil
}

func fingerprint(table *entity.TrainingTable, cfg Config) string {
	h := xxhash.New()
	fmt.Fprintf(h, "%s|%d|%g|%+v|%+v\n", cfg.Variant, cfg.Seed, cfg.ValidationFraction, cfg.Single, cfg.Members)
	for _, id := range table.Vocabulary {
		_, _ = h.WriteString(id + ",")
	}
	for _, s := range table.Samples {
		fmt.Fprintf(h, "\n%s:%v", s.Label, s.Vector)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// encodeLabels assigns class indices in sorted label order.
func encodeLabels(labels []string) ([]string, []int) {
	seen := make(map[string]struct{}, len(labels))
	classes := make([]string, 0)
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		classes = append(classes, l)
	}
	sort.Strings(classes)

	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	y := make([]int, len(labels))
	for i, l := range labels {
		y[i] = index[l]
	}
	return classes, y
}

// split shuffles row indices with the seed and holds out ceil(n*fraction)
// rows. The training side never ends up empty.
func split(n int, fraction float64, seed int64) ([]int, []int) {
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nValid := int(math.Ceil(float64(n) * fraction))
	if fraction <= 0 || nValid >= n {
		nValid = 0
	}
	valid := append([]int(nil), perm[:nValid]...)
	train := append([]int(nil), perm[nValid:]...)
	sort.Ints(valid)
	sort.Ints(train)
	return train, valid
}

func averageImportances(forests []*forest, vocab entity.SymptomVocabulary) []FeatureImportance {
	out := make([]FeatureImportance, len(vocab))
	for i, symptom := range vocab {
		sum := 0.0
		for _, f := range forests {
			sum += f.importances[i]
		}
		out[i] = FeatureImportance{Symptom: symptom, Importance: sum / float64(len(forests))}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Importance > out[j].Importance
	})
	return out
}

// topPredictions ranks classes by probability; equal probabilities keep
// class order.
func topPredictions(proba []float64, classes []string, k int) []entity.Prediction {
	order := make([]int, len(proba))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return proba[order[i]] > proba[order[j]]
	})

	if k > len(order) {
		k = len(order)
	}
	out := make([]entity.Prediction, 0, k)
	for _, c := range order[:k] {
		conf := clampPercent(proba[c] * 100)
		out = append(out, entity.Prediction{
			Condition:   classes[c],
			DisplayName: classes[c],
			Confidence:  conf,
		})
	}
	return out
}

// vote pools the member rankings and averages the confidences each
// condition received. Conditions tied on the mean keep first-seen order.
func vote(rankings [][]entity.Prediction, k int) []entity.Prediction {
	type tally struct {
		condition string
		sum       float64
		count     int
	}

	order := make([]*tally, 0)
	byName := make(map[string]*tally)
	for _, ranking := range rankings {
		for _, p := range ranking {
			t, ok := byName[p.Condition]
			if !ok {
				t = &tally{condition: p.Condition}
				byName[p.Condition] = t
				order = append(order, t)
			}
			t.sum += p.Confidence
			t.count++
		}
	}

	out := make([]entity.Prediction, 0, len(order))
	for _, t := range order {
		out = append(out, entity.Prediction{
			Condition:   t.condition,
			DisplayName: t.condition,
			Confidence:  clampPercent(t.sum / float64(t.count)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})

	if len(out) > k {
		out = out[:k]
	}
	return out
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
