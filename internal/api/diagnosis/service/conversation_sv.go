package diagnosisService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"MedicalAssistant/internal/api/diagnosis"
	"MedicalAssistant/internal/catalog"
	"MedicalAssistant/internal/entity"
	"MedicalAssistant/pkg/classifier"
	contextPkg "MedicalAssistant/pkg/context"
	"MedicalAssistant/pkg/nlp"
	"MedicalAssistant/pkg/redis"

	"github.com/sirupsen/logrus"
)

const maxSuggestions = 3

// Engine bundles the read-only collaborators every conversation shares.
// Cache is optional.
type Engine struct {
	Catalogs   catalog.IRegistry
	Classifier classifier.IConditionClassifier
	Extractor  nlp.ISymptomExtractor
	Cache      redis.IRedis
	Log        *logrus.Logger
}

// Conversation is the state of one user's triage dialogue. Its methods are
// safe for concurrent use; turns are serialised.
type Conversation struct {
	engine *Engine

	mu      sync.Mutex
	session entity.Session
	catalog *catalog.Catalog
}

func NewConversation(ctx context.Context, engine *Engine, id, code string) (*Conversation, error) {
	if code == "" {
		code = engine.Catalogs.Default()
	}
	cat, err := engine.Catalogs.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Conversation{
		engine:  engine,
		catalog: cat,
		session: entity.Session{
			ID:           id,
			Language:     cat.Code(),
			Symptoms:     entity.NewSymptomSet(),
			State:        entity.StateAwaitingInput,
			CreatedAt:    now,
			LastActivity: now,
		},
	}, nil
}

// Session returns a copy of the current session state.
func (c *Conversation) Session() entity.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session
	s.Symptoms = entity.NewSymptomSet(c.session.Symptoms.Sorted()...)
	return s
}

func (c *Conversation) Welcome() *diagnosis.DisplayResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result(diagnosis.KindWelcome, c.catalog.Texts().Welcome)
}

// Reset clears the accumulated symptoms and greets the user again.
func (c *Conversation) Reset() *diagnosis.DisplayResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reset()
	return c.result(diagnosis.KindWelcome, c.catalog.Texts().Welcome)
}

// SelectLanguage swaps the catalog and clears the session in one step. The
// result reports the language actually served, which is the default one
// when the requested data could not be loaded.
func (c *Conversation) SelectLanguage(ctx context.Context, code string) (*diagnosis.DisplayResult, error) {
	cat, err := c.engine.Catalogs.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.catalog = cat
	c.session.Language = cat.Code()
	c.reset()

	c.engine.Log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"session_id": c.session.ID,
		"requested":  code,
		"language":   cat.Code(),
	}).Info("[Conversation.SelectLanguage] language changed")

	return c.result(diagnosis.KindLanguageChanged, cat.Texts().Welcome), nil
}

// SubmitUtterance runs one turn of the dialogue.
func (c *Conversation) SubmitUtterance(ctx context.Context, text string) *diagnosis.DisplayResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.LastActivity = time.Now()
	texts := c.catalog.Texts()

	switch c.catalog.Intent(text) {
	case entity.IntentReset:
		c.reset()
		return c.result(diagnosis.KindWelcome, texts.Welcome)
	case entity.IntentDone:
		if len(c.session.Symptoms) == 0 {
			return c.result(diagnosis.KindNoSymptomsYet, texts.NoSymptomsYet)
		}
		return c.predict(ctx)
	}

	found := c.engine.Extractor.Extract(text, c.catalog.Mapping())
	if len(found) == 0 {
		c.engine.Log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": c.session.ID,
			"language":   c.session.Language,
		}).Debug("[Conversation.SubmitUtterance] no symptoms recognised")
		return c.result(diagnosis.KindNoSymptomsFound, texts.NoSymptomsFound)
	}

	c.session.Symptoms.Merge(found)
	return c.predict(ctx)
}

func (c *Conversation) reset() {
	c.session.Symptoms = entity.NewSymptomSet()
	c.session.State = entity.StateAwaitingInput
	c.session.LastActivity = time.Now()
}

func (c *Conversation) result(kind diagnosis.ResultKind, lines ...string) *diagnosis.DisplayResult {
	return &diagnosis.DisplayResult{
		Kind:          kind,
		Language:      c.session.Language,
		Lines:         lines,
		Symptoms:      c.session.Symptoms.Sorted(),
		SeverityScore: c.catalog.SeverityScore(c.session.Symptoms),
	}
}

func (c *Conversation) predict(ctx context.Context) *diagnosis.DisplayResult {
	c.session.State = entity.StatePredicting
	defer func() { c.session.State = entity.StateAwaitingInput }()

	predictions := c.classify(ctx)
	for i := range predictions {
		predictions[i].DisplayName = c.catalog.TranslateCondition(predictions[i].Condition)
	}

	res := c.result(diagnosis.KindPrediction)
	res.Predictions = predictions
	if len(predictions) == 0 {
		res.Lines = append(res.Lines, c.catalog.Texts().NoSymptomsFound)
		return res
	}

	top := predictions[0]
	res.LowConfidence = top.Confidence < classifier.LowConfidenceThreshold
	res.NeedsMore = top.Confidence < classifier.RepromptThreshold
	res.Details = &diagnosis.ConditionDetails{
		Condition:   top.Condition,
		DisplayName: top.DisplayName,
		Description: c.catalog.Describe(top.Condition),
		Precautions: c.catalog.PrecautionsFor(top.Condition),
	}
	if res.NeedsMore {
		res.Suggestions = c.suggestions()
	}
	res.Lines = c.compose(res)

	c.engine.Log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"session_id": c.session.ID,
		"language":   c.session.Language,
		"symptoms":   res.Symptoms,
		"top":        top.Condition,
		"confidence": top.Confidence,
	}).Info("[Conversation.predict] prediction made")

	return res
}

// classify consults the prediction cache before the classifier. Cache
// failures only cost the lookup.
func (c *Conversation) classify(ctx context.Context) []entity.Prediction {
	model := c.engine.Classifier
	if c.engine.Cache == nil {
		return model.Predict(c.session.Symptoms)
	}

	key := redis.PredictionKey(string(model.Variant()), model.Report().Fingerprint, c.session.Symptoms)
	cached, err := c.engine.Cache.GetPredictions(ctx, key)
	if err == nil {
		return cached
	}
	if !errors.Is(err, redis.ErrCacheMiss) {
		c.engine.Log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("[Conversation.classify] prediction cache unavailable")
	}

	predictions := model.Predict(c.session.Symptoms)
	if err := c.engine.Cache.SetPredictions(ctx, key, predictions); err != nil {
		c.engine.Log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("[Conversation.classify] failed to cache prediction")
	}
	return predictions
}

// suggestions picks the most informative symptoms the user has not
// reported yet, written in the session language.
func (c *Conversation) suggestions() []string {
	var out []string
	for _, fi := range c.engine.Classifier.Importances() {
		if len(out) == maxSuggestions || fi.Importance <= 0 {
			break
		}
		if c.session.Symptoms.Has(fi.Symptom) {
			continue
		}
		out = append(out, c.catalog.PhraseFor(fi.Symptom))
	}
	return out
}

func (c *Conversation) compose(res *diagnosis.DisplayResult) []string {
	texts := c.catalog.Texts()

	lines := []string{texts.TopConditions}
	for _, p := range res.Predictions {
		lines = append(lines, fmt.Sprintf("• %s (%.1f%%)", p.DisplayName, p.Confidence))
	}
	if res.LowConfidence {
		lines = append(lines, texts.LowConfidence)
	}

	lines = append(lines,
		fmt.Sprintf(texts.DetailsFormat, res.Details.DisplayName),
		texts.DescriptionLabel,
		res.Details.Description,
		texts.PrecautionsLabel,
	)
	for i, p := range res.Details.Precautions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, p))
	}

	if !res.NeedsMore {
		return append(lines, texts.CheckOtherSymptoms)
	}
	lines = append(lines, texts.AddMoreSymptoms)
	if len(res.Suggestions) > 0 {
		lines = append(lines, fmt.Sprintf(texts.SuggestionsFormat, strings.Join(res.Suggestions, ", ")))
	}
	return lines
}
