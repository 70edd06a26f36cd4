package diagnosisService

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"MedicalAssistant/internal/api/diagnosis"
	"MedicalAssistant/internal/catalog"
	contextPkg "MedicalAssistant/pkg/context"
	"MedicalAssistant/pkg/utils"

	"github.com/sirupsen/logrus"
)

const DefaultSessionTTL = 30 * time.Minute

type IDiagnosisService interface {
	Languages(ctx context.Context) []diagnosis.LanguageInfo
	StartSession(ctx context.Context, req diagnosis.StartSessionRequest) (diagnosis.SessionResponse, error)
	SubmitUtterance(ctx context.Context, sessionID string, req diagnosis.UtteranceRequest) (*diagnosis.DisplayResult, error)
	SelectLanguage(ctx context.Context, sessionID string, req diagnosis.LanguageRequest) (*diagnosis.DisplayResult, error)
	Reset(ctx context.Context, sessionID string) (*diagnosis.DisplayResult, error)
	EndSession(ctx context.Context, sessionID string) error
}

type diagnosisService struct {
	log    *logrus.Logger
	engine *Engine
	utils  utils.IUtils
	ttl    time.Duration
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*Conversation
}

func NewDiagnosisService(log *logrus.Logger, engine *Engine, utils utils.IUtils, ttl time.Duration) IDiagnosisService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &diagnosisService{
		log:      log,
		engine:   engine,
		utils:    utils,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Conversation),
	}
}

func (s *diagnosisService) Languages(ctx context.Context) []diagnosis.LanguageInfo {
	var out []diagnosis.LanguageInfo
	for _, l := range catalog.Supported() {
		out = append(out, diagnosis.LanguageInfo{
			Code:       l.Code,
			Name:       l.Name,
			NativeName: l.NativeName,
		})
	}
	return out
}

func (s *diagnosisService) StartSession(ctx context.Context, req diagnosis.StartSessionRequest) (diagnosis.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	id, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return diagnosis.SessionResponse{}, err
	}

	conv, err := NewConversation(ctx, s.engine, id, req.Language)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"language":   req.Language,
			"error":      err.Error(),
		}).Warn("Failed to start diagnosis session")
		return diagnosis.SessionResponse{}, mapCatalogError(err)
	}

	s.mu.Lock()
	s.evictIdle()
	s.sessions[id] = conv
	s.mu.Unlock()

	session := conv.Session()
	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": id,
		"language":   session.Language,
	}).Info("Diagnosis session started")

	return diagnosis.SessionResponse{
		ID:       id,
		Language: session.Language,
		State:    session.State.String(),
		Result:   conv.Welcome(),
	}, nil
}

func (s *diagnosisService) SubmitUtterance(ctx context.Context, sessionID string, req diagnosis.UtteranceRequest) (*diagnosis.DisplayResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, diagnosis.ErrInvalidUtterance
	}
	if utf8.RuneCountInString(req.Text) > diagnosis.MaxUtteranceRunes {
		return nil, diagnosis.ErrUtteranceTooLong
	}
	conv, err := s.conversation(sessionID)
	if err != nil {
		return nil, err
	}
	return conv.SubmitUtterance(ctx, req.Text), nil
}

func (s *diagnosisService) SelectLanguage(ctx context.Context, sessionID string, req diagnosis.LanguageRequest) (*diagnosis.DisplayResult, error) {
	conv, err := s.conversation(sessionID)
	if err != nil {
		return nil, err
	}
	res, err := conv.SelectLanguage(ctx, req.Language)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"language":   req.Language,
			"error":      err.Error(),
		}).Warn("Failed to change language")
		return nil, mapCatalogError(err)
	}
	return res, nil
}

func (s *diagnosisService) Reset(ctx context.Context, sessionID string) (*diagnosis.DisplayResult, error) {
	conv, err := s.conversation(sessionID)
	if err != nil {
		return nil, err
	}
	return conv.Reset(), nil
}

func (s *diagnosisService) EndSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return diagnosis.ErrSessionNotFound
	}
	delete(s.sessions, sessionID)

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"session_id": sessionID,
	}).Info("Diagnosis session ended")
	return nil
}

func (s *diagnosisService) conversation(id string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictIdle()
	conv, ok := s.sessions[id]
	if !ok {
		return nil, diagnosis.ErrSessionNotFound
	}
	return conv, nil
}

// evictIdle drops sessions idle for longer than the TTL. Callers hold s.mu.
func (s *diagnosisService) evictIdle() {
	deadline := s.now().Add(-s.ttl)
	for id, conv := range s.sessions {
		if conv.Session().LastActivity.Before(deadline) {
			delete(s.sessions, id)
			s.log.WithField("session_id", id).Debug("Evicted idle diagnosis session")
		}
	}
}

func mapCatalogError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrUnsupportedLanguage):
		return diagnosis.ErrUnsupportedLanguage
	case errors.Is(err, catalog.ErrDataUnavailable):
		return diagnosis.ErrCatalogUnavailable
	}
	return err
}
