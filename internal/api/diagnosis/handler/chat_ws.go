package diagnosisHandler

import (
	"context"
	"errors"
	"time"

	"MedicalAssistant/internal/api/diagnosis"
	contextPkg "MedicalAssistant/pkg/context"
	"MedicalAssistant/pkg/log"
	"MedicalAssistant/pkg/response"

	"github.com/gofiber/websocket/v2"
)

const (
	chatReadTimeout  = 10 * time.Minute
	chatWriteTimeout = 10 * time.Second
)

// handleChatWebSocket serves one session as a chat. Every client frame is
// answered with exactly one ChatReply.
func (h *DiagnosisHandler) handleChatWebSocket(c *websocket.Conn) {
	sessionID := c.Params("id")
	requestID, _ := c.Locals("X-Request-ID").(string)
	ctx := contextPkg.WithRequestID(context.Background(), requestID)

	logger := h.log.WithFields(log.Fields{
		"request_id": requestID,
		"session_id": sessionID,
	})
	logger.Info("Diagnosis chat client connected")
	defer logger.Info("Diagnosis chat client disconnected")

	for {
		if err := c.SetReadDeadline(time.Now().Add(chatReadTimeout)); err != nil {
			logger.Errorf("Error setting read deadline: %v", err)
			return
		}

		var msg diagnosis.ChatMessage
		if err := c.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warnf("Diagnosis chat error: %v", err)
			}
			return
		}

		reply := h.chatTurn(ctx, sessionID, msg)

		if err := c.SetWriteDeadline(time.Now().Add(chatWriteTimeout)); err != nil {
			logger.Errorf("Error setting write deadline: %v", err)
			return
		}
		if err := c.WriteJSON(reply); err != nil {
			logger.Errorf("Error writing chat reply: %v", err)
			return
		}

		if errors.Is(reply.err, diagnosis.ErrSessionNotFound) {
			return
		}
	}
}

type chatReply struct {
	diagnosis.ChatReply
	err error
}

func (h *DiagnosisHandler) chatTurn(ctx context.Context, sessionID string, msg diagnosis.ChatMessage) chatReply {
	if err := h.validator.Struct(msg); err != nil {
		return chatReply{ChatReply: diagnosis.ChatReply{Error: "Validation failed: " + err.Error()}, err: err}
	}

	var (
		result *diagnosis.DisplayResult
		err    error
	)
	switch msg.Type {
	case diagnosis.ChatUtterance:
		result, err = h.diagnosisService.SubmitUtterance(ctx, sessionID, diagnosis.UtteranceRequest{Text: msg.Text})
	case diagnosis.ChatLanguage:
		req := diagnosis.LanguageRequest{Language: msg.Language}
		if err = h.validator.Struct(req); err == nil {
			result, err = h.diagnosisService.SelectLanguage(ctx, sessionID, req)
		}
	case diagnosis.ChatReset:
		result, err = h.diagnosisService.Reset(ctx, sessionID)
	}

	if err != nil {
		if _, ok := response.StatusOf(err); !ok {
			h.log.WithFields(log.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Diagnosis chat turn failed")
		}
		return chatReply{ChatReply: diagnosis.ChatReply{Error: err.Error()}, err: err}
	}
	return chatReply{ChatReply: diagnosis.ChatReply{Result: result}}
}
