package websocketPkg

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"MedicalAssistant/internal/api/diagnosis"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// echoServer answers every frame with a reply built from it.
func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			var msg diagnosis.ChatMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			reply := diagnosis.ChatReply{Result: &diagnosis.DisplayResult{
				Kind:  diagnosis.KindPrediction,
				Lines: []string{msg.Type + ":" + msg.Text},
			}}
			if msg.Type == diagnosis.ChatLanguage {
				reply = diagnosis.ChatReply{Error: "unsupported language"}
			}
			if err := conn.WriteJSON(reply); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestChatURL(t *testing.T) {
	tests := map[string]string{
		"http://localhost:3000":  "ws://localhost:3000/api/v1/diagnosis/sessions/abc/ws",
		"https://triage.example": "wss://triage.example/api/v1/diagnosis/sessions/abc/ws",
		"ws://already":           "ws://already/api/v1/diagnosis/sessions/abc/ws",
	}
	for base, want := range tests {
		if got := ChatURL(base, "abc"); got != want {
			t.Errorf("ChatURL(%q) = %q, want %q", base, got, want)
		}
	}
}

func TestSendDialsLazily(t *testing.T) {
	srv := echoServer(t)
	client := NewChatClient("ws"+strings.TrimPrefix(srv.URL, "http"), quietLogger())
	defer client.Close()

	if client.IsConnected() {
		t.Fatal("client connected before first Send")
	}

	reply, err := client.Send(context.Background(), diagnosis.ChatMessage{Type: diagnosis.ChatUtterance, Text: "itching"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if reply.Result == nil || reply.Result.Lines[0] != "utterance:itching" {
		t.Errorf("reply = %+v", reply)
	}
	if !client.IsConnected() {
		t.Error("client not connected after Send")
	}

	reply, err = client.Send(context.Background(), diagnosis.ChatMessage{Type: diagnosis.ChatLanguage, Language: "fr"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if reply.Error != "unsupported language" || reply.Result != nil {
		t.Errorf("error reply = %+v", reply)
	}
}

func TestSendWithoutServer(t *testing.T) {
	srv := echoServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	srv.Close()

	client := NewChatClient(url, quietLogger())
	_, err := client.Send(context.Background(), diagnosis.ChatMessage{Type: diagnosis.ChatReset})
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("Send() error = %v, want ErrNotConnected", err)
	}
}

func TestSendCancelledContext(t *testing.T) {
	client := NewChatClient("ws://127.0.0.1:1", quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Send(ctx, diagnosis.ChatMessage{Type: diagnosis.ChatReset}); !errors.Is(err, context.Canceled) {
		t.Errorf("Send() error = %v, want context.Canceled", err)
	}
}
