package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"MedicalAssistant/internal/api/diagnosis"
	"MedicalAssistant/internal/catalog"
	websocketPkg "MedicalAssistant/pkg/websocket"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var chatLanguage string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Describe symptoms to the triage assistant in the terminal",
	Long: `Starts a diagnosis session and relays every line typed to the server.

Commands:
  :lang <code>   switch language (en, hi, te), clearing the symptoms
  :reset         start over
  :quit          end the session`,
	Run: func(cmd *cobra.Command, args []string) {
		if chatLanguage == "" {
			code, err := promptLanguage()
			exitOnError(err)
			chatLanguage = code
		}

		session, err := startSession(serverURL, chatLanguage)
		exitOnError(err)
		defer endSession(serverURL, session.ID)

		out := cmd.OutOrStdout()
		printResult(out, session.Result)

		client := websocketPkg.NewChatClient(websocketPkg.ChatURL(serverURL, session.ID), newLogger())
		defer client.Close()

		exitOnError(chatLoop(cmd.Context(), client, cmd.InOrStdin(), out))
	},
}

func init() {
	chatCmd.Flags().StringVarP(&chatLanguage, "language", "l", "", "session language (en, hi, te)")
	rootCmd.AddCommand(chatCmd)
}

func promptLanguage() (string, error) {
	languages := catalog.Supported()
	items := make([]string, len(languages))
	for i, l := range languages {
		items[i] = fmt.Sprintf("%s (%s)", l.NativeName, l.Code)
	}

	prompt := promptui.Select{
		Label: "Language",
		Items: items,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return languages[idx].Code, nil
}

// parseLine turns one typed line into a chat frame. ok is false for the
// quit command.
func parseLine(line string) (msg diagnosis.ChatMessage, ok bool) {
	line = strings.TrimSpace(line)
	switch {
	case line == ":quit":
		return diagnosis.ChatMessage{}, false
	case line == ":reset":
		return diagnosis.ChatMessage{Type: diagnosis.ChatReset}, true
	case strings.HasPrefix(line, ":lang"):
		return diagnosis.ChatMessage{Type: diagnosis.ChatLanguage, Language: strings.TrimSpace(strings.TrimPrefix(line, ":lang"))}, true
	}
	return diagnosis.ChatMessage{Type: diagnosis.ChatUtterance, Text: line}, true
}

func chatLoop(ctx context.Context, client websocketPkg.IChatClient, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		msg, ok := parseLine(scanner.Text())
		if !ok {
			return nil
		}
		if msg.Type == diagnosis.ChatUtterance && msg.Text == "" {
			fmt.Fprint(out, "> ")
			continue
		}

		turnCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		reply, err := client.Send(turnCtx, msg)
		cancel()
		if err != nil {
			return err
		}

		if reply.Error != "" {
			fmt.Fprintf(out, "! %s\n", reply.Error)
		} else {
			printResult(out, reply.Result)
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

func printResult(out io.Writer, result *diagnosis.DisplayResult) {
	if result == nil {
		return
	}
	for _, line := range result.Lines {
		fmt.Fprintln(out, line)
	}
}

func startSession(baseURL, language string) (*diagnosis.SessionResponse, error) {
	agent := fiber.Post(strings.TrimSuffix(baseURL, "/") + "/api/v1/diagnosis/sessions")
	agent.JSON(diagnosis.StartSessionRequest{Language: language})

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if code != fiber.StatusCreated {
		return nil, fmt.Errorf("start session: status %d: %s", code, body)
	}

	var session diagnosis.SessionResponse
	if err := jsoniter.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return &session, nil
}

func endSession(baseURL, id string) {
	fiber.Delete(strings.TrimSuffix(baseURL, "/") + "/api/v1/diagnosis/sessions/" + id).Bytes()
}
