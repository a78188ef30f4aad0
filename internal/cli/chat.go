package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/shopsense/shopsense/internal/config"
	"github.com/shopsense/shopsense/internal/lexicon"
	"github.com/shopsense/shopsense/internal/llm"
	"github.com/shopsense/shopsense/internal/llm/anthropic"
	"github.com/shopsense/shopsense/internal/llm/openai"
	"github.com/shopsense/shopsense/internal/session"
)

var (
	promptStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	actionStyle    = lipgloss.NewStyle().Faint(true)
)

func newChatCommand(logger *slog.Logger) *cobra.Command {
	var (
		message    string
		timeoutSec int
	)

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the shopping assistant",
		Long:  "Interactive preference-collecting conversation; pass --message for a single turn.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			responder, err := buildResponder(cfg, logger)
			if err != nil {
				return err
			}

			store := lexicon.NewStore(nil, logger)
			if cfg.LexiconPath != "" {
				// Startup falls back to the built-in lists when the
				// override file is broken.
				_ = store.Reload(cfg.LexiconPath)
			}

			sess := session.New(responder, store, logger, session.Config{
				FuzzyThreshold: cfg.FuzzyMatchThreshold,
			})

			text := strings.TrimSpace(message)
			if text == "" && len(args) > 0 {
				text = strings.TrimSpace(strings.Join(args, " "))
			}
			if text != "" {
				ctx, cancel := context.WithTimeout(cmd.Context(), boundedTimeout(timeoutSec, cfg.ChatTimeoutSec))
				defer cancel()
				result := sess.Turn(ctx, text)
				printReply(cmd, result)
				printRecord(cmd, sess)
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			group, groupCtx := errgroup.WithContext(ctx)
			if cfg.LexiconPath != "" && cfg.LexiconWatch {
				watcher, err := lexicon.NewWatcher(cfg.LexiconPath, store, logger)
				if err != nil {
					return err
				}
				group.Go(func() error { return watcher.Start(groupCtx) })
			}
			group.Go(func() error {
				defer stop()
				return runInteractive(groupCtx, cmd, sess, boundedTimeout(timeoutSec, cfg.ChatTimeoutSec))
			})
			if err := group.Wait(); err != nil {
				return err
			}

			printRecord(cmd, sess)
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "single message to send (non-interactive mode)")
	cmd.Flags().IntVar(&timeoutSec, "timeout-sec", 0, "per-turn timeout in seconds (defaults to SHOPSENSE_CHAT_TIMEOUT_SECONDS)")
	return cmd
}

// runInteractive is the line-oriented turn loop. It ends on stop/exit/quit,
// stdin EOF, or context cancellation.
func runInteractive(ctx context.Context, cmd *cobra.Command, sess *session.Session, timeout time.Duration) error {
	cmd.Println("Welcome to the ShopSense shopping assistant! (Type 'stop' to end the conversation.)")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		if ctx.Err() != nil {
			return nil
		}
		cmd.Print(promptStyle.Render("you>") + " ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		switch strings.ToLower(text) {
		case "stop", "exit", "quit":
			return nil
		}

		turnCtx, cancel := context.WithTimeout(ctx, timeout)
		result := sess.Turn(turnCtx, text)
		cancel()
		printReply(cmd, result)
	}

	return scanner.Err()
}

func printReply(cmd *cobra.Command, result session.TurnResult) {
	lines := strings.Split(strings.TrimSpace(result.Reply), "\n")
	for index, line := range lines {
		line = strings.TrimRight(line, "\r")
		if index == 0 {
			cmd.Printf("%s %s\n", assistantStyle.Render("assistant>"), line)
			continue
		}
		cmd.Printf("           %s\n", line)
	}
	cmd.Println(actionStyle.Render("[" + string(result.Action) + "]"))
}

func printRecord(cmd *cobra.Command, sess *session.Session) {
	payload, err := json.MarshalIndent(sess.Record(), "", "  ")
	if err != nil {
		cmd.PrintErrf("could not render preferences: %v\n", err)
		return
	}
	cmd.Println(headingStyle.Render("Final user preferences:"))
	cmd.Println(string(payload))
}

func buildResponder(cfg config.Config, logger *slog.Logger) (llm.Responder, error) {
	timeout := time.Duration(cfg.LLMTimeoutSec) * time.Second
	switch strings.ToLower(strings.TrimSpace(cfg.LLMProvider)) {
	case "", "openai":
		return openai.New(openai.Config{
			APIKey:  cfg.LLMAPIKey,
			BaseURL: cfg.LLMBaseURL,
			Model:   cfg.LLMModel,
			Timeout: timeout,
		}, logger), nil
	case "anthropic":
		return anthropic.New(anthropic.Config{
			APIKey:  cfg.LLMAPIKey,
			BaseURL: cfg.LLMBaseURL,
			Model:   cfg.LLMModel,
			Timeout: timeout,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}

func boundedTimeout(flagSec, configSec int) time.Duration {
	seconds := flagSec
	if seconds < 1 {
		seconds = configSec
	}
	if seconds < 1 {
		seconds = 90
	}
	if seconds > 600 {
		seconds = 600
	}
	return time.Duration(seconds) * time.Second
}
