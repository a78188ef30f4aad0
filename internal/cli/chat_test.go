package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/shopsense/shopsense/internal/config"
	"github.com/shopsense/shopsense/internal/lexicon"
	"github.com/shopsense/shopsense/internal/llm"
	"github.com/shopsense/shopsense/internal/session"
)

type stubResponder struct {
	reply string
}

func (s *stubResponder) Reply(ctx context.Context, input llm.MessageInput) (string, error) {
	if input.SystemPrompt != "" {
		return s.reply, nil
	}
	return "{}", nil
}

func newTestCommand(input string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd, out
}

func TestRunInteractive_TurnsAndStops(t *testing.T) {
	responder := &stubResponder{reply: "Here are some laptops to consider."}
	sess := session.New(responder, lexicon.NewStore(nil, nil), nil, session.Config{})
	cmd, out := newTestCommand("I want a dell laptop under 60000\nstop\n")

	if err := runInteractive(context.Background(), cmd, sess, time.Minute); err != nil {
		t.Fatal(err)
	}

	rendered := out.String()
	if !strings.Contains(rendered, "Here are some laptops to consider.") {
		t.Errorf("reply missing from output:\n%s", rendered)
	}
	if !strings.Contains(rendered, "recommend") {
		t.Errorf("action tag missing from output:\n%s", rendered)
	}
	record := sess.Record()
	if record.Category == nil || *record.Category != "laptop" {
		t.Errorf("category = %v", record.Category)
	}
}

func TestRunInteractive_SkipsBlankLinesAndExitsOnEOF(t *testing.T) {
	responder := &stubResponder{reply: "Noted."}
	sess := session.New(responder, lexicon.NewStore(nil, nil), nil, session.Config{})
	cmd, _ := newTestCommand("\n   \n")

	if err := runInteractive(context.Background(), cmd, sess, time.Minute); err != nil {
		t.Fatal(err)
	}
	if len(sess.Record().BrandPreferences) != 0 {
		t.Error("blank input produced preference updates")
	}
}

func TestRunInteractive_ExitAliases(t *testing.T) {
	for _, word := range []string{"stop", "EXIT", "Quit"} {
		responder := &stubResponder{reply: "hello"}
		sess := session.New(responder, lexicon.NewStore(nil, nil), nil, session.Config{})
		cmd, _ := newTestCommand(word + "\n")
		if err := runInteractive(context.Background(), cmd, sess, time.Minute); err != nil {
			t.Errorf("%q: %v", word, err)
		}
	}
}

func TestBuildResponder_UnknownProvider(t *testing.T) {
	_, err := buildResponder(config.Config{LLMProvider: "bard"}, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "bard") {
		t.Errorf("error should name the provider: %v", err)
	}
}

func TestBoundedTimeout(t *testing.T) {
	if got := boundedTimeout(0, 90); got != 90*time.Second {
		t.Errorf("config fallback = %v", got)
	}
	if got := boundedTimeout(30, 90); got != 30*time.Second {
		t.Errorf("flag wins = %v", got)
	}
	if got := boundedTimeout(10000, 90); got != 600*time.Second {
		t.Errorf("cap = %v", got)
	}
	if got := boundedTimeout(0, 0); got != 90*time.Second {
		t.Errorf("hard default = %v", got)
	}
}
