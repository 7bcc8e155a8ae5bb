package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/smartparking/pkg/llm"
)

const (
	SystemPrompt = "Du bist ein hilfsbereiter Assistent."
	InputPrompt  = "Du: "
	ReplyPrefix  = "KI: "
	ErrorPrefix  = "Fehler: "
)

// ExitKeywords end the session when entered in any letter case.
var ExitKeywords = []string{"exit", "quit", "stop"}

// IsExit reports whether the lowercased line equals an exit keyword.
// Surrounding whitespace makes it ordinary input, and no case folding beyond
// lowercasing applies ("ſtop" is not "stop").
func IsExit(line string) bool {
	lower := strings.ToLower(line)
	for _, k := range ExitKeywords {
		if lower == k {
			return true
		}
	}
	return false
}

// Session relays console input to a ChatModel, one independent turn per line.
type Session struct {
	model  llm.ChatModel
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
	system string
}

type Option func(*Session)

// WithLogger sets the logger used for failed turns. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithSystemPrompt overrides the assistant persona sent with every turn.
func WithSystemPrompt(p string) Option {
	return func(s *Session) { s.system = p }
}

func NewSession(model llm.ChatModel, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		model:  model,
		in:     bufio.NewReader(in),
		out:    out,
		logger: zap.NewNop(),
		system: SystemPrompt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until an exit keyword or end of input. A failed turn is reported
// and the loop continues, except for authentication failures, which are
// returned because every later turn would fail the same way.
func (s *Session) Run(ctx context.Context) error {
	for {
		if _, err := io.WriteString(s.out, InputPrompt); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}
		line, ok, err := s.readLine()
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if !ok {
			// EOF: finish the prompt line and stop.
			_, _ = io.WriteString(s.out, "\n")
			return nil
		}
		if IsExit(line) {
			return nil
		}
		if err := s.turn(ctx, line); err != nil {
			return err
		}
	}
}

// readLine returns the next line without its "\n" or "\r\n" terminator.
// Lines have no length limit. ok is false once input is exhausted.
func (s *Session) readLine() (line string, ok bool, err error) {
	line, err = s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}

func (s *Session) turn(ctx context.Context, line string) error {
	turnID := uuid.NewString()
	s.logger.Debug("dispatching turn", zap.String("turn_id", turnID), zap.Int("chars", len(line)))

	answer, err := s.model.Ask(ctx, s.system, line)
	if err != nil {
		s.logger.Error("turn failed", zap.String("turn_id", turnID), zap.Error(err))
		if _, werr := fmt.Fprintf(s.out, "%s%v\n", ErrorPrefix, err); werr != nil {
			return fmt.Errorf("write error: %w", werr)
		}
		if llm.IsAuthentication(err) {
			return err
		}
		return nil
	}
	if _, err := fmt.Fprintf(s.out, "%s%s\n", ReplyPrefix, answer); err != nil {
		return fmt.Errorf("write reply: %w", err)
	}
	return nil
}
