package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var ErrMaxAttemptsExceeded = errors.New("maximum attempts exceeded")

// Asker is the console side of a prompt.
type Asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
	Say(format string, args ...any)
}

type ChoiceOptions struct {
	MaxAttempts   int // <= 0 keeps asking until a valid answer or input error
	Confirmations int
}

// AttemptsExceededError is returned by PromptChoice when every attempt was invalid.
type AttemptsExceededError struct {
	Prompt   string
	Attempts int
}

func (e *AttemptsExceededError) Error() string {
	return fmt.Sprintf("maximum attempts (%d) exceeded for input", e.Attempts)
}

func (e *AttemptsExceededError) Is(target error) bool {
	return target == ErrMaxAttemptsExceeded
}

// PromptChoice asks until the trimmed, lower-cased answer is in allowed.
// The returned value is always lower case. A done ctx ends the loop.
func PromptChoice(ctx context.Context, log *zap.Logger, in Asker, prompt string, allowed []string, opts ChoiceOptions) (string, error) {
	valid := make(map[string]bool, len(allowed))
	for _, c := range allowed {
		valid[strings.ToLower(strings.TrimSpace(c))] = true
	}
	question := fmt.Sprintf("%s Options: [%s]\n", prompt, strings.Join(allowed, ", "))

	for attempt := 1; opts.MaxAttempts <= 0 || attempt <= opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		answer, err := in.Ask(ctx, question)
		if err != nil {
			return "", fmt.Errorf("read choice: %w", err)
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if valid[answer] {
			log.Info("Selected: "+answer, zap.String("choice", answer))
			for i := 0; i < opts.Confirmations; i++ {
				in.Say("Selected: %s", answer)
			}
			return answer, nil
		}
		log.Warn(fmt.Sprintf("Invalid input '%s'. Please choose a valid option.", answer),
			zap.Int("attempt", attempt))
	}
	return "", &AttemptsExceededError{Prompt: prompt, Attempts: opts.MaxAttempts}
}
