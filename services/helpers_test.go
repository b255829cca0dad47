package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"burger-cli/config"
	"burger-cli/models"
)

var errInputExhausted = errors.New("input exhausted")

// scriptedConsole replays canned answers for Ask and ReadSecret.
type scriptedConsole struct {
	answers []string
	asked   []string
	said    []string
}

func newScriptedConsole(answers ...string) *scriptedConsole {
	return &scriptedConsole{answers: answers}
}

func (c *scriptedConsole) Ask(_ context.Context, prompt string) (string, error) {
	c.asked = append(c.asked, prompt)
	if len(c.answers) == 0 {
		return "", errInputExhausted
	}
	a := c.answers[0]
	c.answers = c.answers[1:]
	return a, nil
}

func (c *scriptedConsole) ReadSecret(ctx context.Context, prompt string) (string, error) {
	return c.Ask(ctx, prompt)
}

func (c *scriptedConsole) Say(format string, args ...any) {
	c.said = append(c.said, fmt.Sprintf(format, args...))
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func testMenu(t *testing.T) *models.Menu {
	t.Helper()
	m, err := config.DefaultMenu()
	require.NoError(t, err)
	return m
}
