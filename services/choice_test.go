package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var meats = []string{"beef", "chicken", "turkey", "veggie", "fish"}

func TestPromptChoice(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		want    string
		asks    int
	}{
		{"valid first try", []string{"beef"}, "beef", 1},
		{"unknown then known", []string{"unknownmeat", "beef"}, "beef", 2},
		{"two invalid then valid", []string{"invalid", "invalid", "beef"}, "beef", 3},
		{"case and space folded", []string{"  BeEf \t"}, "beef", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newScriptedConsole(tt.answers...)
			got, err := PromptChoice(context.Background(), zap.NewNop(), in, "Choose a meat", meats, ChoiceOptions{MaxAttempts: 3})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, in.asked, tt.asks)
		})
	}
}

func TestPromptChoice_ExceedsMaxAttempts(t *testing.T) {
	in := newScriptedConsole("invalid", "invalid", "invalid", "beef")

	_, err := PromptChoice(context.Background(), zap.NewNop(), in, "Choose a meat", meats, ChoiceOptions{MaxAttempts: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMaxAttemptsExceeded))

	var exceeded *AttemptsExceededError
	require.True(t, errors.As(err, &exceeded))
	assert.Equal(t, 3, exceeded.Attempts)
	assert.Equal(t, "Choose a meat", exceeded.Prompt)
	assert.Equal(t, "maximum attempts (3) exceeded for input", err.Error())
	assert.Len(t, in.asked, 3, "must stop asking after the last attempt")
}

func TestPromptChoice_UnlimitedAttempts(t *testing.T) {
	answers := make([]string, 0, 11)
	for i := 0; i < 10; i++ {
		answers = append(answers, "tofu")
	}
	answers = append(answers, "fish")
	in := newScriptedConsole(answers...)

	got, err := PromptChoice(context.Background(), zap.NewNop(), in, "Choose a meat", meats, ChoiceOptions{MaxAttempts: 0})
	require.NoError(t, err)
	assert.Equal(t, "fish", got)
	assert.Len(t, in.asked, 11)
}

func TestPromptChoice_InputError(t *testing.T) {
	in := newScriptedConsole("tofu")

	_, err := PromptChoice(context.Background(), zap.NewNop(), in, "Choose a meat", meats, ChoiceOptions{MaxAttempts: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInputExhausted))
	assert.False(t, errors.Is(err, ErrMaxAttemptsExceeded))
}

func TestPromptChoice_Confirmations(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		in := newScriptedConsole("cheddar")
		_, err := PromptChoice(context.Background(), zap.NewNop(), in, CheesePrompt, []string{"cheddar"}, ChoiceOptions{MaxAttempts: 3, Confirmations: n})
		require.NoError(t, err)
		assert.Len(t, in.said, n)
		for _, line := range in.said {
			assert.Equal(t, "Selected: cheddar", line)
		}
	}
}

func TestPromptChoice_PromptText(t *testing.T) {
	in := newScriptedConsole("beef")

	_, err := PromptChoice(context.Background(), zap.NewNop(), in, MeatPrompt, meats, ChoiceOptions{MaxAttempts: 1})
	require.NoError(t, err)
	require.Len(t, in.asked, 1)
	assert.Equal(t, "Enter the meat type: Options: [beef, chicken, turkey, veggie, fish]\n", in.asked[0])
}

func TestPromptChoice_Logging(t *testing.T) {
	log, logs := observedLogger()
	in := newScriptedConsole("unknownmeat", "beef")

	_, err := PromptChoice(context.Background(), log, in, MeatPrompt, meats, ChoiceOptions{MaxAttempts: 3})
	require.NoError(t, err)

	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 1)
	assert.Equal(t, "Invalid input 'unknownmeat'. Please choose a valid option.", warns[0].Message)

	selected := logs.FilterMessage("Selected: beef").All()
	require.Len(t, selected, 1)
	assert.Equal(t, "beef", selected[0].ContextMap()["choice"])
}

func TestPromptChoice_AllowListCaseFolded(t *testing.T) {
	in := newScriptedConsole("gluten-free")

	got, err := PromptChoice(context.Background(), zap.NewNop(), in, BunPrompt, []string{"White", "Gluten-Free"}, ChoiceOptions{MaxAttempts: 1})
	require.NoError(t, err)
	assert.Equal(t, "gluten-free", got)
	assert.True(t, strings.Contains(in.asked[0], "[White, Gluten-Free]"))
}

// cancellingConsole cancels its context after a fixed number of questions.
type cancellingConsole struct {
	*scriptedConsole
	after  int
	cancel context.CancelFunc
}

func (c *cancellingConsole) Ask(ctx context.Context, prompt string) (string, error) {
	answer, err := c.scriptedConsole.Ask(ctx, prompt)
	if len(c.asked) == c.after {
		c.cancel()
	}
	return answer, err
}

func TestPromptChoice_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	in := &cancellingConsole{
		scriptedConsole: newScriptedConsole("tofu", "tofu", "tofu", "beef"),
		after:           2,
		cancel:          cancel,
	}

	_, err := PromptChoice(ctx, zap.NewNop(), in, MeatPrompt, meats, ChoiceOptions{MaxAttempts: 0})
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	assert.Len(t, in.asked, 2, "no question after cancel")
}
