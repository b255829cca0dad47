package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"burger-cli/models"
)

// Prompts shown for each choice.
const (
	BunPrompt    = "What kind of bun would you like?"
	MeatPrompt   = "Enter the meat type:"
	CheesePrompt = "What kind of cheese?"
)

// Picker supplies the four order components in turn.
type Picker interface {
	Bun(ctx context.Context) (string, error)
	Meat(ctx context.Context) (string, error)
	Sauce(ctx context.Context) (string, error)
	Cheese(ctx context.Context) (string, error)
}

type PasswordSource interface {
	Password(ctx context.Context) (string, error)
}

// MenuPicker asks the console for each component, validating against the menu.
type MenuPicker struct {
	menu   *models.Menu
	in     Asker
	secret PasswordSource
	opts   ChoiceOptions
	log    *zap.Logger
}

func NewMenuPicker(menu *models.Menu, in Asker, secret PasswordSource, opts ChoiceOptions, log *zap.Logger) *MenuPicker {
	return &MenuPicker{menu: menu, in: in, secret: secret, opts: opts, log: log}
}

func (p *MenuPicker) Bun(ctx context.Context) (string, error) {
	return PromptChoice(ctx, p.log, p.in, BunPrompt, p.menu.Buns, p.opts)
}

func (p *MenuPicker) Meat(ctx context.Context) (string, error) {
	return PromptChoice(ctx, p.log, p.in, MeatPrompt, p.menu.Meats, p.opts)
}

func (p *MenuPicker) Cheese(ctx context.Context) (string, error) {
	return PromptChoice(ctx, p.log, p.in, CheesePrompt, p.menu.Cheeses, p.opts)
}

// Sauce is only served once the password is known.
func (p *MenuPicker) Sauce(ctx context.Context) (string, error) {
	pwd, err := p.secret.Password(ctx)
	if err != nil {
		return "", fmt.Errorf("secret sauce: %w", err)
	}
	p.log.Info("Secret sauce password accepted", zap.String("password", MaskSecret(pwd)))
	return FormatSauce(p.menu.Sauce), nil
}

// FormatSauce normalises a recipe of " and "-separated ingredients.
func FormatSauce(recipe string) string {
	parts := strings.Split(recipe, " and ")
	out := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, " and ")
}
