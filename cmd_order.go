package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"burger-cli/console"
	"burger-cli/db"
	"burger-cli/services"
)

// runOrder assembles and saves one burger. Order failures are logged and do
// not fail the command, except an interrupt which exits non-zero.
func (a *app) runOrder(cmd *cobra.Command) error {
	log := a.logger
	log.Info("Welcome to the worst burger maker ever!")

	store, err := db.Open(a.cfg.Storage)
	if err != nil {
		return err
	}

	in := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
	opts := services.ChoiceOptions{
		MaxAttempts:   a.cfg.Prompt.MaxAttempts,
		Confirmations: a.cfg.Prompt.Confirmations,
	}
	secret := services.NewSecretSource(a.cfg.Secret.SaucePassword, in, log)
	picker := services.NewMenuPicker(a.menu, in, secret, opts, log)
	session := services.NewSession()

	order, err := services.NewAssembler(a.menu, picker, log).Assemble(cmd.Context(), session)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("order interrupted: %w", err)
		}
		// already logged by the assembler
		return nil
	}

	log.Info("Burger ready",
		zap.Int64("order_id", order.ID),
		zap.String("summary", order.Summary()),
		zap.Float64("price", order.Price),
		zap.String("timestamp", order.Timestamp),
	)
	services.SaveOrder(log, store, order.Summary(), session.Count())
	return nil
}
