package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"burger-cli/config"
	"burger-cli/models"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// After the first signal, restore default handling so a second Ctrl-C kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "burger:", err)
		os.Exit(1)
	}
}

// app is the state shared by every command, filled in PersistentPreRunE.
type app struct {
	verbose       bool
	menuFile      string
	outDir        string
	maxAttempts   int
	confirmations int

	cfg    *config.Config
	menu   *models.Menu
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "burger",
		Short: "The worst burger maker ever",
		Long: `Interactively order one burger: pick a bun, a meat and a cheese,
unlock the secret sauce, and get a price with two rounds of 10% tax.

The order summary is written to <out>/burger.txt and the order count to
<out>/burger_count.txt.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOrder(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.menuFile, "menu", "", "YAML menu file (default: built-in menu, or BURGER_MENU_FILE)")
	flags.StringVar(&a.outDir, "out", "", "output directory (default: ./tmp, or BURGER_OUTPUT_DIR)")
	flags.IntVar(&a.maxAttempts, "max-attempts", 0, "invalid answers allowed per question, 0 or less to never give up (default 3, or BURGER_MAX_ATTEMPTS)")
	flags.IntVar(&a.confirmations, "confirmations", 0, `"Selected" lines printed per accepted answer (default 1, or BURGER_CONFIRMATIONS)`)

	root.AddCommand(newMenuCmd(a), newPriceCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("menu") {
		cfg.MenuFile = a.menuFile
	}
	if flags.Changed("out") {
		cfg.Storage.Dir = a.outDir
	}
	if flags.Changed("max-attempts") {
		cfg.Prompt.MaxAttempts = a.maxAttempts
	}
	if flags.Changed("confirmations") {
		cfg.Prompt.Confirmations = a.confirmations
	}
	if a.verbose {
		cfg.Debug = true
	}
	a.cfg = cfg

	a.logger, err = newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.menu, err = config.LoadMenu(cfg.MenuFile)
	if err != nil {
		return fmt.Errorf("menu: %w", err)
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zc.DisableCaller = true
	zc.DisableStacktrace = true
	zc.Sampling = nil
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}
