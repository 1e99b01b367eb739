package main

import (
	"os"
	"os/signal"
	"syscall"

	"growth_decay/internal/console"
	"growth_decay/internal/logger"
	"growth_decay/internal/service"

	"github.com/spf13/cobra"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive calculator menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentSettings()
			// stdout belongs to the menu
			log := logger.GetTo(cfg.LogLevel, os.Stderr)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			services := service.NewService(cfg.limits())
			return console.New(services, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run(ctx)
		},
	}
}
