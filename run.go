package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matt-g-everett/ledcube/stream"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive the configured backends until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		anim, err := a.animation()
		if err != nil {
			return err
		}
		backend, err := a.backend()
		if err != nil {
			return err
		}

		a.logger.Info("starting", "seed", a.Config.Seed, "backends", a.Config.Backends)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		stream.NewDriver(anim, backend).Run(ctx)
		return nil
	},
}
