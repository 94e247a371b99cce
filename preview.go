package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matt-g-everett/ledcube/preview"
	"github.com/matt-g-everett/ledcube/stream"
)

// Room needed for two rows of four layers plus the inspector panel.
const (
	previewWidth  = 80
	previewHeight = 34
)

var (
	flagHardware  bool
	flagAnimation string
	flagFPS       float64
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the cube in the terminal with an inspector",
	Long: `Preview runs the playlist (or a single animation) and draws every
layer of the cube in the terminal. The render loop and the inspector share
the animation tree: r resets it, p pauses the loop, q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return fmt.Errorf("preview needs a terminal on stdout")
		}
		if w, h, err := term.GetSize(fd); err == nil && (w < previewWidth || h < previewHeight) {
			fmt.Fprintf(cmd.ErrOrStderr(), "terminal is %dx%d, the preview wants at least %dx%d\n", w, h, previewWidth, previewHeight)
		}

		// Logging would scribble over the alternate screen.
		logOutput = io.Discard

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		var anim stream.Animation
		if flagAnimation != "" {
			anim, err = stream.NewAnimation(flagAnimation, rand.New(rand.NewSource(a.Config.Seed)))
			if err == nil && flagFPS > 0 {
				anim = stream.WithFPS(anim, flagFPS)
			}
		} else {
			anim, err = a.animation()
		}
		if err != nil {
			return err
		}

		var out stream.Backend
		if flagHardware {
			if out, err = a.backend(); err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return preview.Run(ctx, anim, out)
	},
}

func init() {
	previewCmd.Flags().BoolVar(&flagHardware, "hardware", false, "Also drive the configured backends")
	previewCmd.Flags().StringVar(&flagAnimation, "animation", "", "Preview one catalog animation instead of the playlist")
	previewCmd.Flags().Float64Var(&flagFPS, "fps", 30, "Frame rate for --animation (0 = unlimited)")
}
