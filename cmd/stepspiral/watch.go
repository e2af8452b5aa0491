package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/stepspiral/internal/haptic"
	"github.com/gogpu/stepspiral/internal/simulate"
	"github.com/gogpu/stepspiral/internal/tui"
	"github.com/gogpu/stepspiral/render"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		seed  int64
		sound bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the watch face in the terminal",
		Long: `Pick a daily goal by turning the mouse wheel or the arrow keys, then drag
down or press Enter to confirm. The tracking screen follows a simulated pedometer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := a.cfg.Watch
			if cmd.Flags().Changed("seed") {
				w.Seed = seed
			}
			if cmd.Flags().Changed("sound") {
				w.Sound = sound
			}

			player := haptic.New(w.Sound)
			defer player.Close()

			face, err := tui.New(a.cfg.Spiral, simulate.NewPedometer(w.Seed, w.Cadence, w.Interval), tui.Options{
				CellHeight: w.CellHeight,
				Locale:     render.ParseLocale(w.Locale),
				Player:     player,
			})
			if err != nil {
				return err
			}

			ts, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := ts.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return face.Run(ctx, ts)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&seed, "seed", 1, "simulated walking pattern (default from config)")
	f.BoolVar(&sound, "sound", false, "play crown tick and confirmation tones")
	return cmd
}
