package main

import (
	"fmt"
	"image"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	stepspiral "github.com/gogpu/stepspiral"
	"github.com/gogpu/stepspiral/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		goal   float64
		out    string
		size   int
		active bool
		steps  int
		locale string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the goal spiral or the progress ring as PNG",
		Long: `Render the goal-setting spiral for --goal as a PNG image.
With --steps, render the tracking ring for that many steps against the goal instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("goal") {
				goal = a.cfg.Spiral.InitialGoal
			}
			if !cmd.Flags().Changed("locale") {
				locale = a.cfg.Watch.Locale
			}

			opts := []render.Option{
				render.WithSize(size),
				render.WithActive(active),
				render.WithLocale(render.ParseLocale(locale)),
			}

			var img *image.RGBA
			if cmd.Flags().Changed("steps") {
				img = render.Ring(stepspiral.DeriveRing(steps, int(goal)), opts...)
			} else {
				model, err := stepspiral.NewModel(a.cfg.Spiral)
				if err != nil {
					return err
				}
				img = render.Spiral(model.DeriveState(goal), opts...)
			}

			if err := render.SavePNG(out, img); err != nil {
				return err
			}
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s wrote %s (%dx%d)\n", green("✓"), out, img.Bounds().Dx(), img.Bounds().Dy())
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&goal, "goal", 0, "daily step goal (default from config)")
	f.StringVarP(&out, "out", "o", "stepspiral.png", "output PNG file")
	f.IntVar(&size, "size", 396, "image width and height in pixels")
	f.BoolVar(&active, "active", false, "draw the ripple shown while the crown turns")
	f.IntVar(&steps, "steps", 0, "render the progress ring for this step count")
	f.StringVar(&locale, "locale", "", "locale for step counts (default from config)")
	return cmd
}
