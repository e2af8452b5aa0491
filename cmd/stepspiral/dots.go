package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	stepspiral "github.com/gogpu/stepspiral"
	"github.com/gogpu/stepspiral/render"
)

// dotsReport is the JSON form of a derived spiral.
type dotsReport struct {
	Goal          float64     `json:"goal"`
	Layer         int         `json:"layer"`
	LayerProgress float64     `json:"layer_progress"`
	VisibleLayers int         `json:"visible_layers"`
	FillFraction  float64     `json:"fill_fraction"`
	TotalDots     int         `json:"total_dots"`
	FilledDots    int         `json:"filled_dots"`
	OuterRadius   float64     `json:"outer_radius"`
	ZoomScale     float64     `json:"zoom_scale"`
	Color         string      `json:"color"`
	Dots          []dotReport `json:"dots"`
}

type dotReport struct {
	Index  int     `json:"index"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Angle  float64 `json:"angle"`
	Radius float64 `json:"radius"`
	Layer  int     `json:"layer"`
	Filled bool    `json:"filled"`
	Color  string  `json:"color"`
}

func hexString(c stepspiral.RGBA) string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

func newDotsReport(s stepspiral.SpiralState) dotsReport {
	r := dotsReport{
		Goal:          s.Goal,
		Layer:         s.CurrentLayer,
		LayerProgress: s.LayerProgress,
		VisibleLayers: s.VisibleLayers,
		FillFraction:  s.FillFraction,
		TotalDots:     s.TotalDots,
		FilledDots:    s.FilledDots,
		OuterRadius:   s.OuterRadius,
		ZoomScale:     s.ZoomScale,
		Color:         hexString(s.ProgressColor),
		Dots:          make([]dotReport, len(s.Dots)),
	}
	for i, d := range s.Dots {
		r.Dots[i] = dotReport{
			Index:  d.Index,
			X:      d.Position.X,
			Y:      d.Position.Y,
			Angle:  d.Angle,
			Radius: d.Radius,
			Layer:  d.Layer,
			Filled: d.Filled,
			Color:  hexString(d.Color),
		}
	}
	return r
}

func newDotsCmd(a *app) *cobra.Command {
	var (
		goal    float64
		asJSON  bool
		perLine int
	)

	cmd := &cobra.Command{
		Use:   "dots",
		Short: "Print the spiral derived for a goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("goal") {
				goal = a.cfg.Spiral.InitialGoal
			}
			model, err := stepspiral.NewModel(a.cfg.Spiral)
			if err != nil {
				return err
			}
			state := model.DeriveState(goal)

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(newDotsReport(state))
			}
			printSummary(w, state, render.ParseLocale(a.cfg.Watch.Locale), perLine)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&goal, "goal", 0, "daily step goal (default from config)")
	f.BoolVar(&asJSON, "json", false, "print every dot as JSON")
	f.IntVar(&perLine, "width", 64, "dots per line in the strip")
	return cmd
}

func printSummary(w io.Writer, s stepspiral.SpiralState, tag language.Tag, perLine int) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	label := color.New(color.FgWhite).SprintFunc()
	if s.Emphasized() {
		label = color.New(color.FgWhite, color.Bold).SprintFunc()
	}

	fmt.Fprintf(w, "\n%s %s\n\n", cyan("Goal"), label(render.FormatCount(tag, s.Label())))
	fmt.Fprintf(w, "  Layer:    %d (%.0f%% through)\n", s.CurrentLayer+1, s.LayerProgress*100)
	fmt.Fprintf(w, "  Visible:  %d layers\n", s.VisibleLayers)
	fmt.Fprintf(w, "  Dots:     %d of %d filled\n", s.FilledDots, s.TotalDots)
	fmt.Fprintf(w, "  Zoom:     %.3f (outer radius %.1fpt)\n", s.ZoomScale, s.OuterRadius)
	fmt.Fprintf(w, "  Color:    %s\n\n", hexString(s.ProgressColor))

	if perLine <= 0 {
		return
	}
	for i, d := range s.Dots {
		n := d.Color.NRGBA()
		mark := gray("·")
		if d.Filled {
			mark = color.RGB(int(n.R), int(n.G), int(n.B)).Sprint("●")
		}
		fmt.Fprint(w, mark)
		if (i+1)%perLine == 0 || i == len(s.Dots)-1 {
			fmt.Fprintln(w)
		}
	}
}
