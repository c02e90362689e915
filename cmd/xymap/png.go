package main

import (
	"image/color"
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/raypp2/LED-Ear-Wings/internal/core"
	"github.com/raypp2/LED-Ear-Wings/internal/render"
)

var holeColor = color.RGBA{R: 24, G: 24, B: 28, A: 255}

func newPNGCmd(opts *options) *cobra.Command {
	var scale int
	cmd := &cobra.Command{
		Use:   "png OUT",
		Short: "render the wiring order to a PNG",
		Long:  "png colours every LED by its position along the strip, from red at index 0 to magenta at the last LED. Holes are dark.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.layout()
			if err != nil {
				return err
			}
			buf := core.NewBuffer(l)
			render.WiringOrder(buf)
			img := render.Image(buf, render.Gradient(l.Visible()), holeColor)

			f, err := os.Create(args[0])
			if err != nil {
				return errors.Wrap(err, 0)
			}
			if err := render.WritePNG(f, img, scale); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return errors.Wrap(err, 0)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&scale, "scale", 16, "output pixels per LED")
	return cmd
}
