package main

import (
	"fmt"
	"strconv"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
)

func newIndexCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "index X Y",
		Short: "print the LED index of a coordinate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseCoord(args[0])
			if err != nil {
				return err
			}
			y, err := parseCoord(args[1])
			if err != nil {
				return err
			}
			l, err := opts.layout()
			if err != nil {
				return err
			}

			idx := l.Index(x, y)
			kind := "led"
			switch {
			case x >= l.Width() || y >= l.Height():
				kind = "overflow"
			case !l.IsVisible(idx):
				kind = "hole"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "(%d,%d) -> %d %s\n", x, y, idx, kind)
			return err
		},
	}
}

func parseCoord(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errors.Errorf("coordinate %q: want 0-255", s)
	}
	return uint8(v), nil
}
