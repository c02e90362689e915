package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raypp2/LED-Ear-Wings/pkg/xymap"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "validate the lookup table",
		Long:  "check verifies that every position maps to its own slot and that the buffer, overflow slot included, fits 8-bit indices.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.layout()
			if err != nil {
				return err
			}
			if err := xymap.Validate(l.Width(), l.Height(), l.Visible(), l.Table()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s, buffer of %d slots\n", l, l.BufferLen())
			return err
		},
	}
}
