package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raypp2/LED-Ear-Wings/pkg/xymap"
)

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "print the layout diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.layout()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := xymap.Format(out, l); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "\n%s, overflow index %d\n", l, l.Overflow())
			return err
		},
	}
}
