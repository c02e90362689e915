package main

import (
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/raypp2/LED-Ear-Wings/pkg/xymap"
)

func newGenCmd(opts *options) *cobra.Command {
	var (
		pkg   string
		table string
		out   string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "generate Go source for the lookup table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.layout()
			if err != nil {
				return err
			}
			gen := xymap.GenOptions{Package: pkg, Table: table, Command: "xymap gen"}
			if out == "" || out == "-" {
				return xymap.WriteGo(cmd.OutOrStdout(), l, gen)
			}

			f, err := os.Create(out)
			if err != nil {
				return errors.Wrap(err, 0)
			}
			if err := xymap.WriteGo(f, l, gen); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return errors.Wrap(err, 0)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pkg, "pkg", "xymap", "package name of the generated file")
	cmd.Flags().StringVar(&table, "table", "table", "name of the generated array")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
