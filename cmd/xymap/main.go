package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/raypp2/LED-Ear-Wings/internal/app"
	"github.com/raypp2/LED-Ear-Wings/pkg/xymap"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	debug  bool
	mask   string
	wiring string
}

func (o *options) layout() (*xymap.Layout, error) {
	l, _, err := app.LoadLayout(o.mask, o.wiring)
	return l, err
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "xymap",
		Short:         "inspect LED matrix layouts",
		Long:          "xymap shows, checks and generates (x,y) to LED index tables for irregular LED matrices.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.debug {
				level = slog.LevelDebug
			}
			xymap.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "debug logging and error stacks")
	root.PersistentFlags().StringVar(&opts.mask, "mask", "", "layout drawing to use instead of the ear wing")
	root.PersistentFlags().StringVar(&opts.wiring, "wiring", xymap.Progressive.String(), "strip wiring for --mask: progressive or serpentine")

	root.AddCommand(
		newShowCmd(opts),
		newIndexCmd(opts),
		newCheckCmd(opts),
		newGenCmd(opts),
		newPNGCmd(opts),
	)
	return root
}

func main() {
	cobra.EnablePrefixMatching = true
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		debug, _ := root.PersistentFlags().GetBool("debug")
		report(os.Stderr, err, debug)
		os.Exit(1)
	}
}

// report prints err, with its stack when debugging and one was recorded.
func report(w io.Writer, err error, debug bool) {
	if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
		fmt.Fprintln(w, stackFramer.ErrorStack())
		return
	}
	fmt.Fprintln(w, "xymap:", err)
}
