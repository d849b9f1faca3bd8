// Package cli is the command line shell shared by the palette programs. Each
// program hardcodes its own palette.Config and hands it to Execute().
//
// The command defines no flags of its own. Positional arguments are accepted
// and ignored, because existing build scripts pass the palette path. The
// generated declaration is written to stdout. Diagnostics are written to
// stderr.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jetsetilly/loadpalette/palette"
	"github.com/jetsetilly/loadpalette/version"
)

// NewCommand returns the command that generates the palette declaration
// specified by the Config.
func NewCommand(cfg palette.Config) *cobra.Command {
	return &cobra.Command{
		Use:           version.ApplicationName,
		Short:         fmt.Sprintf("Write the %s palette as a constant declaration", cfg.PaletteName),
		Long:          fmt.Sprintf("Reads %s and writes the 64 colour palette declaration to stdout.", cfg.Path()),
		Version:       version.Short(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return palette.Generate(cmd.OutOrStdout(), cfg)
		},
	}
}

// Execute runs the command for the Config with the program's arguments and
// returns the exit status. The caller should pass the result to os.Exit().
func Execute(cfg palette.Config) int {
	return run(cfg, os.Args[1:], os.Stdout, os.Stderr)
}

func run(cfg palette.Config, args []string, stdout io.Writer, stderr io.Writer) int {
	cmd := NewCommand(cfg)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		s := newStyles()
		fmt.Fprintln(stderr, s.err.Render(fmt.Sprintf("*** %s", err)))
		fmt.Fprintln(stderr, s.usage.Render(fmt.Sprintf("see %s --help", cmd.CommandPath())))
		return 1
	}

	return 0
}
