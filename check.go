package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/kastheco/roadcolors/emit"
	"github.com/spf13/cobra"
)

// errStale is returned when the generated file is out of date, to signal
// exit code 1 without printing a second message.
var errStale = errors.New("stale")

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Verify that a generated file matches the current settings",
		Long: `Regenerates the palette in memory and compares it with FILE.

Exit code 0 if FILE is up to date, exit code 1 otherwise. A diff of the
differences is printed for stale files.`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
		// Suppress usage on error, a stale file is not a usage error.
		SilenceUsage: true,
	}
	cmd.Flags().BoolP("verbose", "v", false, "compare against verbose output")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	p, err := loadPalette()
	if err != nil {
		return err
	}
	want, err := emit.RenderString(p, emit.Options{Verbose: verbose})
	if err != nil {
		return err
	}

	got, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read generated file: %w", err)
	}

	out := cmd.OutOrStdout()
	// Diff whole lines so each stale variable shows up intact.
	if diff := cmp.Diff(strings.Split(want, "\n"), strings.Split(string(got), "\n")); diff != "" {
		fmt.Fprintf(out, "%s is out of date (-regenerated +on disk):\n%s", args[0], diff)
		return errStale
	}
	fmt.Fprintf(out, "%s is up to date\n", args[0])
	return nil
}
