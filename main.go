package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kastheco/roadcolors/config"
	"github.com/kastheco/roadcolors/emit"
	"github.com/kastheco/roadcolors/log"
	"github.com/kastheco/roadcolors/palette"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version     = "0.1.0"
	configFlag  string
	sectionFlag string
	verboseFlag bool
	outputFlag  string
	debugFlag   bool
	rootCmd     = &cobra.Command{
		Use:   "roadcolors",
		Short: "roadcolors - Generate road colour variables from road-colors.yaml.",
		Long: `Reads the road palette settings and prints one CartoCSS variable per road
class and line type, e.g.

  @motorway-fill: #e892a2;

Hue, lightness and chroma are spread evenly in CIE LCh over the first
lock_first road classes and continue with the same step for the rest.
Colours that fall outside sRGB are an error; nothing is written.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		// main reports errors through the log package.
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Initialize(debugFlag)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPalette()
			if err != nil {
				return err
			}

			opts := emit.Options{Verbose: verboseFlag}
			if outputFlag == "" {
				return emit.Render(cmd.OutOrStdout(), p, opts)
			}
			out, err := emit.RenderString(p, opts)
			if err != nil {
				return err
			}
			if err := writeFileAtomic(outputFlag, []byte(out)); err != nil {
				return err
			}
			log.InfoLog.Printf("wrote %s", outputFlag)
			return nil
		},
	}

	previewCmd = &cobra.Command{
		Use:   "preview",
		Short: "Show the palette as colour swatches in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPalette()
			if err != nil {
				return err
			}
			return emit.Preview(cmd.OutOrStdout(), p, isTerminal(cmd.OutOrStdout()))
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of roadcolors",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "roadcolors version %s\n", version)
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", config.DefaultSettingsFile,
		"Palette settings file (.yaml, .yml or .toml)")
	flags.StringVarP(&sectionFlag, "section", "s", "mss", "Settings section under 'classes' to generate")
	flags.BoolVar(&debugFlag, "debug", false, "Log progress to stderr")

	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Append the LCh value and colour difference to every line")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "",
		"Write to this file instead of stdout; left untouched on error")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(versionCmd)
}

// loadPalette reads the settings named by --config and generates --section.
func loadPalette() (*palette.Palette, error) {
	s, err := config.LoadSettingsFrom(configFlag)
	if err != nil {
		return nil, err
	}
	return palette.Generate(s, sectionFlag)
}

// writeFileAtomic replaces path with data via a temporary file in the same
// directory, so readers never see a half-written file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errStale) {
			log.ErrorLog.Print(err)
		}
		os.Exit(1)
	}
}
