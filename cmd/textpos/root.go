package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ge-editor/textpos"
	"github.com/ge-editor/textpos/file"
)

var (
	verbose bool
	noColor bool

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "textpos",
	Short: "Inspect line and position information of source files",
	Long: `textpos answers the position queries the editor asks about a buffer:
line boundaries, line numbers, occurrences of a string, numeric literals,
theme styles and diagnostics rendered against the source.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(occurrenceCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(intCmd)
	rootCmd.AddCommand(styleCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// styles holds the color formatters of the command output
type styles struct {
	label *color.Color
	value *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		label: color.New(color.Bold),
		value: color.New(color.FgHiGreen),
	}
	if !enabled {
		s.label.DisableColor()
		s.value.DisableColor()
	}
	return s
}

// Print "label: value" lines
func (s *styles) field(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s %s\n", s.label.Sprint(label+":"), s.value.Sprint(value))
}

// Load path and return its text with linefeeds normalized
func loadText(path string) (*file.File, textpos.Text, error) {
	ff := file.NewFile(path)
	if err := ff.Load(); err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Debug("loaded file", "path", ff.GetPath(), "runes", ff.Snapshot().Len(), "rows", ff.RowLength(), "linefeed", ff.GetLinefeed())
	return ff, ff.Snapshot(), nil
}
