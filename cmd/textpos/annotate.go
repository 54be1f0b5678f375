package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ge-editor/textpos/annotate"
)

var (
	annotateFrom     int
	annotateTo       int
	annotateMessage  string
	annotateSeverity string
)

var annotateCmd = &cobra.Command{
	Use:   "annotate FILE",
	Short: "Render a diagnostic for the range [--from, --to) of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnnotate,
}

func init() {
	annotateCmd.Flags().IntVar(&annotateFrom, "from", 0, "Start position (runes)")
	annotateCmd.Flags().IntVar(&annotateTo, "to", 0, "End position (runes), exclusive")
	annotateCmd.Flags().StringVar(&annotateMessage, "message", "here", "Diagnostic message")
	annotateCmd.Flags().StringVar(&annotateSeverity, "severity", "error", "Severity: error, warning, info")
}

func parseSeverity(s string) (annotate.Severity, error) {
	switch s {
	case "error":
		return annotate.Error, nil
	case "warning":
		return annotate.Warning, nil
	case "info":
		return annotate.Information, nil
	}
	return 0, fmt.Errorf("unknown severity: %s", s)
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	severity, err := parseSeverity(annotateSeverity)
	if err != nil {
		return err
	}
	ff, text, err := loadText(args[0])
	if err != nil {
		return err
	}

	var list annotate.List
	annotator := annotate.NewAnnotator(&list, annotate.IntervalForOffsets(text, annotateFrom, annotateTo))
	switch severity {
	case annotate.Error:
		annotator.AddErrorHere("%s", annotateMessage)
	case annotate.Warning:
		annotator.AddWarningHere("%s", annotateMessage)
	default:
		annotator.AddInformationHere("%s", annotateMessage)
	}

	return annotate.Render(cmd.OutOrStdout(), filepath.Base(ff.GetPath()), text, list)
}
