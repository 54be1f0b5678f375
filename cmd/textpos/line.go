package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	linePosition int
	lineNumber   int
	lineCopy     bool
)

var lineCmd = &cobra.Command{
	Use:   "line FILE",
	Short: "Show the line of a position or line number",
	Long: `Show line number, column, boundaries and text of the line containing --pos,
or of the zero based line --line.`,
	Args: cobra.ExactArgs(1),
	RunE: runLine,
}

func init() {
	lineCmd.Flags().IntVar(&linePosition, "pos", -1, "Absolute position (runes)")
	lineCmd.Flags().IntVar(&lineNumber, "line", -1, "Zero based line number")
	lineCmd.Flags().BoolVar(&lineCopy, "copy", false, "Copy the line text to the clipboard")
}

func runLine(cmd *cobra.Command, args []string) error {
	ff, text, err := loadText(args[0])
	if err != nil {
		return err
	}

	position := linePosition
	switch {
	case lineNumber >= 0:
		position = text.LineStartForLine(lineNumber)
	case linePosition < 0:
		return fmt.Errorf("one of --pos or --line is required")
	}

	line := text.LineForPosition(position)
	c := ff.CursorForPosition(position)

	s := newStyles(!noColor)
	out := cmd.OutOrStdout()
	s.field(out, "line", c.RowIndex)
	s.field(out, "column", c.ColIndex)
	s.field(out, "display column", ff.DisplayColumn(c))
	s.field(out, "start", text.LineStartForPosition(position))
	s.field(out, "end", text.LineEndForPosition(position))
	s.field(out, "text", line.String())

	if lineCopy {
		if err := clipboard.WriteAll(line.String()); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		logger.Info("copied line to clipboard", "line", c.RowIndex)
	}
	return nil
}
