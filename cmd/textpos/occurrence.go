package main

import (
	"github.com/spf13/cobra"
)

var (
	searchString    string
	occurrenceIndex int
)

var occurrenceCmd = &cobra.Command{
	Use:   "occurrence FILE",
	Short: "Show the position of the n-th occurrence of a string",
	Args:  cobra.ExactArgs(1),
	RunE:  runOccurrence,
}

var countCmd = &cobra.Command{
	Use:   "count FILE",
	Short: "Count non overlapping occurrences of a string",
	Args:  cobra.ExactArgs(1),
	RunE:  runCount,
}

func init() {
	occurrenceCmd.Flags().StringVar(&searchString, "search", "\n", "String to search")
	occurrenceCmd.Flags().IntVar(&occurrenceIndex, "nth", 1, "One based occurrence index")
	countCmd.Flags().StringVar(&searchString, "search", "\n", "String to count")
}

func runOccurrence(cmd *cobra.Command, args []string) error {
	_, text, err := loadText(args[0])
	if err != nil {
		return err
	}

	position, found := text.PositionOfOccurrence(searchString, occurrenceIndex)
	logger.Debug("occurrence", "search", searchString, "n", occurrenceIndex, "position", position, "found", found)

	s := newStyles(!noColor)
	out := cmd.OutOrStdout()
	s.field(out, "position", position)
	s.field(out, "found", found)
	if found {
		line, column := text.LineColumnForPosition(position)
		s.field(out, "line", line)
		s.field(out, "column", column)
	}
	return nil
}

func runCount(cmd *cobra.Command, args []string) error {
	_, text, err := loadText(args[0])
	if err != nil {
		return err
	}

	newStyles(!noColor).field(cmd.OutOrStdout(), "count", text.NumberOfOccurrences(searchString))
	return nil
}
