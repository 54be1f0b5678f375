package main

import (
	"github.com/spf13/cobra"

	"github.com/ge-editor/textpos"
)

var intCmd = &cobra.Command{
	Use:   "int VALUE...",
	Short: "Convert decimal, 0x hexadecimal or 0b binary literals",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInt,
}

func runInt(cmd *cobra.Command, args []string) error {
	s := newStyles(!noColor)
	out := cmd.OutOrStdout()
	for _, arg := range args {
		n, err := textpos.ConvertStringToInteger(arg)
		if err != nil {
			logger.Debug("not a number", "input", arg, "err", err)
			s.field(out, arg, "NaN")
			continue
		}
		s.field(out, arg, n)
	}
	return nil
}
