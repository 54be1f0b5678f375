package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ge-editor/textpos/style"
)

var (
	styleAltScope string
	styleUseAlt   bool
)

var styleCmd = &cobra.Command{
	Use:   "style THEME PATH...",
	Short: "Resolve dotted style paths in a JSON or YAML theme",
	Long: `Resolve each dotted PATH (e.g. editor.lineNumber.color) in THEME.
With --use-alt the lookup starts from the --alt scope instead of the theme root.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runStyle,
}

func init() {
	styleCmd.Flags().StringVar(&styleAltScope, "alt", "dark", "Alternative scope name")
	styleCmd.Flags().BoolVar(&styleUseAlt, "use-alt", false, "Resolve from the alternative scope")
}

func runStyle(cmd *cobra.Command, args []string) error {
	th, err := style.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading theme %s: %w", args[0], err)
	}
	logger.Debug("loaded theme", "name", th.Name(), "scopes", len(th.Scope()))

	resolve := th.Factory(styleUseAlt, styleAltScope)
	s := newStyles(!noColor)
	out := cmd.OutOrStdout()
	for _, path := range args[1:] {
		value, err := resolve(path)
		if err != nil {
			return err
		}
		switch value.(type) {
		case style.Scope, map[string]any:
		default:
			s.field(out, path, value)
			continue
		}
		data, err := yaml.Marshal(value)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n%s", s.label.Sprint(path+":"), data)
	}
	return nil
}
