package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/geofilter/internal/region"
)

var expandCmd = &cobra.Command{
	Use:   "expand <region>...",
	Short: "Expand region names into state abbreviations",
	Long:  "Prints the deduplicated state postal abbreviations for the given macro-region or subregion names, one per line. Unknown names are ignored unless --strict is set.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")

		abbrs, err := expandRegions(args, strict || cfg.Filter.Strict)
		if err != nil {
			return err
		}
		for _, a := range abbrs {
			fmt.Println(a)
		}
		return nil
	},
}

// expandRegions resolves region names in either strict or lenient mode.
func expandRegions(names []string, strict bool) ([]string, error) {
	if strict {
		return region.ExpandStrict(names...)
	}
	return region.Expand(names...), nil
}

func init() {
	expandCmd.Flags().Bool("strict", false, "fail on unknown region names")
	rootCmd.AddCommand(expandCmd)
}
