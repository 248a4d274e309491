package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sells-group/geofilter/internal/region"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the known regions and their states",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, macro := range region.Names() {
			fmt.Println(macro)
			subs, _ := region.Subregions(macro)
			for _, sub := range subs {
				abbrs, _ := region.Abbreviations(sub)
				fmt.Printf("  %-20s %s\n", sub, strings.Join(abbrs, " "))
			}
		}
		return nil
	},
}

func init() { rootCmd.AddCommand(regionsCmd) }
