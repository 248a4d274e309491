package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geofilter/internal/feature"
	"github.com/sells-group/geofilter/internal/shapefile"
	"github.com/sells-group/geofilter/internal/spatial"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter features by intersecting state boundaries",
	Long:  "Reads a feature collection from a shapefile or GeoJSON file and keeps the features that intersect the selected states' boundaries. State boundaries come from the configured TIGER/Line shapefile and are reprojected into the input's CRS before the join.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		states, _ := cmd.Flags().GetStringSlice("states")
		regionNames, _ := cmd.Flags().GetStringSlice("regions")
		dedupe, _ := cmd.Flags().GetBool("dedupe")
		strict, _ := cmd.Flags().GetBool("strict")

		features, err := readFeatures(input)
		if err != nil {
			return err
		}

		selected, err := resolveStates(states, regionNames, strict || cfg.Filter.Strict)
		if err != nil {
			return err
		}

		opts := spatial.JoinOptions{Deduplicate: dedupe || cfg.Filter.Deduplicate}
		filtered, err := spatial.FilterByStates(features, cfg.Shapefiles.StatePath, selected, opts)
		if err != nil {
			return err
		}

		zap.L().Info("filter complete",
			zap.Int("input_features", features.Len()),
			zap.Int("output_features", filtered.Len()),
			zap.Strings("states", selected),
		)

		if output == "" {
			data, err := feature.MarshalGeoJSON(filtered)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		return feature.WriteGeoJSON(output, filtered)
	},
}

// readFeatures loads a feature collection from a shapefile or GeoJSON file,
// picked by extension.
func readFeatures(path string) (*feature.Collection, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".shp":
		return shapefile.Read(path)
	case ".geojson", ".json":
		return feature.ReadGeoJSON(path)
	default:
		return nil, eris.Errorf("unsupported input format %q (want .shp, .geojson, or .json)", filepath.Ext(path))
	}
}

// resolveStates merges explicit state codes with expanded region names into a
// sorted, deduplicated selection.
func resolveStates(states, regions []string, strict bool) ([]string, error) {
	set := make(map[string]struct{})
	for _, s := range states {
		if up := strings.ToUpper(strings.TrimSpace(s)); up != "" {
			set[up] = struct{}{}
		}
	}

	expanded, err := expandRegions(regions, strict)
	if err != nil {
		return nil, err
	}
	for _, a := range expanded {
		set[a] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Strings(out)
	return out, nil
}

func init() {
	filterCmd.Flags().String("input", "", "feature collection to filter (.shp, .geojson, or .json)")
	filterCmd.Flags().String("output", "", "output GeoJSON path (default: stdout)")
	filterCmd.Flags().StringSlice("states", nil, "state postal abbreviations, e.g. CA,TX")
	filterCmd.Flags().StringSlice("regions", nil, "region names to expand, e.g. West,'Deep South'")
	filterCmd.Flags().Bool("dedupe", false, "emit each feature at most once")
	filterCmd.Flags().Bool("strict", false, "fail on unknown region names")
	_ = filterCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(filterCmd)
}
