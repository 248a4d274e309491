package spatial

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/geofilter/internal/crs"
	"github.com/sells-group/geofilter/internal/feature"
)

// JoinOptions configures the spatial join.
type JoinOptions struct {
	// Deduplicate emits each input feature at most once, even when it
	// intersects several boundaries.
	Deduplicate bool
}

// Join performs an inner spatial join with an intersects predicate: one
// output feature per (feature, boundary) pair that intersects. The feature
// collection's CRS is authoritative — boundaries are reprojected into it, on
// this path and on every caller's. Output features keep their original
// attributes and geometry in the features' CRS; no join artifacts are added.
// An empty boundary collection yields an empty result, not an error.
func Join(features, boundaries *feature.Collection, opts JoinOptions) (*feature.Collection, error) {
	out := feature.NewCollection(features.SRID)
	if features.Len() == 0 || boundaries.Len() == 0 {
		return out, nil
	}

	proj, err := crs.Reproject(boundaries, features.SRID)
	if err != nil {
		return nil, eris.Wrap(err, "spatial: reproject boundaries")
	}

	for _, f := range features.Features {
		for _, b := range proj.Features {
			if Intersects(f.Geometry, b.Geometry) {
				out.Append(f.Clone())
				if opts.Deduplicate {
					break
				}
			}
		}
	}

	zap.L().Debug("spatial: join complete",
		zap.Int("features", features.Len()),
		zap.Int("boundaries", boundaries.Len()),
		zap.Int("matched", out.Len()),
	)

	return out, nil
}

// FilterByStates filters a feature collection down to the features that
// intersect the named states' boundaries, loaded from the reference shapefile
// at boundaryPath. An empty state list yields an empty collection.
func FilterByStates(features *feature.Collection, boundaryPath string, states []string, opts JoinOptions) (*feature.Collection, error) {
	if len(states) == 0 {
		return feature.NewCollection(features.SRID), nil
	}

	boundaries, err := LoadStateBoundaries(boundaryPath, states)
	if err != nil {
		return nil, err
	}

	return Join(features, boundaries, opts)
}
