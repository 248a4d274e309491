package spatial

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/geofilter/internal/feature"
	"github.com/sells-group/geofilter/internal/shapefile"
)

// PostalCodeField is the attribute column carrying the two-letter state
// postal abbreviation in TIGER/Line state shapefiles.
const PostalCodeField = "STUSPS"

// ErrNoPostalField is returned when the boundary dataset has no STUSPS column.
var ErrNoPostalField = eris.New("spatial: boundary data has no STUSPS field")

// LoadStateBoundaries reads the reference state shapefile and keeps the rows
// whose postal abbreviation matches one of the requested states. Matching is
// case-insensitive; requested abbreviations absent from the dataset are
// silently dropped. The boundary file is read fresh on every call.
func LoadStateBoundaries(path string, states []string) (*feature.Collection, error) {
	coll, err := shapefile.Read(path)
	if err != nil {
		return nil, eris.Wrap(err, "spatial: load state boundaries")
	}

	want := make(map[string]struct{}, len(states))
	for _, s := range states {
		want[strings.ToUpper(strings.TrimSpace(s))] = struct{}{}
	}

	out := feature.NewCollection(coll.SRID)
	sawField := false
	for _, f := range coll.Features {
		code, ok := f.Properties[PostalCodeField].(string)
		if !ok {
			continue
		}
		sawField = true
		if _, hit := want[strings.ToUpper(code)]; hit {
			out.Append(f.Clone())
		}
	}

	if coll.Len() > 0 && !sawField {
		return nil, ErrNoPostalField
	}

	zap.L().Debug("spatial: state boundaries loaded",
		zap.String("path", path),
		zap.Int("requested", len(states)),
		zap.Int("matched", out.Len()),
	)

	return out, nil
}
