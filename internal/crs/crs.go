// Package crs handles the coordinate reference systems that US Census vector
// data actually ships in: WGS84 and NAD83 geographic coordinates, and Web
// Mercator. Reprojection works on go-geom flat coordinates; no external
// projection engine is involved.
package crs

import (
	"math"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/geofilter/internal/feature"
)

// SRIDs supported by this package.
const (
	WGS84       = 4326 // geographic lon/lat, GeoJSON default
	NAD83       = 4269 // geographic lon/lat, TIGER/Line default
	WebMercator = 3857 // projected meters
)

// ErrUnsupported is returned when a reprojection involves an SRID this
// package does not know.
var ErrUnsupported = eris.New("crs: unsupported coordinate reference system")

const earthRadius = 6378137.0

// Supported reports whether the SRID can participate in a reprojection.
func Supported(srid int) bool {
	switch srid {
	case WGS84, NAD83, WebMercator:
		return true
	}
	return false
}

// Reproject returns a copy of the collection with all geometries transformed
// into the target SRID. The input collection is never modified. NAD83 and
// WGS84 are treated as identical at this data's precision.
func Reproject(c *feature.Collection, toSRID int) (*feature.Collection, error) {
	if c.SRID == toSRID {
		return c.Clone(), nil
	}
	if !Supported(c.SRID) {
		return nil, eris.Wrapf(ErrUnsupported, "srid %d", c.SRID)
	}
	if !Supported(toSRID) {
		return nil, eris.Wrapf(ErrUnsupported, "srid %d", toSRID)
	}

	out := feature.NewCollection(toSRID)
	for _, f := range c.Features {
		g, err := reprojectGeometry(f.Geometry, c.SRID, toSRID)
		if err != nil {
			return nil, err
		}
		nf := f.Clone()
		nf.Geometry = g
		out.Append(nf)
	}
	return out, nil
}

// reprojectGeometry rebuilds a geometry of the same concrete type with
// transformed coordinates.
func reprojectGeometry(g geom.T, fromSRID, toSRID int) (geom.T, error) {
	if g == nil {
		return nil, nil
	}

	layout := g.Layout()
	stride := layout.Stride()
	flat := append([]float64(nil), g.FlatCoords()...)
	for i := 0; i+1 < len(flat); i += stride {
		x, y := flat[i], flat[i+1]
		lon, lat := toGeographic(fromSRID, x, y)
		flat[i], flat[i+1] = fromGeographic(toSRID, lon, lat)
	}

	switch g := g.(type) {
	case *geom.Point:
		return geom.NewPointFlat(layout, flat).SetSRID(toSRID), nil
	case *geom.MultiPoint:
		return geom.NewMultiPointFlat(layout, flat).SetSRID(toSRID), nil
	case *geom.LineString:
		return geom.NewLineStringFlat(layout, flat).SetSRID(toSRID), nil
	case *geom.MultiLineString:
		return geom.NewMultiLineStringFlat(layout, flat, g.Ends()).SetSRID(toSRID), nil
	case *geom.Polygon:
		return geom.NewPolygonFlat(layout, flat, g.Ends()).SetSRID(toSRID), nil
	case *geom.MultiPolygon:
		return geom.NewMultiPolygonFlat(layout, flat, g.Endss()).SetSRID(toSRID), nil
	default:
		return nil, eris.Errorf("crs: cannot reproject geometry type %T", g)
	}
}

// toGeographic converts srid coordinates to lon/lat degrees.
func toGeographic(srid int, x, y float64) (lon, lat float64) {
	if srid == WebMercator {
		lon = x / earthRadius * 180 / math.Pi
		lat = (2*math.Atan(math.Exp(y/earthRadius)) - math.Pi/2) * 180 / math.Pi
		return lon, lat
	}
	return x, y
}

// fromGeographic converts lon/lat degrees to srid coordinates.
func fromGeographic(srid int, lon, lat float64) (x, y float64) {
	if srid == WebMercator {
		x = earthRadius * lon * math.Pi / 180
		y = earthRadius * math.Log(math.Tan(math.Pi/4+lat*math.Pi/360))
		return x, y
	}
	return lon, lat
}
