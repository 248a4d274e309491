// Package feature defines the in-memory geographic feature model shared by
// the shapefile reader, the GeoJSON codec, and the spatial filter.
package feature

import "github.com/twpayne/go-geom"

// Feature is a single geographic record: a geometry plus its attributes.
type Feature struct {
	ID         string
	Geometry   geom.T
	Properties map[string]any
}

// Clone returns a deep copy of the feature. The geometry and the attribute
// map are copied so mutating the clone never touches the original.
func (f *Feature) Clone() *Feature {
	if f == nil {
		return nil
	}
	props := make(map[string]any, len(f.Properties))
	for k, v := range f.Properties {
		props[k] = v
	}
	return &Feature{
		ID:         f.ID,
		Geometry:   CloneGeometry(f.Geometry),
		Properties: props,
	}
}

// Collection is a set of features sharing one coordinate reference system,
// identified by SRID (e.g. 4326 for WGS84).
type Collection struct {
	SRID     int
	Features []*Feature
}

// NewCollection returns an empty collection tagged with the given SRID.
func NewCollection(srid int) *Collection {
	return &Collection{SRID: srid}
}

// Len returns the number of features.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Features)
}

// Append adds a feature to the collection.
func (c *Collection) Append(f *Feature) {
	c.Features = append(c.Features, f)
}

// Clone returns a deep copy of the collection.
func (c *Collection) Clone() *Collection {
	if c == nil {
		return nil
	}
	out := NewCollection(c.SRID)
	out.Features = make([]*Feature, 0, len(c.Features))
	for _, f := range c.Features {
		out.Features = append(out.Features, f.Clone())
	}
	return out
}

// CloneGeometry deep-copies any of the geometry types produced by the
// shapefile reader and the GeoJSON codec. Unknown types are returned as-is.
func CloneGeometry(g geom.T) geom.T {
	switch g := g.(type) {
	case *geom.Point:
		return g.Clone()
	case *geom.MultiPoint:
		return g.Clone()
	case *geom.LineString:
		return g.Clone()
	case *geom.MultiLineString:
		return g.Clone()
	case *geom.Polygon:
		return g.Clone()
	case *geom.MultiPolygon:
		return g.Clone()
	default:
		return g
	}
}
