// Package spatial implements the intersects predicate and the inner spatial
// join used to filter feature collections by administrative boundaries.
package spatial

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

// Intersects reports whether two geometries share at least one point.
// Boundary contact counts as intersection. Supported types are the ones the
// shapefile reader and GeoJSON codec produce: Point, MultiPoint, LineString,
// MultiLineString, Polygon, MultiPolygon.
func Intersects(a, b geom.T) bool {
	if a == nil || b == nil {
		return false
	}
	if !a.Bounds().Overlaps(geom.XY, b.Bounds()) {
		return false
	}

	// Decompose multi geometries: any intersecting component suffices.
	switch g := a.(type) {
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			if Intersects(g.Polygon(i), b) {
				return true
			}
		}
		return false
	case *geom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			if Intersects(g.LineString(i), b) {
				return true
			}
		}
		return false
	case *geom.MultiPoint:
		for i := 0; i < g.NumPoints(); i++ {
			if Intersects(g.Point(i), b) {
				return true
			}
		}
		return false
	}
	switch b.(type) {
	case *geom.MultiPolygon, *geom.MultiLineString, *geom.MultiPoint:
		return Intersects(b, a)
	}

	switch g := a.(type) {
	case *geom.Point:
		return pointIntersects(g.Coords(), b)
	case *geom.LineString:
		return lineIntersects(g, b)
	case *geom.Polygon:
		return polygonIntersects(g, b)
	}
	return false
}

func pointIntersects(p geom.Coord, b geom.T) bool {
	switch g := b.(type) {
	case *geom.Point:
		q := g.Coords()
		return p[0] == q[0] && p[1] == q[1]
	case *geom.LineString:
		return pointOnLine(p, g.FlatCoords())
	case *geom.Polygon:
		return pointInPolygon(p, g)
	}
	return false
}

func lineIntersects(ls *geom.LineString, b geom.T) bool {
	switch g := b.(type) {
	case *geom.Point:
		return pointOnLine(g.Coords(), ls.FlatCoords())
	case *geom.LineString:
		return segmentsCross(ls.FlatCoords(), g.FlatCoords())
	case *geom.Polygon:
		// A line touching or crossing any ring intersects; a line fully
		// inside the polygon is caught by the vertex test.
		if anyVertexInPolygon(ls.FlatCoords(), g) {
			return true
		}
		for i := 0; i < g.NumLinearRings(); i++ {
			if segmentsCross(ls.FlatCoords(), g.LinearRing(i).FlatCoords()) {
				return true
			}
		}
		return false
	}
	return false
}

func polygonIntersects(p *geom.Polygon, b geom.T) bool {
	switch g := b.(type) {
	case *geom.Point:
		return pointInPolygon(g.Coords(), p)
	case *geom.LineString:
		return lineIntersects(g, p)
	case *geom.Polygon:
		// Overlap, containment either way, or shared boundary.
		if p.NumLinearRings() > 0 && anyVertexInPolygon(p.LinearRing(0).FlatCoords(), g) {
			return true
		}
		if g.NumLinearRings() > 0 && anyVertexInPolygon(g.LinearRing(0).FlatCoords(), p) {
			return true
		}
		for i := 0; i < p.NumLinearRings(); i++ {
			for j := 0; j < g.NumLinearRings(); j++ {
				if segmentsCross(p.LinearRing(i).FlatCoords(), g.LinearRing(j).FlatCoords()) {
					return true
				}
			}
		}
		return false
	}
	return false
}

// pointOnLine reports whether p lies on the linework given as XY flat coords.
func pointOnLine(p geom.Coord, flat []float64) bool {
	if len(flat) < 4 {
		return false
	}
	return xy.IsOnLine(geom.XY, p, flat)
}

// pointInPolygon reports whether p is inside the polygon, boundary included
// for the outer ring. Points inside a hole are outside.
func pointInPolygon(p geom.Coord, poly *geom.Polygon) bool {
	if poly.NumLinearRings() == 0 {
		return false
	}
	if !xy.IsPointInRing(geom.XY, p, poly.LinearRing(0).FlatCoords()) {
		return false
	}
	for i := 1; i < poly.NumLinearRings(); i++ {
		if xy.IsPointInRing(geom.XY, p, poly.LinearRing(i).FlatCoords()) {
			return false
		}
	}
	return true
}

// anyVertexInPolygon reports whether any XY vertex of flat lies in poly.
func anyVertexInPolygon(flat []float64, poly *geom.Polygon) bool {
	for i := 0; i+1 < len(flat); i += 2 {
		if pointInPolygon(geom.Coord{flat[i], flat[i+1]}, poly) {
			return true
		}
	}
	return false
}

// segmentsCross reports whether any segment of a intersects any segment of b.
// Both inputs are XY flat coordinates.
func segmentsCross(a, b []float64) bool {
	for i := 0; i+3 < len(a); i += 2 {
		a0 := geom.Coord{a[i], a[i+1]}
		a1 := geom.Coord{a[i+2], a[i+3]}
		for j := 0; j+3 < len(b); j += 2 {
			b0 := geom.Coord{b[j], b[j+1]}
			b1 := geom.Coord{b[j+2], b[j+3]}
			res := lineintersector.LineIntersectsLine(lineintersector.RobustLineIntersector{}, a0, a1, b0, b1)
			if res.HasIntersection() {
				return true
			}
		}
	}
	return false
}
