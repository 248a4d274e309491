package shapefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/geofilter/internal/crs"
)

const nad83WKT = `GEOGCS["GCS_North_American_1983",DATUM["D_North_American_1983",SPHEROID["GRS_1980",6378137.0,298.257222101]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`

// square returns a closed shapefile polygon covering [minX,maxX]x[minY,maxY].
func square(minX, minY, maxX, maxY float64) *shp.Polygon {
	return &shp.Polygon{
		Box:       shp.Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY},
		NumParts:  1,
		NumPoints: 5,
		Parts:     []int32{0},
		Points: []shp.Point{
			{X: minX, Y: minY},
			{X: minX, Y: maxY},
			{X: maxX, Y: maxY},
			{X: maxX, Y: minY},
			{X: minX, Y: minY},
		},
	}
}

// writeFixture writes a polygon shapefile with STUSPS/NAME attributes plus a
// NAD83 .prj sidecar and returns the .shp path.
func writeFixture(t *testing.T, dir string, rows []struct {
	stusps string
	name   string
	poly   *shp.Polygon
}) string {
	t.Helper()

	path := filepath.Join(dir, "states.shp")
	w, err := shp.Create(path, shp.POLYGON)
	require.NoError(t, err)

	w.SetFields([]shp.Field{
		shp.StringField("STUSPS", 10),
		shp.StringField("NAME", 40),
	})
	for n, row := range rows {
		w.Write(row.poly)
		w.WriteAttribute(n, 0, row.stusps)
		w.WriteAttribute(n, 1, row.name)
	}
	w.Close()

	prjPath := filepath.Join(dir, "states.prj")
	require.NoError(t, os.WriteFile(prjPath, []byte(nad83WKT), 0o644))

	return path
}

func TestRead_Basic(t *testing.T) {
	path := writeFixture(t, t.TempDir(), []struct {
		stusps string
		name   string
		poly   *shp.Polygon
	}{
		{stusps: "CA", name: "California", poly: square(0, 0, 10, 10)},
		{stusps: "TX", name: "Texas", poly: square(20, 0, 30, 10)},
	})

	coll, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, 2, coll.Len())
	assert.Equal(t, crs.NAD83, coll.SRID)

	f := coll.Features[0]
	assert.Equal(t, "CA", f.Properties["STUSPS"])
	assert.Equal(t, "California", f.Properties["NAME"])

	mp, ok := f.Geometry.(*geom.MultiPolygon)
	require.True(t, ok)
	require.Equal(t, 1, mp.NumPolygons())
	assert.Equal(t, []float64{0, 0, 0, 10, 10, 10, 10, 0, 0, 0}, mp.Polygon(0).FlatCoords())
}

func TestRead_WGS84Sidecar(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, []struct {
		stusps string
		name   string
		poly   *shp.Polygon
	}{
		{stusps: "CA", name: "California", poly: square(0, 0, 10, 10)},
	})
	wgs84 := `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984"]]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "states.prj"), []byte(wgs84), 0o644))

	coll, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, crs.WGS84, coll.SRID)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.shp"))
	require.Error(t, err)
}

func TestShapeToGeom_Point(t *testing.T) {
	g := shapeToGeom(&shp.Point{X: -80.19, Y: 25.77}, crs.WGS84)
	require.NotNil(t, g)

	p, ok := g.(*geom.Point)
	require.True(t, ok)
	assert.Equal(t, []float64{-80.19, 25.77}, p.FlatCoords())
	assert.Equal(t, crs.WGS84, p.SRID())
}

func TestShapeToGeom_PolyLine(t *testing.T) {
	pl := &shp.PolyLine{
		NumParts:  1,
		NumPoints: 3,
		Parts:     []int32{0},
		Points: []shp.Point{
			{X: -80.0, Y: 25.0},
			{X: -80.1, Y: 25.1},
			{X: -80.2, Y: 25.2},
		},
	}

	g := shapeToGeom(pl, crs.NAD83)
	require.NotNil(t, g)

	mls, ok := g.(*geom.MultiLineString)
	require.True(t, ok)
	assert.Equal(t, 1, mls.NumLineStrings())
}

func TestShapeToGeom_MultiPartPolygon(t *testing.T) {
	poly := &shp.Polygon{
		NumParts:  2,
		NumPoints: 10,
		Parts:     []int32{0, 5},
		Points: []shp.Point{
			{X: -80.0, Y: 25.0},
			{X: -80.0, Y: 26.0},
			{X: -79.0, Y: 26.0},
			{X: -79.0, Y: 25.0},
			{X: -80.0, Y: 25.0},
			{X: -81.0, Y: 26.0},
			{X: -81.0, Y: 27.0},
			{X: -80.0, Y: 27.0},
			{X: -80.0, Y: 26.0},
			{X: -81.0, Y: 26.0},
		},
	}

	g := shapeToGeom(poly, crs.NAD83)
	require.NotNil(t, g)

	mp, ok := g.(*geom.MultiPolygon)
	require.True(t, ok)
	assert.Equal(t, 2, mp.NumPolygons())
}

func TestShapeToGeom_NilAndEmpty(t *testing.T) {
	assert.Nil(t, shapeToGeom(nil, crs.NAD83))
	assert.Nil(t, shapeToGeom(&shp.Polygon{}, crs.NAD83))
	assert.Nil(t, shapeToGeom(&shp.PolyLine{}, crs.NAD83))
}
