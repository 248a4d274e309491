package crs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// SniffWKT maps the well-known-text CRS definitions the Census/QGIS ecosystem
// emits to an SRID. The Web Mercator check runs first because its WKT also
// mentions WGS 84.
func SniffWKT(wkt string) (int, bool) {
	s := strings.ToLower(wkt)
	switch {
	case strings.Contains(s, "pseudo-mercator"),
		strings.Contains(s, "pseudo_mercator"),
		strings.Contains(s, "web_mercator"),
		strings.Contains(s, `"epsg","3857"`):
		return WebMercator, true
	case strings.Contains(s, "nad83"),
		strings.Contains(s, "north_american_1983"),
		strings.Contains(s, "north american 1983"):
		return NAD83, true
	case strings.Contains(s, "wgs_1984"),
		strings.Contains(s, "wgs 84"),
		strings.Contains(s, "wgs84"):
		return WGS84, true
	}
	return 0, false
}

// FromSidecar resolves the SRID of a shapefile from its .prj sidecar.
// A missing sidecar defaults to NAD83, the TIGER/Line convention; a sidecar
// with an unrecognized definition is an error.
func FromSidecar(shpPath string) (int, error) {
	prjPath := strings.TrimSuffix(shpPath, filepath.Ext(shpPath)) + ".prj"

	data, err := os.ReadFile(prjPath)
	if err != nil {
		if os.IsNotExist(err) {
			zap.L().Debug("crs: no .prj sidecar, assuming NAD83",
				zap.String("shapefile", shpPath),
			)
			return NAD83, nil
		}
		return 0, eris.Wrapf(err, "crs: read %s", prjPath)
	}

	srid, ok := SniffWKT(string(data))
	if !ok {
		return 0, eris.Errorf("crs: unrecognized projection in %s", prjPath)
	}
	return srid, nil
}
