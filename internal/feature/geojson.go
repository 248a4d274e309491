package feature

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// GeoJSON interchange always uses WGS84 per RFC 7946.
const geoJSONSRID = 4326

// MarshalGeoJSON encodes a collection as a GeoJSON FeatureCollection.
// The caller is responsible for reprojecting to WGS84 first if needed.
func MarshalGeoJSON(c *Collection) ([]byte, error) {
	fc := geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, c.Len())}
	for _, f := range c.Features {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         f.ID,
			Geometry:   f.Geometry,
			Properties: f.Properties,
		})
	}
	data, err := json.Marshal(&fc)
	if err != nil {
		return nil, eris.Wrap(err, "feature: marshal geojson")
	}
	return data, nil
}

// UnmarshalGeoJSON decodes a GeoJSON FeatureCollection. The resulting
// collection is tagged WGS84.
func UnmarshalGeoJSON(data []byte) (*Collection, error) {
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, eris.Wrap(err, "feature: unmarshal geojson")
	}
	c := NewCollection(geoJSONSRID)
	for _, f := range fc.Features {
		props := f.Properties
		if props == nil {
			props = map[string]any{}
		}
		c.Append(&Feature{ID: f.ID, Geometry: f.Geometry, Properties: props})
	}
	return c, nil
}

// ReadGeoJSON loads a GeoJSON FeatureCollection from a file.
func ReadGeoJSON(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "feature: read %s", path)
	}
	return UnmarshalGeoJSON(data)
}

// WriteGeoJSON writes a collection to a GeoJSON file.
func WriteGeoJSON(path string, c *Collection) error {
	data, err := MarshalGeoJSON(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "feature: write %s", path)
	}
	return nil
}
