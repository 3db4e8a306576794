// Package content embeds the portfolio catalog and decodes it at startup.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Choovyy/portfolio/internal/portfolio"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Load decodes the embedded catalog, attaches the long-form text and
// validates the result.
func Load() (*portfolio.Catalog, error) {
	return Decode(bytes.NewReader(catalogYAML))
}

// Decode reads a catalog document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*portfolio.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c portfolio.Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &portfolio.CatalogError{Message: "empty catalog document"}
		}
		return nil, &portfolio.CatalogError{Message: "failed to decode YAML", Cause: err}
	}

	c.Profile.About = AboutMe
	c.Profile.Education = Education
	c.Profile.Mission = Mission
	c.Profile.Goals = Goals
	c.Resume = Resume

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
