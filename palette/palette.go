// Package palette stores named color swatches, reads and writes them as YAML
// documents, and renders them to raster images.
//
// A palette file looks like:
//
//	name: brand
//	swatches:
//	  - name: primary
//	    color: "#2466a8"
//	  - name: accent
//	    color: hsl(30, 100%, 50%)
//
// Colors accept every notation understood by colorspace.Parse. Hex values
// must be quoted because YAML treats an unquoted '#' as a comment.
package palette

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/colorspace"
)

// Swatch is a named color.
type Swatch struct {
	Name  string
	Color colorspace.Argb
}

// Palette is an ordered list of uniquely named swatches.
type Palette struct {
	Name     string
	Swatches []Swatch
}

// document is the YAML shape of a palette file.
type document struct {
	Name     string           `yaml:"name"`
	Swatches []swatchDocument `yaml:"swatches"`
}

type swatchDocument struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Load decodes a palette from YAML.
func Load(r io.Reader) (*Palette, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("failed to parse palette: empty document")
		}
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}

	p := &Palette{Name: strings.TrimSpace(doc.Name)}
	for i, sd := range doc.Swatches {
		c, err := colorspace.Parse(sd.Color)
		if err != nil {
			return nil, fmt.Errorf("swatch %d (%q): %w", i, sd.Name, err)
		}
		if err := p.Add(sd.Name, c); err != nil {
			return nil, fmt.Errorf("swatch %d: %w", i, err)
		}
	}

	colorspace.Logger().Debug("palette: loaded", "name", p.Name, "swatches", len(p.Swatches))
	return p, nil
}

// LoadFile reads a palette from the YAML file at path.
func LoadFile(path string) (*Palette, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("failed to read palette: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Save encodes p as YAML. Colors are written in hex notation.
func (p *Palette) Save(w io.Writer) error {
	doc := document{
		Name:     p.Name,
		Swatches: make([]swatchDocument, len(p.Swatches)),
	}
	for i, s := range p.Swatches {
		doc.Swatches[i] = swatchDocument{Name: s.Name, Color: s.Color.String()}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to write palette: %w", err)
	}
	return enc.Close()
}

// Add appends a swatch. Names are trimmed and must be unique, ignoring case.
func (p *Palette) Add(name string, c colorspace.Space) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := p.Lookup(name); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSwatch, name)
	}
	p.Swatches = append(p.Swatches, Swatch{Name: name, Color: c.Argb()})
	return nil
}

// Lookup returns the swatch with the given name, ignoring case.
func (p *Palette) Lookup(name string) (Swatch, bool) {
	name = strings.TrimSpace(name)
	for _, s := range p.Swatches {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Swatch{}, false
}
