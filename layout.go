package fwf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Layout is the ordered set of ColumnSpecs describing one file format. The
// order of the slice is the order of the columns on each line.
type Layout []ColumnSpec

// TotalWidth returns the sum of the column widths: the exact rune count of
// every line the layout describes.
func (l Layout) TotalWidth() int {
	var w int
	for _, s := range l {
		w += s.width
	}
	return w
}

// Validate checks that the layout is usable: non-empty, with every spec
// passing the same rules NewColumnSpec enforces.
func (l Layout) Validate() error {
	if len(l) == 0 {
		return ErrEmptyLayout
	}
	for _, s := range l {
		if err := s.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Write emits the layout as YAML.
func (l Layout) Write(w io.Writer) error {
	b, err := yaml.Marshal(l)
	if err != nil {
		return errors.Wrap(err, "fwf: encode layout")
	}
	_, err = w.Write(b)
	return errors.Wrap(err, "fwf: encode layout")
}

// Save writes the layout as YAML to path, replacing any existing file.
func (l Layout) Save(path string) error {
	var buf bytes.Buffer
	if err := l.Write(&buf); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0o644), "fwf: save layout %s", path)
}

// LoadLayout reads a Layout from a YAML file. JSON layouts parse too, JSON
// being a subset of YAML.
func LoadLayout(path string) (Layout, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "fwf: load layout")
	}
	layout, err := ParseLayout(b)
	if err != nil {
		return nil, errors.Wrapf(err, "fwf: load layout %s", path)
	}
	return layout, nil
}

// ParseLayout parses YAML or JSON layout data.
func ParseLayout(b []byte) (Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(b, &layout); err != nil {
		return nil, err
	}
	return layout, nil
}

// SpecMapping is the serialized form of a ColumnSpec: plain fields with the
// fill character as a one-rune string. Absent fields take the spec defaults.
type SpecMapping struct {
	Name  string `json:"name" yaml:"name"`
	Width int    `json:"width" yaml:"width"`
	Fill  string `json:"fill" yaml:"fill"`
	Align string `json:"align" yaml:"align"`
	Order int    `json:"order" yaml:"order"`
}

func defaultMapping() SpecMapping {
	return SpecMapping{Fill: string(defaultFill), Align: Left.String(), Order: Unordered}
}

// Mapping returns the spec's serialized form.
func (s ColumnSpec) Mapping() SpecMapping {
	return SpecMapping{
		Name:  s.name,
		Width: s.width,
		Fill:  string(s.fill),
		Align: s.align.String(),
		Order: s.order,
	}
}

// Spec validates the mapping into a ColumnSpec.
func (m SpecMapping) Spec() (ColumnSpec, error) {
	var opts []SpecOption
	switch n := utf8.RuneCountInString(m.Fill); {
	case n == 1:
		r, _ := utf8.DecodeRuneInString(m.Fill)
		opts = append(opts, WithFill(r))
	case n > 1:
		return ColumnSpec{}, &InvalidSpecError{Name: m.Name, Field: "fill", Reason: fmt.Sprintf("must be a single character, got %q", m.Fill)}
	}
	if m.Align != "" {
		align, ok := ParseAlignment(m.Align)
		if !ok {
			align = Alignment(m.Align)
		}
		opts = append(opts, WithAlign(align))
	}
	opts = append(opts, WithOrder(m.Order))
	return NewColumnSpec(m.Name, m.Width, opts...)
}

func (s ColumnSpec) MarshalYAML() (any, error) {
	return s.Mapping(), nil
}

func (s *ColumnSpec) UnmarshalYAML(value *yaml.Node) error {
	m := defaultMapping()
	if err := value.Decode(&m); err != nil {
		return err
	}
	spec, err := m.Spec()
	if err != nil {
		return err
	}
	*s = spec
	return nil
}

func (s ColumnSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Mapping())
}

func (s *ColumnSpec) UnmarshalJSON(data []byte) error {
	m := defaultMapping()
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	spec, err := m.Spec()
	if err != nil {
		return err
	}
	*s = spec
	return nil
}
