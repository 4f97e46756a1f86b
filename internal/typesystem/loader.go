package typesystem

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"header-generator/internal/common"
	"header-generator/internal/diagnostic"
	"header-generator/internal/metamodel"
)

// Format is the serialization of a typesystem document.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return common.UnknownStr
	}
}

// ErrUnknownFormat is returned for document paths with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown typesystem document format")

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, errors.WithHint(
			errors.Wrapf(ErrUnknownFormat, "%s", path),
			"use a .yaml, .yml or .toml file",
		)
	}
}

// LoadFile reads and parses a typesystem document.
func LoadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read typesystem document %s", path)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return doc, nil
}

// Parse parses document data. Unknown keys are rejected in both formats.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "failed to parse typesystem YAML")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse typesystem TOML")
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}

			return nil, errors.Newf("unknown keys in typesystem TOML: %s", strings.Join(keys, ", "))
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %d", int(format))
	}

	applyDefaults(&doc)

	return &doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	for i := range doc.Classes {
		applyClassDefaults(&doc.Classes[i])
	}
}

func applyClassDefaults(c *ClassDef) {
	c.Kind = strings.ToLower(strings.TrimSpace(c.Kind))

	for i := range c.Snips {
		s := &c.Snips[i]
		if s.Position == "" {
			s.Position = metamodel.SnipDeclaration.String()
		}

		if s.Language == "" {
			s.Language = "native"
		}
	}

	for i := range c.Classes {
		applyClassDefaults(&c.Classes[i])
	}
}

// Load reads a document and builds its snapshot. Error diagnostics are
// folded into the returned error; the diagnostics are returned either way.
func Load(path string) (*metamodel.Snapshot, diagnostic.Diagnostics, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	snap, diags := Build(doc)
	if err := diags.Error(); err != nil {
		return nil, diags, errors.Wrapf(err, "invalid typesystem document %s", path)
	}

	return snap, diags, nil
}
