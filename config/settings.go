package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kastheco/roadcolors/log"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile is the settings path used when none is given.
const DefaultSettingsFile = "road-colors.yaml"

// Format identifies the syntax of a settings document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ClassRange is the lightness and chroma span of one line type over the
// locked road classes. Index 0 belongs to the first road, index 1 to the
// last locked road.
type ClassRange struct {
	Lightness [2]float64
	Chroma    [2]float64
}

// Settings is the validated palette description. It is never modified
// after LoadSettingsFrom or ParseSettings returns it.
type Settings struct {
	// Roads lists the road classes in hue order.
	Roads []string
	// LockFirst is the number of leading roads whose values are pinned to
	// the configured ranges. Zero means all of them.
	LockFirst int
	// Hue holds the hue of the first road and of the last locked road, in
	// degrees.
	Hue [2]float64
	// Classes maps a section name to its line types.
	Classes map[string]map[string]ClassRange
}

// document mirrors the on-disk layout before validation.
type document struct {
	Roads     []string                            `yaml:"roads" toml:"roads"`
	Hue       []float64                           `yaml:"hue" toml:"hue"`
	LockFirst *int                                `yaml:"lock_first" toml:"lock_first"`
	Classes   map[string]map[string]rangeDocument `yaml:"classes" toml:"classes"`
}

type rangeDocument struct {
	Lightness []float64 `yaml:"lightness" toml:"lightness"`
	Chroma    []float64 `yaml:"chroma" toml:"chroma"`
}

var (
	topLevelKeys = map[string]bool{
		"roads":      true,
		"hue":        true,
		"lock_first": true,
		"classes":    true,
	}
	rangeKeys = map[string]bool{
		"lightness": true,
		"chroma":    true,
	}
)

// FormatFromPath picks the document syntax from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", configErrorf("", "unsupported settings file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// LoadSettingsFrom reads and validates the settings document at path.
func LoadSettingsFrom(path string) (*Settings, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	log.InfoLog.Printf("loading %s settings from %s", format, path)
	return ParseSettings(data, format)
}

// ParseSettings decodes and validates a settings document.
func ParseSettings(data []byte, format Format) (*Settings, error) {
	var doc document
	switch format {
	case FormatYAML:
		if err := decodeYAML(data, &doc); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := decodeTOML(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, configErrorf("", "unknown settings format %q", format)
	}
	return doc.validate()
}

func decodeYAML(data []byte, doc *document) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return configErrorf("", "document is empty")
	}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return &ConfigError{Msg: "malformed YAML", Err: err}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return &ConfigError{Msg: "malformed YAML", Err: err}
	}
	if len(root.Content) == 1 {
		warnUnknown(unknownYAMLKeys(root.Content[0]))
	}
	return nil
}

// unknownYAMLKeys lists the dotted paths of keys the document type does not
// decode, the same way toml.MetaData.Undecoded does.
func unknownYAMLKeys(top *yaml.Node) []string {
	var unknown []string
	eachKey(top, func(key string, val *yaml.Node) {
		if !topLevelKeys[key] {
			unknown = append(unknown, key)
			return
		}
		if key != "classes" {
			return
		}
		eachKey(val, func(section string, lines *yaml.Node) {
			eachKey(lines, func(line string, r *yaml.Node) {
				eachKey(r, func(field string, _ *yaml.Node) {
					if !rangeKeys[field] {
						unknown = append(unknown, strings.Join([]string{"classes", section, line, field}, "."))
					}
				})
			})
		})
	})
	return unknown
}

// eachKey calls fn for every key of a mapping node and ignores other nodes.
func eachKey(n *yaml.Node, fn func(key string, val *yaml.Node)) {
	if n == nil || n.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		fn(n.Content[i].Value, n.Content[i+1])
	}
}

func decodeTOML(data []byte, doc *document) error {
	md, err := toml.Decode(string(data), doc)
	if err != nil {
		return &ConfigError{Msg: "malformed TOML", Err: err}
	}
	var keys []string
	for _, k := range md.Undecoded() {
		keys = append(keys, k.String())
	}
	warnUnknown(keys)
	return nil
}

func warnUnknown(keys []string) {
	sort.Strings(keys)
	for _, k := range keys {
		log.WarningLog.Printf("ignoring unknown settings key %q", k)
	}
}

func (d *document) validate() (*Settings, error) {
	if len(d.Roads) < 2 {
		return nil, configErrorf("roads", "need at least 2 road classes, got %d", len(d.Roads))
	}
	seen := make(map[string]bool, len(d.Roads))
	for i, r := range d.Roads {
		if strings.TrimSpace(r) == "" {
			return nil, configErrorf(fmt.Sprintf("roads[%d]", i), "road class name is empty")
		}
		if seen[r] {
			return nil, configErrorf(fmt.Sprintf("roads[%d]", i), "duplicate road class %q", r)
		}
		seen[r] = true
	}

	if len(d.Hue) != 2 {
		return nil, configErrorf("hue", "want [min, max], got %d values", len(d.Hue))
	}
	// The first road takes the minimum hue verbatim.
	if d.Hue[0] < 0 || d.Hue[0] >= 360 {
		return nil, configErrorf("hue", "minimum hue %g outside [0, 360)", d.Hue[0])
	}

	s := &Settings{
		Roads:   append([]string(nil), d.Roads...),
		Hue:     [2]float64{d.Hue[0], d.Hue[1]},
		Classes: make(map[string]map[string]ClassRange, len(d.Classes)),
	}

	if d.LockFirst != nil {
		// Zero means unset, so explicit small values clamp here.
		s.LockFirst = max(*d.LockFirst, 2)
	}

	if len(d.Classes) == 0 {
		return nil, configErrorf("classes", "no sections defined")
	}
	for section, lines := range d.Classes {
		out := make(map[string]ClassRange, len(lines))
		for line, r := range lines {
			key := fmt.Sprintf("classes.%s.%s", section, line)
			if len(r.Lightness) != 2 {
				return nil, configErrorf(key+".lightness", "want [start, end], got %d values", len(r.Lightness))
			}
			if len(r.Chroma) != 2 {
				return nil, configErrorf(key+".chroma", "want [start, end], got %d values", len(r.Chroma))
			}
			out[line] = ClassRange{
				Lightness: [2]float64{r.Lightness[0], r.Lightness[1]},
				Chroma:    [2]float64{r.Chroma[0], r.Chroma[1]},
			}
		}
		s.Classes[section] = out
	}

	return s, nil
}

// Locked returns LockFirst clamped into [2, len(Roads)].
func (s *Settings) Locked() int {
	n := s.LockFirst
	if n == 0 {
		n = len(s.Roads)
	}
	return max(2, min(n, len(s.Roads)))
}

// Section returns the line types configured for section.
func (s *Settings) Section(section string) (map[string]ClassRange, error) {
	lines, ok := s.Classes[section]
	if !ok {
		names := make([]string, 0, len(s.Classes))
		for k := range s.Classes {
			names = append(names, k)
		}
		sort.Strings(names)
		return nil, configErrorf("classes", "unknown section %q; available sections: %s", section, strings.Join(names, ", "))
	}
	if len(lines) == 0 {
		return nil, configErrorf("classes."+section, "section has no line types")
	}
	return lines, nil
}
