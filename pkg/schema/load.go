package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Supported document formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// FormatFromPath picks the document format from a file extension.
// Anything other than .json is treated as YAML.
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads a definition file (YAML or JSON, by extension).
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read definition: %w", err)
	}
	def, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return def, nil
}

// Parse decodes a definition document in the given format.
func Parse(data []byte, format string) (Definition, error) {
	var def Definition
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &def); err != nil {
			return Definition{}, fmt.Errorf("failed to parse json definition: %w", err)
		}
	case FormatYAML, "yml", "":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return Definition{}, fmt.Errorf("failed to parse yaml definition: %w", err)
		}
	default:
		return Definition{}, fmt.Errorf("unsupported format %q", format)
	}
	return def, nil
}

// Decode converts a generic map (decoded JSON, tool arguments) into a definition.
// Scalars are weakly typed so that a numeric symbol like 0 becomes "0".
func Decode(raw map[string]any) (Definition, error) {
	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Definition{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Definition{}, fmt.Errorf("failed to decode definition: %w", err)
	}
	return def, nil
}

// Marshal encodes a definition in the given format.
func Marshal(def Definition, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(def, "", "  ")
	case FormatYAML, "yml", "":
		return yaml.Marshal(def)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}
