package inspect

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formats are the accepted --format values. The separator formats may be
// combined; json and yaml stand alone.
var Formats = []string{"comma", "newline", "space", "json", "yaml"}

var separators = []struct {
	format string
	sep    string
}{
	{"comma", ","},
	{"newline", "\n"},
	{"space", " "},
}

// CheckFormats validates a --format selection.
func CheckFormats(formats []string) error {
	for _, f := range formats {
		if !slices.Contains(Formats, f) {
			return fmt.Errorf("unknown format %q, allowed formats are: %s", f, strings.Join(Formats, ", "))
		}
	}
	if len(formats) > 1 {
		for _, f := range []string{"json", "yaml"} {
			if slices.Contains(formats, f) {
				return fmt.Errorf("format %q cannot be combined with other formats", f)
			}
		}
	}
	return nil
}

// Render writes values in the selected format. With no format the values
// are comma separated; with several separator formats the first of comma,
// newline and space wins.
func Render(formats []string, values []string) (string, error) {
	if err := CheckFormats(formats); err != nil {
		return "", err
	}
	if values == nil {
		values = []string{}
	}
	if len(formats) == 0 {
		return strings.Join(values, ","), nil
	}
	switch formats[0] {
	case "json":
		data, err := json.Marshal(values)
		if err != nil {
			return "", fmt.Errorf("marshal values to json: %w", err)
		}
		return string(data), nil
	case "yaml":
		data, err := yaml.Marshal(values)
		if err != nil {
			return "", fmt.Errorf("marshal values to yaml: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	}
	for _, s := range separators {
		if slices.Contains(formats, s.format) {
			return strings.Join(values, s.sep), nil
		}
	}
	return "", fmt.Errorf("unsupported formats: %v", formats)
}
