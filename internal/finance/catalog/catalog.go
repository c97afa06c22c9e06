// Package catalog is the read-only lookup of financial statement line codes
// to their human-readable labels.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

//go:embed indicators.yaml
var indicatorsYAML []byte

var labels map[string]string

func init() {
	parsed, err := parse(indicatorsYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded indicators.yaml: %v", err))
	}
	labels = parsed
}

func parse(raw []byte) (map[string]string, error) {
	out := make(map[string]string)
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no indicators defined")
	}
	return out, nil
}

// Label returns the label for an indicator code.
func Label(code string) (string, bool) {
	l, ok := labels[code]
	return l, ok
}

// DisplayLabel renders a code as "<code>. <label>", or the bare code when the
// catalog does not know it.
func DisplayLabel(code string) string {
	if l, ok := labels[code]; ok {
		return code + ". " + l
	}
	return code
}

// Len reports the number of known indicator codes.
func Len() int {
	return len(labels)
}
