package entity

import "strings"

const MaxPrecautions = 4

// conditionAliases maps historical misspellings found in the datasets to the
// canonical spelling used as join key.
var conditionAliases = map[string]string{
	"Dimorphic hemmorhoids(piles)": "Dimorphic hemorrhoids(piles)",
	"Peptic ulcer diseae":          "Peptic ulcer disease",
}

// NormalizeConditionName trims the name, collapses inner whitespace and
// resolves known aliases.
func NormalizeConditionName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if canonical, ok := conditionAliases[name]; ok {
		return canonical
	}
	return name
}

type ConditionRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Precautions []string `json:"precautions,omitempty"`
}

// CleanPrecautions keeps at most MaxPrecautions non-empty, trimmed entries.
func CleanPrecautions(raw []string) []string {
	out := make([]string, 0, MaxPrecautions)
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
		if len(out) == MaxPrecautions {
			break
		}
	}
	return out
}

type Prediction struct {
	Condition   string  `json:"condition"`
	DisplayName string  `json:"display_name"`
	Confidence  float64 `json:"confidence"`
}
