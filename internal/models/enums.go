package models

import "strings"

// EnumTable is the externally fetched set of allowed metadata values used to
// cross-check free-form draft fields. Any empty list disables the check for
// that field.
type EnumTable struct {
	Skills    []string `json:"skills"`
	Statuses  []string `json:"statuses"`
	Providers []string `json:"providers"`
	Levels    []string `json:"levels"`
}

// DefaultEnumTable returns the built-in fallback used when no table has been
// fetched from the backoffice.
func DefaultEnumTable() *EnumTable {
	return &EnumTable{
		Skills:    []string{"lesen", "hoeren", "schreiben", "sprechen"},
		Statuses:  []string{"draft", "published", "archived"},
		Providers: []string{"goethe", "telc", "oesd", "ecl", ProviderLifeInCountry},
		Levels:    []string{"A1", "A2", "B1", "B2", "C1", "C2"},
	}
}

func containsFold(list []string, value string) bool {
	for _, v := range list {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

// HasSkill reports whether the table allows the given skill code.
func (t *EnumTable) HasSkill(skill string) bool {
	return containsFold(t.Skills, skill)
}

// HasProvider reports whether the table allows the given provider identifier.
func (t *EnumTable) HasProvider(provider string) bool {
	return containsFold(t.Providers, provider)
}

// HasLevel reports whether the table allows the given CEFR level.
func (t *EnumTable) HasLevel(level string) bool {
	return containsFold(t.Levels, level)
}

// HasStatus reports whether the table allows the given status.
func (t *EnumTable) HasStatus(status string) bool {
	return containsFold(t.Statuses, status)
}
