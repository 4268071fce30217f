package harvest

import (
	"sort"
	"strings"
)

// RuleKind separates the crops whose first harvest is a day offset from the
// ones that take years to bear fruit.
type RuleKind int

const (
	// KindOffset adds FirstDays to the sowing date. Caller overrides win.
	KindOffset RuleKind = iota
	// KindPerennial adds FirstYears calendar years to the sowing date and
	// ignores both caller overrides.
	KindPerennial
)

func (k RuleKind) String() string {
	if k == KindPerennial {
		return "perennial"
	}
	return "offset"
}

func parseKind(s string) (RuleKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "offset", "days":
		return KindOffset, true
	case "perennial", "citrus", "years":
		return KindPerennial, true
	}
	return KindOffset, false
}

type Rule struct {
	Kind        RuleKind
	FirstDays   int
	FirstYears  int
	RoutineDays int
}

const (
	CropCitrus = "limones"
	CropMaize  = "maíz"
	CropWheat  = "trigo"
	CropTomato = "tomate"

	DefaultFirstDays   = 80
	DefaultRoutineDays = 20
)

// Table maps a normalized crop label to its harvest rule. Labels not in the
// table fall back to the default 80/20 day rule.
type Table struct {
	rules    map[string]Rule
	aliases  map[string]string
	fallback Rule
}

// DefaultTable returns the built-in crop rules.
func DefaultTable() *Table {
	t := &Table{
		rules:    map[string]Rule{},
		aliases:  map[string]string{},
		fallback: Rule{Kind: KindOffset, FirstDays: DefaultFirstDays, RoutineDays: DefaultRoutineDays},
	}
	t.Set(CropCitrus, Rule{Kind: KindPerennial, FirstYears: 5, RoutineDays: 180})
	t.Set(CropMaize, Rule{Kind: KindOffset, FirstDays: 90, RoutineDays: 30})
	t.Set(CropWheat, Rule{Kind: KindOffset, FirstDays: 120, RoutineDays: 30})
	t.Set(CropTomato, Rule{Kind: KindOffset, FirstDays: 70, RoutineDays: 15})

	for alias, crop := range map[string]string{
		"maize": CropMaize, "maiz": CropMaize, "corn": CropMaize,
		"wheat": CropWheat, "tomato": CropTomato,
	} {
		t.aliases[alias] = crop
	}
	return t
}

// NormalizeCrop lowercases and trims a crop label.
func NormalizeCrop(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (t *Table) Set(crop string, r Rule) {
	crop = NormalizeCrop(crop)
	delete(t.aliases, crop)
	t.rules[crop] = r
}

// Lookup finds the rule for crop without applying the fallback.
func (t *Table) Lookup(crop string) (Rule, bool) {
	crop = NormalizeCrop(crop)
	if r, ok := t.rules[crop]; ok {
		return r, true
	}
	if target, ok := t.aliases[crop]; ok {
		r, ok := t.rules[target]
		return r, ok
	}
	return Rule{}, false
}

// Resolve is Lookup with the default rule for unknown crops.
func (t *Table) Resolve(crop string) Rule {
	if r, ok := t.Lookup(crop); ok {
		return r
	}
	return t.fallback
}

func (t *Table) Fallback() Rule { return t.fallback }

// Crops lists the configured crop labels (aliases excluded), sorted.
func (t *Table) Crops() []string {
	out := make([]string, 0, len(t.rules))
	for k := range t.rules {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (t *Table) Len() int { return len(t.rules) }
