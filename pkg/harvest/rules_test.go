package harvest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableLookup(t *testing.T) {
	table := DefaultTable()

	r, ok := table.Lookup("corn")
	assert.True(t, ok)
	assert.Equal(t, Rule{Kind: KindOffset, FirstDays: 90, RoutineDays: 30}, r)

	r, ok = table.Lookup("LIMONES")
	assert.True(t, ok)
	assert.Equal(t, KindPerennial, r.Kind)
	assert.Equal(t, 5, r.FirstYears)

	// Only the Spanish label selects the citrus rule.
	_, ok = table.Lookup("lemons")
	assert.False(t, ok)
	assert.Equal(t, table.Fallback(), table.Resolve("lemons"))
}

func TestTableSetReplacesAlias(t *testing.T) {
	table := DefaultTable()
	table.Set("maize", Rule{Kind: KindOffset, FirstDays: 100, RoutineDays: 10})

	r := table.Resolve("maize")
	assert.Equal(t, 100, r.FirstDays)
	assert.Equal(t, 90, table.Resolve("maíz").FirstDays)
}

func TestTableCrops(t *testing.T) {
	assert.Equal(t, []string{"limones", "maíz", "tomate", "trigo"}, DefaultTable().Crops())
	assert.Equal(t, 4, DefaultTable().Len())
}

func TestRuleKindString(t *testing.T) {
	assert.Equal(t, "offset", KindOffset.String())
	assert.Equal(t, "perennial", KindPerennial.String())
}
