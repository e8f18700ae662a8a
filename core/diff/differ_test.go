package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qualitymap/core/quality"
)

func family() []quality.Entry {
	return []quality.Entry{
		{Code: "Z78", Quality: quality.Unspecified, Description: "Referenz auf die Lokationsbündelstruktur"},
		{Code: "ZD5", Quality: quality.Informativ, Description: "Referenz auf die Lokationsbündelstruktur"},
		{Code: "ZC7", Quality: quality.Erwartet, Description: "Referenz auf die Lokationsbündelstruktur"},
	}
}

func TestTables_Equal(t *testing.T) {
	r := Tables(quality.MustNew(family()), quality.MustNew(family()))
	assert.True(t, r.Equal())
	assert.Equal(t, 3, r.UnchangedCount)
	assert.Equal(t, "0 added, 0 removed, 0 changed, 3 unchanged", r.Summary())
}

func TestTables_Changes(t *testing.T) {
	after := family()
	after[1].Quality = quality.Erwartet
	after = append(after[:2], quality.Entry{Code: "ZC8", Quality: quality.ImSystemVorhanden, Description: "Referenz auf die Lokationsbündelstruktur"})

	r := Tables(quality.MustNew(family()), quality.MustNew(after))
	require.False(t, r.Equal())

	require.Len(t, r.Added, 1)
	assert.Equal(t, "ZC8", r.Added[0].Code)
	assert.Equal(t, ChangeAdded, r.Added[0].ChangeType)

	require.Len(t, r.Removed, 1)
	assert.Equal(t, "ZC7", r.Removed[0].Code)

	require.Len(t, r.Changed, 1)
	assert.Equal(t, "ZD5", r.Changed[0].Code)
	assert.True(t, r.Changed[0].QualityChanged)
	assert.False(t, r.Changed[0].DescriptionChanged)
	assert.Equal(t, quality.Informativ, r.Changed[0].Before.Quality)

	pretty := r.Pretty()
	assert.Contains(t, pretty, "  Z78\t\tReferenz auf die Lokationsbündelstruktur\n")
	assert.Contains(t, pretty, "- ZD5\tINFORMATIV\t")
	assert.Contains(t, pretty, "+ ZD5\tERWARTET\t")
	assert.Contains(t, pretty, "- ZC7\tERWARTET\t")
	assert.Contains(t, pretty, "+ ZC8\tIM_SYSTEM_VORHANDEN\t")
}

func TestTables_OrderChanged(t *testing.T) {
	reordered := family()
	reordered[0], reordered[2] = reordered[2], reordered[0]

	r := Tables(quality.MustNew(family()), quality.MustNew(reordered))
	assert.True(t, r.OrderChanged)
	assert.False(t, r.Equal())
	assert.Empty(t, r.Changed)
	assert.Contains(t, r.Summary(), "order changed")
}

func TestChangeType_String(t *testing.T) {
	assert.Equal(t, "modified", ChangeModified.String())
	assert.Equal(t, "unknown", ChangeType(42).String())
}
