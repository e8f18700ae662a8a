package determinism

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHasher_SeparatesParts(t *testing.T) {
	a := NewContentHasher()
	a.Add("ab", "c")
	b := NewContentHasher()
	b.Add("a", "bc")
	assert.NotEqual(t, a.Sum(), b.Sum())

	c := NewContentHasher()
	c.Add("ab", "c")
	assert.Equal(t, a.Sum(), c.Sum())
}

func TestContentHasher_OrderMatters(t *testing.T) {
	a := NewContentHasher()
	a.Add("Z78")
	a.Add("ZD5")
	b := NewContentHasher()
	b.Add("ZD5")
	b.Add("Z78")
	assert.NotEqual(t, a.Sum(), b.Sum())
}

func TestContentHash_String(t *testing.T) {
	h := ComputeHash([]byte("qualitymap"))
	require.Len(t, h.Hex(), 64)
	assert.Equal(t, h.Hex()[:16]+"...", h.String())
}

func TestPercent(t *testing.T) {
	tests := []struct {
		part, total int
		want        string
	}{
		{0, 0, "0"},
		{1, 4, "25"},
		{1, 3, "33.33"},
		{2, 3, "66.67"},
		{49, 181, "27.07"},
		{181, 181, "100"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.part, tt.total).String(), "%d/%d", tt.part, tt.total)
	}
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]int{"ZC7": 1, "Z78": 2, "ZD5": 3})
	assert.Equal(t, []string{"Z78", "ZC7", "ZD5"}, keys)
}
