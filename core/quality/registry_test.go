package quality_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"qualitymap/core/catalog"
	"qualitymap/core/quality"
)

func sample() []quality.Entry {
	return []quality.Entry{
		{Code: "Z50_Termindaten_der_Marktlokation", Quality: quality.Unspecified, Description: "Termindaten der Marktlokation"},
		{Code: "Z78", Quality: quality.Unspecified, Description: "Referenz auf die Lokationsbündelstruktur"},
		{Code: "ZD5", Quality: quality.Informativ, Description: "Referenz auf die Lokationsbündelstruktur"},
		{Code: "ZC7", Quality: quality.Erwartet, Description: "Referenz auf die Lokationsbündelstruktur"},
		{Code: "ZC8", Quality: quality.ImSystemVorhanden, Description: "Referenz auf die Lokationsbündelstruktur"},
		{Code: "EO", Quality: quality.Unspecified, Description: "Steuerbox"},
	}
}

func TestNew_LookupReturnsSuppliedEntries(t *testing.T) {
	entries := sample()
	r, err := quality.New(entries)
	require.NoError(t, err)
	require.Equal(t, len(entries), r.Len())

	for _, want := range entries {
		got, err := r.Lookup(want.Code)
		require.NoError(t, err, want.Code)
		assert.Equal(t, want, got)
	}
}

func TestQualityOf_SampleEndToEnd(t *testing.T) {
	r := quality.MustNew(sample())

	level, err := r.QualityOf("Z50_Termindaten_der_Marktlokation")
	require.NoError(t, err)
	assert.Equal(t, quality.Unspecified, level)

	level, err = r.QualityOf("ZC7")
	require.NoError(t, err)
	assert.Equal(t, quality.Erwartet, level)
}

func TestLookup_Absent(t *testing.T) {
	r := quality.MustNew(sample())

	_, err := r.Lookup("DOES_NOT_EXIST")
	require.Error(t, err)
	assert.ErrorIs(t, err, quality.ErrNotFound)

	var nf *quality.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "DOES_NOT_EXIST", nf.Code)

	_, err = r.QualityOf("DOES_NOT_EXIST")
	assert.ErrorIs(t, err, quality.ErrNotFound)
}

func TestLookup_CaseSensitive(t *testing.T) {
	r := quality.MustNew(sample())

	_, err := r.Lookup("zc7")
	assert.ErrorIs(t, err, quality.ErrNotFound)
	_, err = r.Lookup(" ZC7")
	assert.ErrorIs(t, err, quality.ErrNotFound)
	assert.False(t, r.Contains("eo"))
	assert.True(t, r.Contains("EO"))
}

func TestQualityOrDefault(t *testing.T) {
	r := quality.MustNew(sample())
	assert.Equal(t, quality.Informativ, r.QualityOrDefault("ZD5", quality.Erwartet))
	assert.Equal(t, quality.Erwartet, r.QualityOrDefault("missing", quality.Erwartet))
}

func TestNew_DuplicateCode(t *testing.T) {
	entries := append(sample(), quality.Entry{Code: "ZD5", Quality: quality.Erwartet, Description: "other"})

	r, err := quality.New(entries)
	require.Nil(t, r, "no partially built registry")
	require.ErrorIs(t, err, quality.ErrDuplicateCode)

	var dup *quality.DuplicateCodeError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "ZD5", dup.Code)
	assert.Equal(t, 2, dup.FirstIndex)
	assert.Equal(t, 6, dup.Index)
}

func TestNew_InvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry quality.Entry
	}{
		{"empty code", quality.Entry{Code: "", Description: "x"}},
		{"blank code", quality.Entry{Code: " \t", Description: "x"}},
		{"level below range", quality.Entry{Code: "Z01", Quality: quality.Level(-1)}},
		{"level above range", quality.Entry{Code: "Z01", Quality: quality.Level(4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := quality.New([]quality.Entry{tt.entry})
			assert.Nil(t, r)
			assert.ErrorIs(t, err, quality.ErrInvalidEntry)
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		quality.MustNew([]quality.Entry{{Code: "A1"}, {Code: "A1"}})
	})
}

func TestEntriesWithDescription_FamilyGrouping(t *testing.T) {
	r := catalog.Default()

	family := r.EntriesWithDescription("Referenz auf die Lokationsbündelstruktur")
	codes := make([]string, 0, len(family))
	for _, e := range family {
		codes = append(codes, e.Code)
	}
	assert.Equal(t, []string{"Z78", "ZD5", "ZC7", "ZC8"}, codes)

	assert.Empty(t, r.EntriesWithDescription("Referenz auf die lokationsbündelstruktur"))
}

func TestEntriesWithDescription_ReturnsCopy(t *testing.T) {
	r := quality.MustNew(sample())

	first := r.EntriesWithDescription("Steuerbox")
	first[0].Code = "mutated"
	again := r.EntriesWithDescription("Steuerbox")
	assert.Equal(t, "EO", again[0].Code)
}

func TestAllCodes_OrderedAndRestartable(t *testing.T) {
	entries := sample()
	r := quality.MustNew(entries)

	want := make([]string, len(entries))
	for i, e := range entries {
		want[i] = e.Code
	}

	assert.Equal(t, want, slices.Collect(r.AllCodes()))
	assert.Equal(t, want, slices.Collect(r.AllCodes()), "second pass yields the same sequence")

	// early break
	var firstTwo []string
	for code := range r.AllCodes() {
		firstTwo = append(firstTwo, code)
		if len(firstTwo) == 2 {
			break
		}
	}
	assert.Equal(t, want[:2], firstTwo)
}

func TestSlice_IsCopy(t *testing.T) {
	r := quality.MustNew(sample())
	s := r.Slice()
	s[0].Quality = quality.Erwartet

	level, err := r.QualityOf(s[0].Code)
	require.NoError(t, err)
	assert.Equal(t, quality.Unspecified, level)
}

func TestFingerprint(t *testing.T) {
	a := quality.MustNew(sample())
	b := quality.MustNew(sample())
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	reordered := sample()
	reordered[1], reordered[2] = reordered[2], reordered[1]
	c := quality.MustNew(reordered)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestConcurrentReaders(t *testing.T) {
	r := catalog.Default()
	codes := slices.Collect(r.AllCodes())

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, code := range codes {
				if _, err := r.Lookup(code); err != nil {
					t.Errorf("lookup %s: %v", code, err)
				}
				_ = r.EntriesWithDescription(code)
			}
			_ = r.Families()
		}()
	}
	wg.Wait()
}

// Property: construction succeeds iff codes are unique, and then every
// supplied entry is returned unchanged in order.
func TestNew_UniquenessProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		codes := rapid.SliceOfN(rapid.StringMatching(`Z[0-9A-H]{1,2}`), 1, 30).Draw(t, "codes")
		entries := make([]quality.Entry, len(codes))
		for i, code := range codes {
			entries[i] = quality.Entry{
				Code:        code,
				Quality:     quality.Level(rapid.IntRange(0, 3).Draw(t, "level")),
				Description: rapid.SampledFrom([]string{"Wandlerdaten", "Profildaten", "Steuerbox"}).Draw(t, "desc"),
			}
		}

		unique := len(slices.Compact(slices.Sorted(slices.Values(codes)))) == len(codes)
		r, err := quality.New(entries)

		if !unique {
			if !errors.Is(err, quality.ErrDuplicateCode) {
				t.Fatalf("expected duplicate error, got %v", err)
			}
			if r != nil {
				t.Fatalf("registry published despite duplicate")
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := r.Slice(); !slices.Equal(got, entries) {
			t.Fatalf("entries changed: %v != %v", got, entries)
		}
		for _, e := range entries {
			if !e.Quality.Valid() {
				t.Fatalf("level outside closed set: %v", e.Quality)
			}
		}
	})
}
