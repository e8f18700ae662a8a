package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		label   string
		want    Level
		wantErr bool
	}{
		{"", Unspecified, false},
		{"UNSPECIFIED", Unspecified, false},
		{"IM_SYSTEM_VORHANDEN", ImSystemVorhanden, false},
		{"ERWARTET", Erwartet, false},
		{"INFORMATIV", Informativ, false},
		{"erwartet", Unspecified, true},
		{"null", Unspecified, true},
		{"BESTELLT", Unspecified, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseLevel(tt.label)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_Renderings(t *testing.T) {
	assert.Equal(t, "null", Unspecified.BO4EExpr())
	assert.Equal(t, "BO4E.ENUM.Qualitaet.IM_SYSTEM_VORHANDEN", ImSystemVorhanden.BO4EExpr())
	assert.Equal(t, "", Unspecified.Label())
	assert.Equal(t, "INFORMATIV", Informativ.Label())
	assert.Equal(t, "Erwartete Daten", Erwartet.Column())
	assert.Equal(t, "Level(9)", Level(9).String())
	assert.False(t, Level(9).Valid())
}

func TestLevel_TextRoundTrip(t *testing.T) {
	for _, l := range Levels {
		text, err := l.MarshalText()
		require.NoError(t, err)

		var back Level
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, l, back)
	}

	_, err := Level(7).MarshalText()
	assert.Error(t, err)
}
