// Package quality - Quality levels and the immutable code registry.
// A registry maps each EDI@Energy code to its quality level and mapping hint.
package quality

import "fmt"

// Level classifies how authoritative a piece of market data is
type Level int

const (
	// Unspecified - no quality given (valid data, "Gültige Daten")
	Unspecified Level = iota
	// ImSystemVorhanden - data as present in the recipient's system
	ImSystemVorhanden
	// Erwartet - data the recipient expects
	Erwartet
	// Informativ - sender's data for information only
	Informativ
)

// Levels lists every level in declaration order.
var Levels = []Level{Unspecified, ImSystemVorhanden, Erwartet, Informativ}

// String returns the external label
func (l Level) String() string {
	switch l {
	case Unspecified:
		return "UNSPECIFIED"
	case ImSystemVorhanden:
		return "IM_SYSTEM_VORHANDEN"
	case Erwartet:
		return "ERWARTET"
	case Informativ:
		return "INFORMATIV"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Valid reports whether l is one of the four levels.
func (l Level) Valid() bool {
	return l >= Unspecified && l <= Informativ
}

// Label returns the interchange label: empty for Unspecified, String() otherwise.
func (l Level) Label() string {
	if l == Unspecified {
		return ""
	}
	return l.String()
}

// BO4EExpr returns the C# expression used in Bo4e annotations.
func (l Level) BO4EExpr() string {
	if l == Unspecified {
		return "null"
	}
	return "BO4E.ENUM.Qualitaet." + l.String()
}

// Column returns the quality-map column title the level is read from.
func (l Level) Column() string {
	switch l {
	case Unspecified:
		return "Gültige Daten"
	case ImSystemVorhanden:
		return "Im System vorhandene Daten"
	case Erwartet:
		return "Erwartete Daten"
	case Informativ:
		return "Informative Daten"
	default:
		return ""
	}
}

// ParseLevel parses an external label. The empty string means Unspecified.
// Labels are case-sensitive.
func ParseLevel(label string) (Level, error) {
	switch label {
	case "", "UNSPECIFIED":
		return Unspecified, nil
	case "IM_SYSTEM_VORHANDEN":
		return ImSystemVorhanden, nil
	case "ERWARTET":
		return Erwartet, nil
	case "INFORMATIV":
		return Informativ, nil
	default:
		return Unspecified, fmt.Errorf("unknown quality label %q", label)
	}
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid quality level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
