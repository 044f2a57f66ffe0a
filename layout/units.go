package layout

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// This file defines unit-safe length values used by configuration.

// Unit represents the original unit of a length value.
type Unit int

const (
	UnitNone Unit = iota // bare numbers, read as points
	UnitMM
	UnitCM
	UnitIN
	UnitPT
)

// Conversion constants between pt and mm.
const (
	PtToMm = 25.4 / 72
	MmToPt = 72 / 25.4
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

func ptPerUnit(u Unit) float64 {
	switch u {
	case UnitMM:
		return MmToPt
	case UnitCM:
		return 10 * MmToPt
	case UnitIN:
		return 72
	default:
		return 1
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64
	Unit  Unit
}

func (l Length) IsZero() bool { return l.Value == 0 }

// To converts this length to the target unit.
func (l Length) To(target Unit) float64 {
	return l.Value * ptPerUnit(l.Unit) / ptPerUnit(target)
}

func (l Length) ToMM() float64 { return l.To(UnitMM) }
func (l Length) ToPT() float64 { return l.To(UnitPT) }

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + UnitToString(l.Unit)
}

// Pt builds a length in points.
func Pt(v float64) Length { return Length{Value: v, Unit: UnitPT} }

// ParseLength parses strings such as "5.5in", "28pt", "10mm" or "12".
func ParseLength(value string) (Length, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, fmt.Errorf("empty length")
	}
	unit := UnitNone
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("invalid length %q: %w", value, err)
	}
	return Length{Value: f, Unit: unit}, nil
}

// UnmarshalJSON accepts a bare number (points) or a string with a unit suffix.
func (l *Length) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*l = Length{Value: f, Unit: UnitPT}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("length must be a number or a string like \"5.5in\"")
	}
	parsed, err := ParseLength(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalJSON writes the length back in its original unit.
func (l Length) MarshalJSON() ([]byte, error) {
	if l.Unit == UnitPT || l.Unit == UnitNone {
		return json.Marshal(l.Value)
	}
	return json.Marshal(l.String())
}
