package layout

import (
	"encoding/json"
	"math"
	"testing"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 396, 612, 1000}
	for _, pt := range samples {
		back := pt * PtToMm * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt back=%g diff=%g", pt, back, diff)
		}
	}
}

func TestLengthConversions(t *testing.T) {
	if got := (Length{Value: 5.5, Unit: UnitIN}).ToPT(); math.Abs(got-396) > 1e-9 {
		t.Fatalf("5.5in 期望 396pt，实际 %g", got)
	}
	if got := (Length{Value: 2.54, Unit: UnitCM}).ToMM(); math.Abs(got-25.4) > 1e-9 {
		t.Fatalf("2.54cm 期望 25.4mm，实际 %g", got)
	}
	if got := (Length{Value: 10, Unit: UnitMM}).ToPT(); math.Abs(got-10*MmToPt) > 1e-9 {
		t.Fatalf("10mm 转 pt 错误: %g", got)
	}
	if got := (Length{Value: 12, Unit: UnitNone}).ToPT(); got != 12 {
		t.Fatalf("无单位数值按 pt 处理，实际 %g", got)
	}
}

func TestParseLength(t *testing.T) {
	l, err := ParseLength(" 8.5in ")
	if err != nil || l.Unit != UnitIN || l.Value != 8.5 {
		t.Fatalf("unexpected %+v, %v", l, err)
	}
	if _, err := ParseLength("wide"); err == nil {
		t.Fatalf("expected error for non-numeric length")
	}
}

func TestLengthJSON(t *testing.T) {
	var v struct {
		A Length `json:"a"`
		B Length `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a": 28, "b": "10mm"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.A.ToPT() != 28 {
		t.Fatalf("number should be read as points, got %g", v.A.ToPT())
	}
	if v.B.Unit != UnitMM || v.B.Value != 10 {
		t.Fatalf("unexpected %+v", v.B)
	}
	out, err := json.Marshal(v.B)
	if err != nil || string(out) != `"10mm"` {
		t.Fatalf("marshal: %s %v", out, err)
	}
	if err := json.Unmarshal([]byte(`{"a": true}`), &v); err == nil {
		t.Fatalf("expected error for boolean length")
	}
}
