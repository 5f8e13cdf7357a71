package size

import "testing"

func TestBytesDisplay(t *testing.T) {
	tests := []struct {
		value  uint64
		format Format
		want   string
	}{
		{0, FormatPlain, "0"},
		{500, FormatPlain, "500"},
		{65535, FormatPlain, "65535"},
		{1023, FormatBinary, "1023B"},
		{1024, FormatBinary, "1K"},
		{1536, FormatBinary, "2K"},
		{1048576, FormatBinary, "1M"},
		{1000, FormatMetric, "1K"},
		{1500, FormatMetric, "2K"},
		{999, FormatMetric, "999B"},
		{1000000000, FormatMetric, "1G"},
	}
	for _, tt := range tests {
		got := Bytes(tt.value).Display(tt.format)
		if got != tt.want {
			t.Errorf("Bytes(%d).Display(%v) = %q, want %q", tt.value, tt.format, got, tt.want)
		}
	}
}

// TestBytesDisplayMatchesGroundTruth checks the literal value/format/output
// triples that pin down exact rounding and prefix-boundary behavior.
func TestBytesDisplayMatchesGroundTruth(t *testing.T) {
	tests := []struct {
		value  uint64
		format Format
		want   string
	}{
		{65535, FormatPlain, "65535"},

		{0, FormatMetric, "0B"},
		{750, FormatMetric, "750B"},
		{1000, FormatMetric, "1K"},
		{1024, FormatMetric, "1K"},
		{1500, FormatMetric, "2K"},
		{1750, FormatMetric, "2K"},
		{2000, FormatMetric, "2K"},
		{1000000, FormatMetric, "1M"},
		{2000000, FormatMetric, "2M"},
		{2900000, FormatMetric, "3M"},
		{1000000000, FormatMetric, "1G"},
		{1000000000000, FormatMetric, "1T"},
		{1000000000000000, FormatMetric, "1P"},
		{1000000000000000000, FormatMetric, "1000P"},

		{0, FormatBinary, "0B"},
		{750, FormatBinary, "750B"},
		{1000, FormatBinary, "1000B"},
		{1024, FormatBinary, "1K"},
		{1500, FormatBinary, "1K"},
		{1750, FormatBinary, "2K"},
		{2000, FormatBinary, "2K"},
		{1000000, FormatBinary, "977K"},
		{2000000, FormatBinary, "2M"},
		{2900000, FormatBinary, "3M"},
		{1000000000, FormatBinary, "954M"},
		{1000000000000, FormatBinary, "931G"},
		{1000000000000000, FormatBinary, "909T"},
		{1000000000000000000, FormatBinary, "888P"},
	}
	for _, tt := range tests {
		got := Bytes(tt.value).Display(tt.format)
		if got != tt.want {
			t.Errorf("Bytes(%d).Display(%v) = %q, want %q", tt.value, tt.format, got, tt.want)
		}
	}
}

func TestBlocksDisplayIgnoresFormat(t *testing.T) {
	for _, f := range []Format{FormatPlain, FormatMetric, FormatBinary} {
		if got := Blocks(42).Display(f); got != "42" {
			t.Errorf("Blocks(42).Display(%v) = %q, want %q", f, got, "42")
		}
	}
}

func TestAddSaturating(t *testing.T) {
	max := Bytes(^uint64(0))
	got := max.Add(Bytes(1))
	if got.Uint64() != ^uint64(0) {
		t.Errorf("Add did not saturate: got %d", got.Uint64())
	}
}

func TestMulSaturating(t *testing.T) {
	got := Bytes(^uint64(0) / 2).Mul(3)
	if got.Uint64() != ^uint64(0) {
		t.Errorf("Mul did not saturate: got %d", got.Uint64())
	}
	if Bytes(0).Mul(5).Uint64() != 0 {
		t.Error("Mul by zero base should stay zero")
	}
}

func TestSubSaturating(t *testing.T) {
	if got := Bytes(5).SubSaturating(10).Uint64(); got != 0 {
		t.Errorf("SubSaturating floor failed: got %d", got)
	}
	if got := Bytes(10).SubSaturating(3).Uint64(); got != 7 {
		t.Errorf("SubSaturating = %d, want 7", got)
	}
}

func TestLessPanicsOnTypeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic comparing Bytes and Blocks")
		}
	}()
	_ = Bytes(1).Less(Blocks(2))
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"plain", "metric", "binary"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) returned error: %v", s, err)
		}
	}
	if _, err := ParseFormat("bogus"); err == nil {
		t.Error("expected error for unknown format")
	}
}
