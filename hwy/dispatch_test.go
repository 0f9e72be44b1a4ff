package hwy

import (
	"errors"
	"testing"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX, "avx"},
		{DispatchAVX2, "avx2"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String(): got %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCurrentName(t *testing.T) {
	if got, want := CurrentName(), CurrentLevel().String(); got != want {
		t.Errorf("CurrentName: got %q, want %q", got, want)
	}
	if w := CurrentWidth(); w != Narrow && w != Wide {
		t.Errorf("CurrentWidth: got %v", w)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv with HWY_NO_SIMD=%q: got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestSetCheckMasks(t *testing.T) {
	prev := SetCheckMasks(true)
	defer SetCheckMasks(prev)

	if !CheckMasks() {
		t.Fatal("CheckMasks: got false after SetCheckMasks(true)")
	}
	if old := SetCheckMasks(false); !old {
		t.Error("SetCheckMasks: previous value should be true")
	}
	if CheckMasks() {
		t.Error("CheckMasks: got true after SetCheckMasks(false)")
	}
}

func TestCPUFeaturesConsistent(t *testing.T) {
	if HasNEON() && (HasAVX() || HasAVX2()) {
		t.Error("NEON and AVX reported together")
	}
	if LevelOf[int32, Int32x8]() == DispatchAVX2 && !HasAVX2() {
		t.Error("AVX2 lowering installed on a CPU without AVX2")
	}
}

func TestParseWidth(t *testing.T) {
	tests := []struct {
		in   string
		want Width
	}{
		{"narrow", Narrow},
		{"128", Narrow},
		{" Wide ", Wide},
		{"256bit", Wide},
	}
	for _, tt := range tests {
		got, err := ParseWidth(tt.in)
		if err != nil {
			t.Errorf("ParseWidth(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWidth(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseWidth("512"); !errors.Is(err, ErrUnknownWidth) {
		t.Errorf("ParseWidth(512): got %v, want ErrUnknownWidth", err)
	}
}

func TestWidth(t *testing.T) {
	if Narrow.Bytes() != 16 || Wide.Bytes() != 32 {
		t.Errorf("Bytes: got %d/%d, want 16/32", Narrow.Bytes(), Wide.Bytes())
	}
	if Narrow.Bits() != 128 || Wide.Bits() != 256 {
		t.Errorf("Bits: got %d/%d, want 128/256", Narrow.Bits(), Wide.Bits())
	}
	if got := Narrow.Lanes(4); got != 4 {
		t.Errorf("Narrow.Lanes(4): got %d, want 4", got)
	}
	if got := Wide.Lanes(4); got != 8 {
		t.Errorf("Wide.Lanes(4): got %d, want 8", got)
	}
	if got := Wide.Lanes(0); got != 0 {
		t.Errorf("Wide.Lanes(0): got %d, want 0", got)
	}
	if got := Width(512).String(); got != "512bit" {
		t.Errorf("Width(512).String(): got %q", got)
	}
	if Narrow.String() != "narrow" || Wide.String() != "wide" {
		t.Errorf("String: got %q/%q", Narrow.String(), Wide.String())
	}
}
