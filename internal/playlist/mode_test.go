package playlist

import "testing"

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeSingle, "single"},
		{ModeSingleLoop, "single-loop"},
		{ModeSequential, "sequential"},
		{ModeLoopAll, "loop-all"},
		{ModeShuffle, "shuffle"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeSingle, ModeSingleLoop, ModeSequential, ModeLoopAll, ModeShuffle} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Errorf("ParseMode(%q) error = %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}

	if got, err := ParseMode(" Loop_All "); err != nil || got != ModeLoopAll {
		t.Errorf("ParseMode(\" Loop_All \") = %v, %v; want loop-all", got, err)
	}

	if _, err := ParseMode("random"); err == nil {
		t.Error("ParseMode(\"random\") should fail")
	}
}

func TestMode_Next_Cycles(t *testing.T) {
	m := ModeSingle
	seen := map[Mode]bool{}
	for range 5 {
		seen[m] = true
		m = m.Next()
	}
	if m != ModeSingle {
		t.Errorf("after 5 steps mode = %v, want single", m)
	}
	if len(seen) != 5 {
		t.Errorf("visited %d modes, want 5", len(seen))
	}
}
