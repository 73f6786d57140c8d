package render

import "testing"

func TestTruncateEllipsis(t *testing.T) {
	tests := []struct {
		in       string
		maxWidth int
		want     string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is too long", 8, "this is…"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := TruncateEllipsis(tt.in, tt.maxWidth); got != tt.want {
			t.Errorf("TruncateEllipsis(%q, %d) = %q, want %q", tt.in, tt.maxWidth, got, tt.want)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean passthrough", "Aurora", "Aurora"},
		{"strips control chars", "Au\x1b[31mrora", "Au[31mrora"},
		{"strips null and bell", "A\x00u\x07rora", "Aurora"},
		{"keeps tab", "A\turora", "A\turora"},
		{"drops invalid utf8", "Au\xffrora", "Aurora"},
		{"nbsp becomes space", "Au\u00a0rora", "Au rora"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("%s: Sanitize(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestTruncateEllipsis_SanitizesInput(t *testing.T) {
	if got := TruncateEllipsis("Au\x00rora", 10); got != "Aurora" {
		t.Errorf("TruncateEllipsis = %q, want control bytes stripped", got)
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 5); got != "ab   " {
		t.Errorf("Pad(ab, 5) = %q", got)
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if len(got) != 20 {
		t.Errorf("Row width = %d, want 20", len(got))
	}
	if got[:4] != "left" || got[len(got)-5:] != "right" {
		t.Errorf("Row = %q", got)
	}
}

func TestRow_TooNarrowKeepsGap(t *testing.T) {
	got := Row("left", "right", 5)
	if got != "left right" {
		t.Errorf("Row = %q, want single-space gap", got)
	}
}
