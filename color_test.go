package stepspiral

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGBA
		wantErr bool
	}{
		{"short", "F00", RGB(1, 0, 0), false},
		{"long with hash", "#00FF00", RGB(0, 1, 0), false},
		{"lowercase", "0000ff", RGB(0, 0, 1), false},
		{"with alpha", "FFFFFF00", RGBA{1, 1, 1, 0}, false},
		{"empty", "", RGBA{}, true},
		{"bad length", "12345", RGBA{}, true},
		{"bad digit", "GG0000", RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Approx(tt.want, 1e-9) {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHex_FallbackBlack(t *testing.T) {
	if got := Hex("nope"); got != Black {
		t.Errorf("Hex(invalid) = %v, want opaque black", got)
	}
}

func TestRGBA_Lerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := RGB(0.5, 0.5, 0.5)
	if !got.Approx(want, 1e-12) {
		t.Errorf("Lerp = %v, want %v", got, want)
	}
	if got := Red.Lerp(Blue, 0); got != Red {
		t.Errorf("Lerp(t=0) = %v, want %v", got, Red)
	}
	if got := Red.Lerp(Blue, 1); !got.Approx(Blue, 1e-12) {
		t.Errorf("Lerp(t=1) = %v, want %v", got, Blue)
	}
}

func TestRGBA_NRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"black", Black, color.NRGBA{0, 0, 0, 255}},
		{"white", White, color.NRGBA{255, 255, 255, 255}},
		{"translucent white", White.WithAlpha(0.2), color.NRGBA{255, 255, 255, 51}},
		{"out of range clamps", RGBA{2, -1, 0.5, 1}, color.NRGBA{255, 0, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.NRGBA(); got != tt.want {
				t.Errorf("NRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}
