package utils

import (
	"image/color"
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := ClampInt(7, 1, 4); got != 4 {
		t.Errorf("ClampInt(7, 1, 4) = %d", got)
	}
	if got := ClampInt(-3, 1, 4); got != 1 {
		t.Errorf("ClampInt(-3, 1, 4) = %d", got)
	}
	if got := ClampFloat(math.NaN(), 0, 1); got != 0 {
		t.Errorf("ClampFloat(NaN) = %f", got)
	}
	if got := ClampFloat(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampFloat(0.5) = %f", got)
	}
}

func TestRound1(t *testing.T) {
	tests := map[float64]float64{1.26: 1.3, -0.04: 0, 12.349: 12.3, -27.55: -27.6}
	for in, want := range tests {
		if got := Round1(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("Round1(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestViewport(t *testing.T) {
	v := Viewport{CenterX: 10, CenterZ: -5, Scale: 12, Width: 1200, Height: 900}

	sx, sy := v.ToScreen(10, -5)
	if sx != 600 || sy != 450 {
		t.Fatalf("center maps to (%v, %v)", sx, sy)
	}
	sx, sy = v.ToScreen(11, -4)
	if sx != 612 || sy != 438 {
		t.Fatalf("(+1, +1) maps to (%v, %v), want (612, 438)", sx, sy)
	}

	x, z := v.ToWorld(612, 438)
	if math.Abs(x-11) > 1e-9 || math.Abs(z+4) > 1e-9 {
		t.Fatalf("ToWorld = (%v, %v), want (11, -4)", x, z)
	}

	if !v.Visible(10, -5, 0) || v.Visible(200, 0, 1) {
		t.Fatalf("Visible is wrong")
	}
	if !v.Visible(10+50.5, -5, 1) {
		t.Fatalf("point just off the edge should be visible with padding")
	}
}

func TestViewportFollow(t *testing.T) {
	v := Viewport{Scale: 10, Width: 100, Height: 100}
	v.Follow(3, 4)
	if sx, sy := v.ToScreen(3, 4); sx != 50 || sy != 50 {
		t.Fatalf("Follow did not recenter: (%v, %v)", sx, sy)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ff4444", color.RGBA{255, 68, 68, 255}, false},
		{"44ff44", color.RGBA{68, 255, 68, 255}, false},
		{"#fff", color.RGBA{255, 255, 255, 255}, false},
		{"#12345", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
