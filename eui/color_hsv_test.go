package eui

import (
	"encoding/json"
	"testing"
)

func TestHSL(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    Color
	}{
		{0, 100, 50, NewColor(255, 0, 0, 255)},
		{120, 100, 50, NewColor(0, 255, 0, 255)},
		{240, 100, 50, NewColor(0, 0, 255, 255)},
		{0, 100, 100, NewColor(255, 255, 255, 255)},
		{0, 100, 0, NewColor(0, 0, 0, 255)},
		{0, 0, 50, NewColor(128, 128, 128, 255)},
		{0, 100, 75, NewColor(255, 128, 128, 255)},
		{360, 100, 50, NewColor(255, 0, 0, 255)},
		{-120, 100, 50, NewColor(0, 0, 255, 255)},
	}
	for _, tt := range tests {
		if got := HSL(tt.h, tt.s, tt.l); got != tt.want {
			t.Fatalf("HSL(%v, %v, %v) = %v want %v", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ffd700", NewColor(0xff, 0xd7, 0, 0xff), false},
		{"#000000b3", NewColor(0, 0, 0, 0xb3), false},
		{"Gold", NewColor(0xff, 0xd7, 0, 0xff), false},
		{" silver ", NewColor(0xc0, 0xc0, 0xc0, 0xff), false},
		{"0,1,1", NewColor(255, 0, 0, 255), false},
		{"0,0,1,0.5", NewColor(255, 255, 255, 128), false},
		{"#12345", Color{}, true},
		{"mauve-ish", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseColor(%q) err = %v", tt.in, err)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("ParseColor(%q) = %v want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorJSONForms(t *testing.T) {
	var c Color
	if err := json.Unmarshal([]byte(`{"R":1,"G":2,"B":3,"A":4}`), &c); err != nil {
		t.Fatal(err)
	}
	if c != NewColor(1, 2, 3, 4) {
		t.Fatalf("rgba object = %v", c)
	}
	if err := json.Unmarshal([]byte(`"#0000ff"`), &c); err != nil || c != NewColor(0, 0, 255, 255) {
		t.Fatalf("hex string = %v, %v", c, err)
	}

	orig := NewColor(255, 128, 0, 255)
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	var back Color
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != orig {
		t.Fatalf("HSV form came back as %v want %v (%s)", back, orig, data)
	}
}

func TestHueColor(t *testing.T) {
	if got := HueColor(0, 75); got != NewColor(255, 128, 128, 255) {
		t.Fatalf("HueColor(0, 75) = %v", got)
	}
	if got := HueColor(200, 100); got != NewColor(255, 255, 255, 255) {
		t.Fatalf("HueColor(200, 100) = %v", got)
	}
}
