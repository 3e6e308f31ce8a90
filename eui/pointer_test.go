package eui

import (
	"testing"
	"time"
)

func TestDoubleClick(t *testing.T) {
	base := time.Unix(100, 0)
	tests := []struct {
		name   string
		clicks []struct {
			at  time.Duration
			pos point
		}
		want []bool
	}{
		{
			name: "quick pair",
			clicks: []struct {
				at  time.Duration
				pos point
			}{{0, point{10, 10}}, {200 * time.Millisecond, point{12, 11}}},
			want: []bool{false, true},
		},
		{
			name: "too slow",
			clicks: []struct {
				at  time.Duration
				pos point
			}{{0, point{10, 10}}, {401 * time.Millisecond, point{10, 10}}},
			want: []bool{false, false},
		},
		{
			name: "moved too far",
			clicks: []struct {
				at  time.Duration
				pos point
			}{{0, point{10, 10}}, {100 * time.Millisecond, point{20, 10}}},
			want: []bool{false, false},
		},
		{
			name: "triple click fires once",
			clicks: []struct {
				at  time.Duration
				pos point
			}{{0, point{5, 5}}, {100 * time.Millisecond, point{5, 5}}, {200 * time.Millisecond, point{5, 5}}},
			want: []bool{false, true, false},
		},
		{
			name: "slow click rearms",
			clicks: []struct {
				at  time.Duration
				pos point
			}{{0, point{5, 5}}, {time.Second, point{5, 5}}, {time.Second + 300*time.Millisecond, point{5, 5}}},
			want: []bool{false, false, true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Gestures
			for i, c := range tt.clicks {
				if got := g.click(base.Add(c.at), c.pos); got != tt.want[i] {
					t.Fatalf("click %d = %v want %v", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestDoubleClickCustomWindow(t *testing.T) {
	g := Gestures{DoubleClickWindow: time.Second, DoubleClickSlop: 50}
	base := time.Unix(100, 0)
	g.click(base, point{0, 0})
	if !g.click(base.Add(900*time.Millisecond), point{30, 30}) {
		t.Fatalf("custom window and slop not honoured")
	}
}

func TestWheelDelta(t *testing.T) {
	var g Gestures
	tests := []struct {
		wy   float64
		want float64
	}{
		{0, 0},
		{-1, 100},
		{1, -100},
		{-0.5, 50},
	}
	for _, tt := range tests {
		if got := g.wheelDelta(tt.wy); got != tt.want {
			t.Fatalf("wheelDelta(%v) = %v want %v", tt.wy, got, tt.want)
		}
	}
	g.WheelStep = 40
	if got := g.wheelDelta(-2); got != 80 {
		t.Fatalf("custom step delta = %v want 80", got)
	}
}
