package astro

import (
	"math"
	"testing"
)

func TestSeriesEvaluateBasis(t *testing.T) {
	// Single unit term at t=0: the cosine basis is the default and must
	// return 1.0; the sine basis returns 0.0. Pinned so the convention can
	// never drift silently.
	term := []SeriesTerm{{Amplitude: 1, Phase: 0, Rate: 1}}

	cosSeries := Series{Terms: term}
	if got := cosSeries.Evaluate(0); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("cos-basis Evaluate(0) = %g, want 1.0", got)
	}

	sinSeries := Series{Terms: term, Basis: BasisSin}
	if got := sinSeries.Evaluate(0); math.Abs(got) > 1e-12 {
		t.Errorf("sin-basis Evaluate(0) = %g, want 0.0", got)
	}
}

func TestSeriesEvaluate(t *testing.T) {
	tests := []struct {
		name string
		s    Series
		t    float64
		want float64
		tol  float64
	}{
		{
			name: "polynomial only",
			s:    Series{Poly: []float64{1, 2, 3}},
			t:    2,
			want: 1 + 2*2 + 3*4,
			tol:  1e-12,
		},
		{
			name: "single term quarter turn",
			s:    Series{Terms: []SeriesTerm{{Amplitude: 2, Phase: 0, Rate: 90}}},
			t:    1,
			want: 0, // 2*cos(90 deg)
			tol:  1e-12,
		},
		{
			name: "phase offset",
			s:    Series{Terms: []SeriesTerm{{Amplitude: 1, Phase: 60, Rate: 0}}},
			t:    10,
			want: 0.5, // cos(60 deg)
			tol:  1e-12,
		},
		{
			name: "poly plus periodic",
			s: Series{
				Poly:  []float64{10, 1},
				Terms: []SeriesTerm{{Amplitude: 3, Phase: 180, Rate: 0}},
			},
			t:    2,
			want: 12 - 3,
			tol:  1e-12,
		},
		{
			name: "sine basis term",
			s: Series{
				Basis: BasisSin,
				Terms: []SeriesTerm{{Amplitude: 4, Phase: 30, Rate: 0}},
			},
			t:    0,
			want: 2, // 4*sin(30 deg)
			tol:  1e-12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.s.Evaluate(tt.t)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Evaluate(%g) = %g, want %g", tt.t, got, tt.want)
			}
		})
	}
}

func TestSeriesLargeArgumentStability(t *testing.T) {
	// A fast term evaluated far from the reference epoch: the argument
	// spans tens of thousands of turns, but folding through Normalize360
	// keeps the value identical to the hand-reduced argument.
	s := Series{Terms: []SeriesTerm{{Amplitude: 1, Phase: 124.90, Rate: 36000.76983}}}

	const centuries = 30.0 // three millennia from the epoch
	raw := 124.90 + 36000.76983*centuries
	reduced := math.Mod(raw, 360)
	want := math.Cos(reduced * math.Pi / 180)

	if got := s.Evaluate(centuries); math.Abs(got-want) > 1e-9 {
		t.Errorf("Evaluate(%g) = %.12f, want %.12f", centuries, got, want)
	}
}

func TestSeriesEvaluateIsPure(t *testing.T) {
	s := Series{
		Poly:  []float64{0.016708634, -0.000042037, -0.0000001267},
		Terms: []SeriesTerm{{Amplitude: 1.914602, Phase: 357.52911, Rate: 35999.05029}},
	}

	first := s.Evaluate(-0.072183436)
	for i := 0; i < 5; i++ {
		if got := s.Evaluate(-0.072183436); got != first {
			t.Fatalf("Evaluate() not deterministic: %g then %g", first, got)
		}
	}
}
