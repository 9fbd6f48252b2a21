package utils

import (
	"math"
	"testing"
	"time"
)

func TestPopulationSummary(t *testing.T) {
	tests := []struct {
		name        string
		populations []int
		mean, std   float64
	}{
		{"empty", nil, 0, 0},
		{"single", []int{7}, 7, 0},
		{"constant", []int{4, 4, 4}, 4, 0},
		{"spread", []int{2, 4, 4, 4, 5, 5, 7, 9}, 5, 2.138},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStats()
			for i, p := range tt.populations {
				s.Update(i, p, time.Millisecond)
			}
			mean, std := s.PopulationSummary()
			if math.Abs(mean-tt.mean) > 0.001 || math.Abs(std-tt.std) > 0.001 {
				t.Errorf("PopulationSummary() = (%v, %v), want (%v, %v)", mean, std, tt.mean, tt.std)
			}
		})
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(0, 10, 100*time.Millisecond)
	s.Update(1, 20, 100*time.Millisecond)
	s.AddTransition(3, 1)
	s.AddTransition(2, 4)

	if math.Abs(s.GenerationsPerSecond-10) > 0.001 {
		t.Errorf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}
	if math.Abs(s.AveragePopulation-11) > 0.001 {
		t.Errorf("AveragePopulation = %v, want 11", s.AveragePopulation)
	}
	if s.TotalGenerations != 1 || s.TotalBirths != 5 || s.TotalDeaths != 5 {
		t.Errorf("totals = %d gens, %d births, %d deaths", s.TotalGenerations, s.TotalBirths, s.TotalDeaths)
	}
}
