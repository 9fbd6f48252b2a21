package utils

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	TotalBirths          int
	TotalDeaths          int
	StartTime            time.Time

	populations []float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.populations = append(s.populations, float64(population))

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// AddTransition accumulates births and deaths of one step
func (s *Stats) AddTransition(births, deaths int) {
	s.TotalBirths += births
	s.TotalDeaths += deaths
}

// PopulationSummary returns the mean and sample standard deviation of every recorded population
func (s *Stats) PopulationSummary() (mean, stdDev float64) {
	switch len(s.populations) {
	case 0:
		return 0, 0
	case 1:
		return s.populations[0], 0
	}
	return stat.MeanStdDev(s.populations, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s *Stats) LogValue() slog.Value {
	mean, stdDev := s.PopulationSummary()
	return slog.GroupValue(
		slog.Int("generations", s.TotalGenerations),
		slog.Float64("gen_per_sec", s.GenerationsPerSecond),
		slog.Float64("avg_population", s.AveragePopulation),
		slog.Float64("population_mean", mean),
		slog.Float64("population_std", stdDev),
		slog.Int("births", s.TotalBirths),
		slog.Int("deaths", s.TotalDeaths),
		slog.Duration("runtime", time.Since(s.StartTime)),
	)
}
