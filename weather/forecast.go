// Package weather serves randomly generated forecasts under two API versions.
package weather

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Summaries are the words a forecast summary is drawn from.
var Summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild", "Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

const (
	minTemperatureC = -20
	maxTemperatureC = 55
)

// Forecast is the weather predicted for one day.
type Forecast struct {
	Date         time.Time `json:"date"`
	TemperatureC int       `json:"temperatureC"`
	TemperatureF int       `json:"temperatureF"`
	Summary      string    `json:"summary"`
}

// FahrenheitFromCelsius converts the way the forecast payload reports it.
func FahrenheitFromCelsius(c int) int {
	return 32 + int(float64(c)/0.5556)
}

// ForecasterOption configures a Forecaster.
type ForecasterOption func(*Forecaster)

// Forecaster produces forecasts. It is safe for concurrent use.
type Forecaster struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewForecaster returns a Forecaster seeded from the runtime source.
func NewForecaster(opts ...ForecasterOption) *Forecaster {
	f := &Forecaster{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// WithSeed makes the forecasts reproducible.
func WithSeed(seed uint64) ForecasterOption {
	return func(f *Forecaster) {
		f.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithClock overrides the reference time of the forecasts.
func WithClock(now func() time.Time) ForecasterOption {
	return func(f *Forecaster) {
		if now != nil {
			f.now = now
		}
	}
}

// Forecast returns one forecast per day for the days following today.
func (f *Forecaster) Forecast(days int) []Forecast {
	if days <= 0 {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	today := f.now()
	out := make([]Forecast, 0, days)
	for i := 1; i <= days; i++ {
		c := minTemperatureC + f.rng.IntN(maxTemperatureC-minTemperatureC)
		out = append(out, Forecast{
			Date:         today.AddDate(0, 0, i),
			TemperatureC: c,
			TemperatureF: FahrenheitFromCelsius(c),
			Summary:      Summaries[f.rng.IntN(len(Summaries))],
		})
	}
	return out
}
