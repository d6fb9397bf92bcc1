// Package bench times a function over repeated attempts and summarizes the samples.
package bench

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
)

// DefaultWarmup is the number of untimed calls made before measuring.
const DefaultWarmup = 1000

var ErrNoAttempts = errors.New("at least one timed attempt is required")

type Report struct {
	Title    string
	Attempts int

	Total  time.Duration
	Min    time.Duration
	Max    time.Duration
	Avg    time.Duration
	Median time.Duration
	StdDev time.Duration

	// RelDev is StdDev/Avg.
	RelDev float64
}

type config struct {
	warmup int
}

type Option func(*config)

// WithWarmup overrides DefaultWarmup.
func WithWarmup(n int) Option {
	return func(c *config) {
		c.warmup = n
	}
}

// Execute calls fn warmup times, then times attempts further calls.
func Execute(fn func(), attempts int, title string, opts ...Option) (Report, error) {
	if attempts < 1 {
		return Report{}, ErrNoAttempts
	}

	cfg := config{warmup: DefaultWarmup}
	for _, opt := range opts {
		opt(&cfg)
	}

	for i := 0; i < cfg.warmup; i++ {
		fn()
	}

	samples := make(stats.Float64Data, attempts)
	for i := range samples {
		begin := time.Now()
		fn()
		samples[i] = float64(time.Since(begin))
	}

	rep, err := summarize(samples)
	if err != nil {
		return Report{}, fmt.Errorf("summarizing %q: %w", title, err)
	}

	rep.Title = title

	return rep, nil
}

// summarize reduces nanosecond samples to a Report.
func summarize(samples stats.Float64Data) (Report, error) {
	total, err := stats.Sum(samples)
	if err != nil {
		return Report{}, err
	}

	lo, err := stats.Min(samples)
	if err != nil {
		return Report{}, err
	}

	hi, err := stats.Max(samples)
	if err != nil {
		return Report{}, err
	}

	avg, err := stats.Mean(samples)
	if err != nil {
		return Report{}, err
	}

	median, err := stats.Median(samples)
	if err != nil {
		return Report{}, err
	}

	sd, err := stats.StandardDeviationPopulation(samples)
	if err != nil {
		return Report{}, err
	}

	rel := 0.0
	if avg > 0 {
		rel = sd / avg
	}

	return Report{
		Attempts: len(samples),
		Total:    time.Duration(total),
		Min:      time.Duration(lo),
		Max:      time.Duration(hi),
		Avg:      time.Duration(avg),
		Median:   time.Duration(median),
		StdDev:   time.Duration(sd),
		RelDev:   rel,
	}, nil
}

func (r Report) String() string {
	b := strings.Builder{}

	fmt.Fprintf(&b, "[%s]\n", r.Title)
	fmt.Fprintf(&b, "Attempts   : %d\n", r.Attempts)
	fmt.Fprintf(&b, "Total time : %s\n", formatDuration(r.Total))
	fmt.Fprintf(&b, "Min. time  : %s\n", formatDuration(r.Min))
	fmt.Fprintf(&b, "Max. time  : %s\n", formatDuration(r.Max))
	fmt.Fprintf(&b, "Avg. time  : %s\n", formatDuration(r.Avg))
	fmt.Fprintf(&b, "Median     : %s\n", formatDuration(r.Median))
	fmt.Fprintf(&b, "Std. Dev.  : %s\n", formatDuration(r.StdDev))
	fmt.Fprintf(&b, "Rel. Dev.  : %.2f%%", r.RelDev*100)

	return b.String()
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%d ns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.3f us", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.3f s", d.Seconds())
	}
}
