package bench

import (
	"strings"
	"testing"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
)

func TestExecute(t *testing.T) {
	a := assert.New(t)

	t.Run("callCount", func(t *testing.T) {
		calls := 0
		rep, err := Execute(func() { calls++ }, 25, "count", WithWarmup(10))
		a.NoError(err)

		a.Equal(35, calls)
		a.Equal(25, rep.Attempts)
		a.Equal("count", rep.Title)
		a.LessOrEqual(rep.Min, rep.Avg)
		a.LessOrEqual(rep.Avg, rep.Max)
		a.GreaterOrEqual(rep.Total, rep.Max)
	})

	t.Run("noAttempts", func(t *testing.T) {
		_, err := Execute(func() {}, 0, "none")
		a.ErrorIs(err, ErrNoAttempts)
	})
}

func TestSummarize(t *testing.T) {
	a := assert.New(t)

	rep, err := summarize(stats.Float64Data{10, 20, 30, 40})
	a.NoError(err)

	a.Equal(4, rep.Attempts)
	a.Equal(100*time.Nanosecond, rep.Total)
	a.Equal(10*time.Nanosecond, rep.Min)
	a.Equal(40*time.Nanosecond, rep.Max)
	a.Equal(25*time.Nanosecond, rep.Avg)
	a.Equal(25*time.Nanosecond, rep.Median)
	a.Equal(11*time.Nanosecond, rep.StdDev)
	a.InDelta(0.4472, rep.RelDev, 1e-4)
}

func TestReportString(t *testing.T) {
	a := assert.New(t)

	rep := Report{
		Title:    "mul",
		Attempts: 3,
		Total:    3 * time.Second,
		Min:      500 * time.Nanosecond,
		Max:      1500 * time.Nanosecond,
		Avg:      2 * time.Millisecond,
		RelDev:   0.25,
	}

	s := rep.String()
	a.True(strings.HasPrefix(s, "[mul]\n"))
	a.Contains(s, "Total time : 3.000 s")
	a.Contains(s, "Min. time  : 500 ns")
	a.Contains(s, "Max. time  : 1.500 us")
	a.Contains(s, "Avg. time  : 2.000 ms")
	a.Contains(s, "Rel. Dev.  : 25.00%")
}
