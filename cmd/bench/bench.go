package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/viniciusth/lcsubstr"
)

type variant struct {
	name   string
	config func(*lcsubstr.MatcherBuilder) *lcsubstr.MatcherBuilder
}

var variants = map[string]variant{
	"table":             {name: "table", config: func(b *lcsubstr.MatcherBuilder) *lcsubstr.MatcherBuilder { return b }},
	"suffix_array":      {name: "suffix_array", config: func(b *lcsubstr.MatcherBuilder) *lcsubstr.MatcherBuilder { return b.UseSuffixArray() }},
	"table_fold":        {name: "table_fold", config: func(b *lcsubstr.MatcherBuilder) *lcsubstr.MatcherBuilder { return b.IgnoreCase().Normalize() }},
	"suffix_array_fold": {name: "suffix_array_fold", config: func(b *lcsubstr.MatcherBuilder) *lcsubstr.MatcherBuilder { return b.UseSuffixArray().IgnoreCase().Normalize() }},
}

type densityType string

const (
	// Random text, common runs are short.
	densityLow densityType = "low"
	// A run of length p is planted in both texts.
	densityHigh densityType = "high"
)

const csvHeader = "variant,n,m,p,density,result,ns,peak_alloc,alloc"

var errPlantedMissed = errors.New("result shorter than the planted run")

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
	done     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(mm.done)
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			case <-ticker.C:
			}
		}
	}()
	return mm
}

// Stop waits for the sampling goroutine to exit and returns the peak it saw.
func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	<-mm.done
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func randomLower(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.Intn(26) + 'a')
	}
	return b
}

// generatePair builds texts of length n and m. With densityHigh both get the same run of length p.
func generatePair(r *rand.Rand, n, m, p int, density densityType) (string, string) {
	a, b := randomLower(r, n), randomLower(r, m)
	if density == densityHigh {
		common := randomLower(r, p)
		copy(a[r.Intn(n-p+1):], common)
		copy(b[r.Intn(m-p+1):], common)
	}
	return string(a), string(b)
}

func measureLength(matcher *lcsubstr.Matcher, a, b string) (int, time.Duration, uint64, uint64, error) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	length, err := matcher.Length(a, b)
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return length, dur, peak, alloc, err
}

// runScenario runs s.Runs times, writing one CSV line per run to w.
func runScenario(w io.Writer, logger *zap.Logger, s scenario) error {
	v, ok := variants[s.Variant]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownVariant, s.Variant)
	}
	matcher := v.config(lcsubstr.NewBuilder()).Build()

	for run := 0; run < s.Runs; run++ {
		r := rand.New(rand.NewSource(s.Seed + int64(run)))
		a, b := generatePair(r, s.N, s.M, s.P, s.Density)

		length, dur, peak, alloc, err := measureLength(matcher, a, b)
		if err != nil {
			return fmt.Errorf("run %d: %w", run, err)
		}
		if s.Density == densityHigh && length < s.P {
			return fmt.Errorf("run %d: %w: got %d, planted %d", run, errPlantedMissed, length, s.P)
		}

		logger.Debug("run finished",
			zap.String("variant", v.name),
			zap.Int("run", run),
			zap.Int("result", length),
			zap.Duration("elapsed", dur),
			zap.Uint64("peak_alloc", peak),
		)
		fmt.Fprintf(w, "%s,%d,%d,%d,%s,%d,%d,%d,%d\n",
			v.name, s.N, s.M, s.P, s.Density,
			length, dur.Nanoseconds(), peak, alloc)
	}
	return nil
}
