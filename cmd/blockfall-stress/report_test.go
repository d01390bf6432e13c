package main

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimingsFinalize(t *testing.T) {
	var empty Timings
	empty.Finalize()
	assert.Zero(t, empty.Avg)

	timings := Timings{Samples: []time.Duration{
		4 * time.Millisecond, 1 * time.Millisecond, 3 * time.Millisecond, 2 * time.Millisecond,
	}}
	timings.Finalize()

	assert.Equal(t, time.Millisecond, timings.Min)
	assert.Equal(t, 4*time.Millisecond, timings.Max)
	assert.Equal(t, 2500*time.Microsecond, timings.Avg)
	assert.Equal(t, 3*time.Millisecond, timings.P50)
	assert.Equal(t, 3*time.Millisecond, timings.P99)
	assert.Equal(t, 4*time.Millisecond, timings.Samples[0], "samples keep their order")
}

func TestReportGenerate(t *testing.T) {
	report := &Report{
		Duration:     time.Second,
		Width:        10,
		Height:       20,
		Seed:         7,
		Burst:        4,
		TotalUpdates: 500,
		TotalTime:    time.Second,
	}
	report.Engine.PiecesLocked = 42
	report.Engine.Clears[4] = 2

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Board:** 10x20")
	assert.Contains(t, out, "(500/s)")
	assert.Contains(t, out, "**Pieces Locked:** 42")
	assert.Contains(t, out, " 4=2")
	assert.NotContains(t, out, "GC Pause")
}

func TestDrive(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 3
	cfg.TickInterval = time.Hour

	engine, err := tetris.New(cfg)
	require.NoError(t, err)
	defer engine.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var timings Timings
	updates, elapsed := drive(ctx, engine, rand.New(rand.NewPCG(1, 1)), 4, &timings)

	assert.Positive(t, updates)
	assert.Len(t, timings.Samples, int(updates))
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)

	stats := engine.Stats()
	assert.Equal(t, updates, stats.Updates)
	assert.Positive(t, stats.PiecesLocked)
	assert.Equal(t, tetris.Active, engine.State(), "lost games are restarted")
}
