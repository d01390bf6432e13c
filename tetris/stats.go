package tetris

import (
	"time"

	"github.com/kamstrup/intmap"
)

// Stats summarizes engine activity since construction. Reset starts a new
// game but does not clear the statistics.
type Stats struct {
	Games             int64
	Updates           int64
	Batches           int64
	CommandsProcessed int64
	CommandsDiscarded int64
	GravityDrops      uint64
	PiecesLocked      int64
	LinesCleared      int64

	// Clears counts locks by the number of rows they completed, 0 through 4.
	Clears [5]int64

	// LocksByKind counts locked pieces per kind, indexed by Kind.
	LocksByKind [KindCount]int64

	MinBatch   time.Duration
	MaxBatch   time.Duration
	AvgBatch   time.Duration
	LastBatch  time.Duration
	TotalBatch time.Duration
}

type statsCollector struct {
	games             int64
	updates           int64
	batches           int64
	commandsProcessed int64
	commandsDiscarded int64
	piecesLocked      int64
	linesCleared      int64
	clears            [5]int64
	locks             *intmap.Map[Kind, int64]

	minBatch   time.Duration
	maxBatch   time.Duration
	lastBatch  time.Duration
	totalBatch time.Duration
}

func newStatsCollector() *statsCollector {
	return &statsCollector{
		locks:    intmap.New[Kind, int64](KindCount),
		minBatch: time.Duration(1<<63 - 1),
	}
}

func (s *statsCollector) recordBatch(processed int, duration time.Duration) {
	s.batches++
	s.commandsProcessed += int64(processed)
	s.lastBatch = duration
	s.totalBatch += duration

	if duration < s.minBatch {
		s.minBatch = duration
	}
	if duration > s.maxBatch {
		s.maxBatch = duration
	}
}

func (s *statsCollector) recordLock(kind Kind, rows int) {
	s.piecesLocked++
	n, _ := s.locks.Get(kind)
	s.locks.Put(kind, n+1)

	s.clears[rows]++
	s.linesCleared += int64(rows)
}

func (s *statsCollector) snapshot(gravityDrops uint64) Stats {
	stats := Stats{
		Games:             s.games,
		Updates:           s.updates,
		Batches:           s.batches,
		CommandsProcessed: s.commandsProcessed,
		CommandsDiscarded: s.commandsDiscarded,
		GravityDrops:      gravityDrops,
		PiecesLocked:      s.piecesLocked,
		LinesCleared:      s.linesCleared,
		Clears:            s.clears,
		MaxBatch:          s.maxBatch,
		LastBatch:         s.lastBatch,
		TotalBatch:        s.totalBatch,
	}

	if s.batches > 0 {
		stats.MinBatch = s.minBatch
		stats.AvgBatch = s.totalBatch / time.Duration(s.batches)
	}

	s.locks.ForEach(func(kind Kind, n int64) bool {
		stats.LocksByKind[kind] = n
		return true
	})

	return stats
}
