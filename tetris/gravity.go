package tetris

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// gravity owns the ticker goroutine. Its only effect on the game is pushing
// MoveDown into the command queue; everything it shares with the update
// goroutine is either the queue or an atomic.
type gravity struct {
	queue    *CommandQueue
	interval time.Duration

	base     int
	floor    int
	perBonus int

	sinceDrop atomic.Int64
	lines     atomic.Int64
	paused    atomic.Bool
	fired     atomic.Uint64

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func newGravity(queue *CommandQueue, cfg Config) *gravity {
	return &gravity{
		queue:    queue,
		interval: cfg.TickInterval,
		base:     cfg.GravityBase,
		floor:    cfg.GravityFloor,
		perBonus: cfg.LinesPerBonus,
	}
}

// threshold returns how many ticks pass between two gravity drops.
func (g *gravity) threshold() int {
	bonus := 0
	if g.perBonus > 0 {
		bonus = int(g.lines.Load()) / g.perBonus
	}
	return max(g.base-bonus, g.floor)
}

// tick counts one ticker firing and enqueues a MoveDown when the threshold is
// reached. It reports whether a command was enqueued.
func (g *gravity) tick() bool {
	if g.paused.Load() {
		return false
	}

	if g.sinceDrop.Add(1) < int64(g.threshold()) {
		return false
	}

	g.sinceDrop.Store(0)
	g.queue.Push(MoveDown)
	g.fired.Add(1)
	return true
}

func (g *gravity) resetCounter() {
	g.sinceDrop.Store(0)
}

// start launches the ticker goroutine. It runs until stop is called or ctx
// is cancelled.
func (g *gravity) start(ctx context.Context) {
	ctx, g.cancel = context.WithCancel(ctx)

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		ticker := time.NewTicker(g.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				g.tick()
			}
		}
	}()
}

// stop cancels the ticker goroutine and waits for it to exit.
func (g *gravity) stop() {
	g.stopOnce.Do(func() {
		if g.cancel != nil {
			g.cancel()
		}
		g.wg.Wait()
	})
}
