package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// weightedCommands biases the random input toward moves so pieces travel
// before they are dropped.
var weightedCommands = []tetris.Command{
	tetris.MoveLeft, tetris.MoveLeft,
	tetris.MoveRight, tetris.MoveRight,
	tetris.Rotate, tetris.Rotate,
	tetris.MoveDown,
	tetris.HardDrop,
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	configPath := flag.String("config", "", "Path to an engine config YAML file.")
	seed := flag.Uint64("seed", 1, "Seed for the piece sequence and the random input.")
	burst := flag.Int("burst", 4, "Commands submitted before each Update.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := tetris.DefaultConfig()
	if *configPath != "" {
		loaded, err := tetris.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	cfg.Seed = *seed

	log.Println("Starting blockfall stress test...")

	engine, err := tetris.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	report := &Report{
		Duration:       *duration,
		Width:          engine.Width(),
		Height:         engine.Height(),
		Seed:           engine.Seed(),
		Burst:          *burst,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Timings{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running engine for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	report.TotalUpdates, report.TotalTime = drive(ctx, engine, rand.New(rand.NewPCG(*seed, *seed)), *burst, &report.UpdateTime)

	if err := engine.Close(); err != nil {
		log.Printf("Failed to stop engine: %v", err)
	}
	report.Engine = engine.Stats()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Run finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// drive submits random bursts of commands and times each Update until ctx is
// done. Lost games are restarted immediately.
func drive(ctx context.Context, engine *tetris.Engine, rng *rand.Rand, burst int, timings *Timings) (int64, time.Duration) {
	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			for i := 0; i < burst; i++ {
				engine.Submit(weightedCommands[rng.IntN(len(weightedCommands))])
			}

			updateStart := time.Now()
			engine.Update()
			timings.Samples = append(timings.Samples, time.Since(updateStart))
			totalUpdates++

			if engine.State() == tetris.Lost {
				engine.Reset()
			}
		}
	}

	return totalUpdates, time.Since(startTime)
}
