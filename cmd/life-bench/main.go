package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"toruslife/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-bench: ")

	cfg := life.DefaultConfig()
	flag.IntVar(&cfg.Size, "size", cfg.Size, "grid side length in cells")
	soups := flag.Int("soups", 64, "number of random soups to run")
	generations := flag.Int("generations", 2000, "generation limit per soup")
	seed := flag.Int64("seed", 1, "seed of the first soup; soups use consecutive seeds")
	workers := flag.Int("workers", runtime.NumCPU(), "number of soups simulated at once")
	top := flag.Int("top", 5, "longest-lived soups to list")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *soups <= 0 || *generations <= 0 || *workers <= 0 {
		log.Fatal("soups, generations and workers must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Running %d soups on a %dx%d torus (%d workers, up to %d generations)\n",
		*soups, cfg.Size, cfg.Size, *workers, *generations)

	start := time.Now()
	results := make([]life.SoupResult, *soups)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for i := range results {
		g.Go(func() error {
			res, err := life.RunSoup(ctx, cfg, *seed+int64(i), *generations)
			if err != nil {
				return fmt.Errorf("soup %d: %w", *seed+int64(i), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Fatal("interrupted")
		}
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	total, settled := 0, 0
	for _, res := range results {
		total += res.Generations
		if res.SettledAt >= 0 {
			settled++
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Generations > results[j].Generations })
	fmt.Printf("\nLongest-lived soups:\n")
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		fmt.Printf("%2d) seed=%d generations=%d settled=%d population=%d peak=%d\n",
			i+1, res.Seed, res.Generations, res.SettledAt, res.Population, res.PeakPopulation)
	}

	rate := float64(total) / elapsed.Seconds()
	fmt.Printf("\n%d/%d soups settled into still lifes; %d generations in %s (%.0f gen/s)\n",
		settled, len(results), total, elapsed.Round(time.Millisecond), rate)
}
