package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/compose"
	"github.com/aretw0/compose/pkg/schema"
)

type Step struct {
	Name    string   `json:"name" yaml:"name"`
	Run     string   `json:"run" yaml:"run"`
	Needs   []string `json:"needs" yaml:"needs"`
	Timeout int      `json:"timeout" yaml:"timeout"`
}

type Pipeline struct {
	Name  string `json:"name" yaml:"name"`
	Steps []Step `json:"-" yaml:"-" compose:"external,collection"`
}

func main() {
	count := flag.Int("count", 1000, "Number of step documents to generate")
	keep := flag.Bool("keep", false, "Keep the generated tree after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "compose_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	fmt.Printf("Generating %d steps in %s...\n", *count, benchDir)
	startGen := time.Now()

	stepsDir := filepath.Join(benchDir, "Steps")
	if err := os.MkdirAll(stepsDir, 0755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(filepath.Join(benchDir, "object.yaml"), []byte("name: bench\n"), 0644); err != nil {
		panic(err)
	}
	// Alternate formats so both built-in codecs are exercised.
	for i := 0; i < *count; i++ {
		var name, content string
		if i%2 == 0 {
			name = fmt.Sprintf("step_%05d.yaml", i)
			content = fmt.Sprintf("name: step %d\nrun: make target-%d\nneeds: [setup]\ntimeout: %d\n", i, i, i%60)
		} else {
			name = fmt.Sprintf("step_%05d.json", i)
			content = fmt.Sprintf(`{"name": "step %d", "run": "make target-%d", "needs": ["setup"], "timeout": %d}`, i, i, i%60)
		}
		if err := os.WriteFile(filepath.Join(stepsDir, name), []byte(content), 0644); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Run 1: Cold (fresh descriptor cache)
	cache, err := schema.NewCache(schema.DefaultCacheSize)
	if err != nil {
		panic(err)
	}
	fmt.Println("Running Load (Run 1 - Cold)...")
	start := time.Now()
	p, err := compose.Load[Pipeline](benchDir, compose.WithLogger(logger), compose.WithSchema(cache))
	if err != nil {
		panic(err)
	}
	duration := time.Since(start)
	fmt.Printf("Run 1 Result: %v (Steps: %d)\n", duration, len(p.Steps))

	// Run 2: Warm (descriptors already derived)
	fmt.Println("Running Load (Run 2 - Warm)...")
	start = time.Now()
	p2, err := compose.Load[Pipeline](benchDir, compose.WithLogger(logger), compose.WithSchema(cache))
	if err != nil {
		panic(err)
	}
	duration2 := time.Since(start)
	fmt.Printf("Run 2 Result: %v (Steps: %d)\n", duration2, len(p2.Steps))

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d steps):\n", *count)
	fmt.Printf("  Cold: %v\n", duration)
	fmt.Printf("  Warm: %v\n", duration2)
	fmt.Printf("--------------------------------------------------\n")
}
