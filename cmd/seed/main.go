package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/training"
	appLogger "github.com/YashuMishra/Accessibility-AI-Agent/pkg/logger"
)

// Seeds the training data file with the starter corpus. Refuses to
// touch an existing file unless -force is given, so a curated corpus
// never gets clobbered by a stray re-run.
func main() {
	var (
		dataPath = flag.String("data", "./training-data.json", "path to the training data file")
		force    = flag.Bool("force", false, "seed even if the data file already exists")
	)
	flag.Parse()

	if err := appLogger.Init("info", "console", "stdout"); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	if _, err := os.Stat(*dataPath); err == nil && !*force {
		fmt.Printf("Training data already exists at %s, use -force to overwrite\n", *dataPath)
		os.Exit(1)
	}

	if err := os.Remove(*dataPath); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Failed to remove existing data file: %v\n", err)
		os.Exit(1)
	}

	store := training.NewStore(*dataPath)
	added := store.AddAll(training.Seed())

	fmt.Printf("Training data initialized with %d examples at %s\n", added, *dataPath)
}
