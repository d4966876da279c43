package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/importer"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/training"
	appLogger "github.com/YashuMishra/Accessibility-AI-Agent/pkg/logger"
)

func main() {
	var (
		csvPath   = flag.String("csv", "./training-examples.csv", "path to the CSV file to import")
		dataPath  = flag.String("data", "./training-data.json", "path to the training data file")
		workItems = flag.Bool("work-items", false, "treat the CSV as a bug tracker work item export")
	)
	flag.Parse()

	if err := appLogger.Init("info", "console", "stdout"); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	file, err := os.Open(*csvPath)
	if err != nil {
		fmt.Printf("Failed to open CSV: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	store := training.NewStore(*dataPath)
	im := importer.New(store)

	var res importer.Result
	if *workItems {
		res, err = im.ImportWorkItems(file)
	} else {
		res, err = im.ImportSimple(file)
	}
	if err != nil {
		fmt.Printf("Import failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d training examples (%d rows skipped)\n", res.Imported, res.Skipped)
	fmt.Printf("Total examples: %d\n", store.Len())
}
