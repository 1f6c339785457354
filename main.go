package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/DoubleVII/hadoop-in-go/hadoop"
)

func main() {
	var (
		inputFiles = flag.String("input", "", "Comma-separated list of input files")
		outputFile = flag.String("output", "", "Output file")
	)
	flag.Parse()

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to resolve working directory: %v", err)
	}

	if *inputFiles == "" {
		*inputFiles = filepath.Join(cwd, "demo_data", "test_input.txt")
	}
	if *outputFile == "" {
		*outputFile = filepath.Join(cwd, "demo_data", "test_output.txt")
	}

	var paths []string
	for _, path := range strings.Split(*inputFiles, ",") {
		abs, err := filepath.Abs(strings.TrimSpace(path))
		if err != nil {
			log.Fatalf("Failed to resolve input path %q: %v", path, err)
		}
		paths = append(paths, abs)
	}
	outPath, err := filepath.Abs(*outputFile)
	if err != nil {
		log.Fatalf("Failed to resolve output path %q: %v", *outputFile, err)
	}

	job := hadoop.NewJob(nil)
	job.SetMapper(&hadoop.WordCountMapper{})
	job.SetReducer(&hadoop.WordCountReducer{})

	input := hadoop.NewInput()
	if err := input.SetInputPaths(job, paths...); err != nil {
		log.Fatalf("Failed to set input paths: %v", err)
	}
	output := hadoop.NewOutput()
	if err := output.SetOutputPath(job, outPath); err != nil {
		log.Fatalf("Failed to set output path: %v", err)
	}

	if err := job.Run(); err != nil {
		log.Fatalf("Job %s failed: %v", job.ID(), err)
	}

	ok, err := job.IsSuccessful()
	if err != nil {
		log.Fatalf("Job %s: %v", job.ID(), err)
	}
	fmt.Println(ok)
}
