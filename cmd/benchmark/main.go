package main

import (
	"cmp"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/limaJavier/itinerary/pkg/model"
	"github.com/limaJavier/itinerary/pkg/search"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTestDirectory = "../../test/instances/"
	defaultMaxNodes      = 10_000_000
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	limited
)

var resultTypes = map[ResultType]string{
	solved:        "solved",
	unsatisfiable: "unsatisfiable",
	limited:       "node-limit",
}

type TestMetadata struct {
	Name      string
	Itinerary *model.Itinerary
	Legs      int
	Flights   int
}

type BenchmarkResult struct {
	Solver     string
	Test       TestMetadata
	Duration   time.Duration
	Nodes      int
	Backtracks int
	Result     ResultType
}

func main() {
	directoryPtr := flag.String("dir", defaultTestDirectory, "Directory holding the instances; \".json\" files are read as JSON and every other file as text")
	outPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV report")
	parallelPtr := flag.Int("parallel", 4, "Maximum number of instances solved at the same time")
	maxNodesPtr := flag.Int("max-nodes", defaultMaxNodes, "Node limit for every search, where 0 means unlimited")
	flag.Parse()

	logger := lo.Must(zap.NewDevelopment())
	defer logger.Sync()

	tests, err := getTests(*directoryPtr)
	if err != nil {
		logger.Fatal("cannot load tests", zap.Error(err))
	}

	results, err := run(tests, search.SolverNames(), *maxNodesPtr, *parallelPtr, logger)
	if err != nil {
		logger.Fatal("benchmark failed", zap.Error(err))
	}

	file, err := os.Create(*outPtr)
	if err != nil {
		logger.Fatal("cannot create CSV file", zap.Error(err))
	}
	defer file.Close()

	if err := toCsv(file, results); err != nil {
		logger.Fatal("cannot write CSV file", zap.Error(err))
	}
	logger.Info("benchmark finished", zap.Int("results", len(results)), zap.String("out", *outPtr))
}

func getTests(directory string) ([]TestMetadata, error) {
	testFiles, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %w", err)
	}

	tests := make([]TestMetadata, 0, len(testFiles))
	for _, file := range testFiles {
		if file.IsDir() {
			continue
		}
		filename := filepath.Join(directory, file.Name())
		itinerary, err := readInstance(filename)
		if err != nil {
			return nil, fmt.Errorf("cannot parse input file %v: %w", filename, err)
		}

		tests = append(tests, TestMetadata{
			Name:      filename,
			Itinerary: itinerary,
			Legs:      itinerary.LegCount(),
			Flights:   itinerary.FlightCount(),
		})
	}
	return tests, nil
}

func readInstance(filename string) (*model.Itinerary, error) {
	if strings.HasSuffix(filename, ".json") {
		return model.InputFromJson(filename)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return model.InputFromText(file)
}

// run solves every test with every solver; each instance is an independent search, so they are spread over a bounded group
func run(tests []TestMetadata, solvers []string, maxNodes, parallel int, logger *zap.Logger) ([]BenchmarkResult, error) {
	var (
		mu      sync.Mutex
		results = make([]BenchmarkResult, 0, len(tests)*len(solvers))
		group   errgroup.Group
	)
	group.SetLimit(max(parallel, 1))

	for _, test := range tests {
		for _, solverName := range solvers {
			group.Go(func() error {
				logger.Info("benchmarking", zap.String("test", test.Name), zap.String("solver", solverName))

				result, err := measure(solverName, test, maxNodes)
				if err != nil {
					return err
				}

				mu.Lock()
				defer mu.Unlock()
				results = append(results, result)
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Goroutines finish in any order
	slices.SortFunc(results, func(a, b BenchmarkResult) int {
		return cmp.Or(strings.Compare(a.Test.Name, b.Test.Name), strings.Compare(a.Solver, b.Solver))
	})
	return results, nil
}

func measure(solverName string, test TestMetadata, maxNodes int) (BenchmarkResult, error) {
	solver, err := search.NewSolver(solverName, search.Options{MaxNodes: maxNodes})
	if err != nil {
		return BenchmarkResult{}, err
	}

	start := time.Now()
	solution, err := solver.Solve(test.Itinerary)
	duration := time.Since(start)

	result := BenchmarkResult{
		Solver:     solverName,
		Test:       test,
		Duration:   duration,
		Nodes:      solution.Stats.Nodes,
		Backtracks: solution.Stats.Backtracks,
	}
	switch {
	case errors.Is(err, search.ErrNodeLimit):
		result.Result = limited
	case err != nil:
		return BenchmarkResult{}, fmt.Errorf("an error occurred while solving %v with %v: %w", test.Name, solverName, err)
	case solution.Flights == nil:
		result.Result = unsatisfiable
	case !model.Verify(test.Itinerary, solution.Flights):
		return BenchmarkResult{}, fmt.Errorf("verification failed for %v with %v", test.Name, solverName)
	default:
		result.Result = solved
	}
	return result, nil
}

func toCsv(w io.Writer, results []BenchmarkResult) error {
	writer := csv.NewWriter(w)

	header := []string{"Solver", "Test", "Legs", "Flights", "Duration(us)", "Nodes", "Backtracks", "Result"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			result.Solver,
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Legs),
			fmt.Sprintf("%d", result.Test.Flights),
			fmt.Sprintf("%d", result.Duration.Microseconds()),
			fmt.Sprintf("%d", result.Nodes),
			fmt.Sprintf("%d", result.Backtracks),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
