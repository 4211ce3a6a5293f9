package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/limaJavier/itinerary/pkg/model"
	"github.com/limaJavier/itinerary/pkg/search"
	"go.uber.org/zap"
)

var validFormats = []string{"text", "json"}

func main() {
	// Define arguments
	configPtr := flag.String("config", "", "Path to a JSON config file with \"solver\", \"maxNodes\" and \"logLevel\" keys; if empty, the config.json beside the executable is used when present")
	solverPtr := flag.String("solver", "", fmt.Sprintf("Search driver to use. Allowed values are: %v, where \"recursive\" is the default", search.SolverNames()))
	formatPtr := flag.String("format", "text", "Input format. Allowed values are: \"text\" (line-based) and \"json\", where \"text\" is the default")
	filePathPtr := flag.String("file", "", "Path to the input file; if empty, the input is read from the Standard Input")
	maxNodesPtr := flag.Int("max-nodes", -1, "Maximum number of candidate bindings before giving up, where 0 means unlimited")
	verbosePtr := flag.Bool("verbose", false, "Log search diagnostics to the Standard Error")
	flag.Parse()

	// Resolve configuration: defaults, then config file, then flags
	config := defaultConfig()
	configPath := *configPtr
	if configPath == "" {
		configPath, _ = defaultConfigPath()
	}
	var configErr error
	if configPath != "" {
		config, configErr = loadConfig(configPath)
	}
	if *solverPtr != "" {
		config.Solver = strings.ToLower(*solverPtr)
	}
	if *maxNodesPtr >= 0 {
		config.MaxNodes = *maxNodesPtr
	}
	if *verbosePtr {
		config.LogLevel = "debug"
	}

	logger, err := newLogger(config.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Validate arguments
	format := strings.ToLower(*formatPtr)
	if configErr != nil {
		logger.Fatal("cannot load configuration", zap.String("path", configPath), zap.Error(configErr))
	} else if !slices.Contains(validFormats, format) {
		logger.Fatal("invalid input format", zap.String("format", format))
	} else if format == "json" && *filePathPtr == "" {
		logger.Fatal("an input file must be specified for the json format")
	}

	// Initialize engine
	solver, err := search.NewSolver(config.Solver, search.Options{MaxNodes: config.MaxNodes, Logger: logger})
	if err != nil {
		logger.Fatal("cannot initialize solver", zap.Error(err))
	}

	// Extract input
	itinerary, err := readItinerary(format, *filePathPtr)
	if err != nil {
		logger.Fatal("cannot parse input", zap.Error(err))
	}
	logger.Debug("itinerary loaded",
		zap.Strings("cities", itinerary.Cities()),
		zap.Int("legs", itinerary.LegCount()),
		zap.Int("flights", itinerary.FlightCount()),
	)
	for _, leg := range itinerary.Legs() {
		logger.Debug("leg",
			zap.Int("index", leg.Index),
			zap.Stringer("route", leg.Route),
			zap.Int("minStay", leg.Stay.Min),
			zap.Int("maxStay", leg.Stay.Max),
			zap.Int("candidates", len(itinerary.Flights(leg.Route))),
		)
	}

	// Plan itinerary
	solution, err := solver.Solve(itinerary)
	if err != nil {
		logger.Fatal("an error occurred during the search", zap.Error(err))
	}

	writer := bufio.NewWriter(os.Stdout)
	if err := writeSolution(writer, itinerary, solution); err != nil {
		logger.Fatal("cannot write output", zap.Error(err))
	}
	if err := writer.Flush(); err != nil {
		logger.Fatal("cannot write output", zap.Error(err))
	}
}

func readItinerary(format, filePath string) (*model.Itinerary, error) {
	if format == "json" {
		return model.InputFromJson(filePath)
	}

	var reader io.Reader = os.Stdin
	if filePath != "" {
		file, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("cannot open input file: %w", err)
		}
		defer file.Close()
		reader = file
	}
	return model.InputFromText(reader)
}

// writeSolution prints the plan, or "No Solution" when there is none; a plan that fails verification is an error
func writeSolution(w io.Writer, itinerary *model.Itinerary, solution search.Solution) error {
	if solution.Flights == nil {
		return model.WriteNoSolution(w)
	}
	if !model.Verify(itinerary, solution.Flights) {
		return fmt.Errorf("solver returned an itinerary that violates the trip constraints: %v", solution.Flights)
	}
	return model.WriteSolution(w, solution.Flights)
}
