package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const configFileName = "config.json"

type Config struct {
	Solver   string `mapstructure:"solver"`
	MaxNodes int    `mapstructure:"maxNodes"`
	LogLevel string `mapstructure:"logLevel"`
}

func defaultConfig() Config {
	return Config{
		Solver:   "recursive",
		MaxNodes: 0,
		LogLevel: "info",
	}
}

func loadConfig(file string) (Config, error) {
	config := defaultConfig()

	bytes, err := os.ReadFile(file)
	if err != nil {
		return config, fmt.Errorf("cannot read config file: %w", err)
	}
	decoder := json.NewDecoder(strings.NewReader(string(bytes)))
	decoder.UseNumber()
	var configJson map[string]any
	if err := decoder.Decode(&configJson); err != nil {
		return config, fmt.Errorf("cannot parse config file: %w", err)
	}

	// Keys missing from the file keep their default values
	if err := mapstructure.Decode(configJson, &config); err != nil {
		return config, fmt.Errorf("cannot decode config file: %w", err)
	}
	if config.MaxNodes < 0 {
		return config, fmt.Errorf("maxNodes must not be negative: %v", config.MaxNodes)
	}
	return config, nil
}

// defaultConfigPath returns the config.json placed beside the executable, if any
func defaultConfigPath() (string, bool) {
	execPath, err := os.Executable()
	if err != nil {
		return "", false
	}
	execPath = path.Dir(execPath)

	files, err := os.ReadDir(execPath)
	if err != nil {
		return "", false
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })
	if !slices.Contains(fileNames, configFileName) {
		return "", false
	}
	return path.Join(execPath, configFileName), true
}

func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	loggerConfig := zap.NewDevelopmentConfig() // Writes to the Standard Error
	loggerConfig.Level = atomicLevel
	loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	loggerConfig.DisableStacktrace = true
	return loggerConfig.Build()
}
