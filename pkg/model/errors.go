package model

import "fmt"

// ConfigurationError reports malformed or inconsistent trip input. It is fatal: no search is attempted
type ConfigurationError struct {
	Field string
	Err   error
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %v: %v", err.Field, err.Err)
}

func (err *ConfigurationError) Unwrap() error {
	return err.Err
}

func configurationErrorf(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Err: fmt.Errorf(format, args...)}
}
