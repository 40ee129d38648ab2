package texcheck

import "context"

// Checker classifies the validity of formula source strings.
//
//go:generate mockgen -source=checker.go -destination=mocks/mock_checker.go -package=mocks
type Checker interface {
	// Check classifies source. Classification outcomes, including
	// UnknownError, are successful returns; an error means the check
	// itself could not be carried out.
	Check(ctx context.Context, source string) (Result, error)
}

// Logger defines the interface for logging.
type Logger interface {
	Info(msg string)
	Error(err error)
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Error(error) {}
