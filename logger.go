package folio

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the process logger. "console" gives human-readable
// development output; anything else logs JSON.
func NewLogger(format string) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	switch format {
	case "console":
		l, err = zap.NewDevelopment()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("folio: init logger: %w", err)
	}
	return l, nil
}
