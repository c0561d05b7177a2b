package logger

import (
	"go.uber.org/zap"
)

// Init installs the global zap logger. Production gets JSON output with
// sampling, everything else gets the human readable development config.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	switch environment {
	case "production":
		l, err = zap.NewProduction()
	default:
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(l)

	return nil
}
