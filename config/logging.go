package config

import "go.uber.org/zap"

// setLogger builds the zap logger for the given environment. Unknown
// environments get the example logger, which logs everything to stdout.
func setLogger(environment string) (*zap.Logger, error) {
	switch environment {
	case "development":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}
