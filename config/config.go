package config

import (
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	RegistryURL string
	BaseUrl     string
	Port        string
	SessionFile string
	RefreshSpec string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger, err := setLogger(os.Getenv("ENVIRONMENT"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		RegistryURL: getenv("REGISTRY_URL", "http://localhost:8000/api"),
		BaseUrl:     os.Getenv("BASE_URL"),
		Port:        getenv("PORT", "8080"),
		SessionFile: getenv("SESSION_FILE", ".siga/session.json"),
		RefreshSpec: getenv("REFRESH_SPEC", "@every 5m"),
	}

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
	return
}
