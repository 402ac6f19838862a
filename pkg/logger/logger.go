package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the application logger: development config when APP_ENV is
// not "production", production JSON config otherwise.
func New() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
