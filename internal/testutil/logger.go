package testutil

import (
	"io"

	"github.com/lmarques/auth-server/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0)
}
