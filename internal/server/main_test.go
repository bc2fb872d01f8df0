package server

import (
	"os"
	"testing"

	"folio-cli/internal/logger"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.SetGlobalTranscriptLogger(logger.NewNoopTranscriptLogger())
	os.Exit(m.Run())
}
