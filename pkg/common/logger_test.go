package common

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "facilityhub.dev/facility-service/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestNamedLoggerCarriesCategory(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLoggerWith(LoggerNameFacilityCore, zap.String(LoggerFieldCategory, LoggerCategorySensor))
	logger.Info("reading accepted")

	logOutput := buf.String()
	if !strings.Contains(logOutput, LoggerCategorySensor) {
		t.Errorf("expected log output to carry category field, got: %s", logOutput)
	}
}
