package log

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestingLogger returns a Logger which writes to the test log when tests are
// run with the verbose (-v) flag, and discards output otherwise.
func TestingLogger(t testing.TB) Logger {
	t.Helper()

	if !testing.Verbose() {
		return NewNopLogger()
	}

	w := zerolog.ConsoleWriter{Out: testWriter{t}, NoColor: true}
	return &defaultLogger{
		Logger: zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
