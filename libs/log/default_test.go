package log_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/replicanet/induction/libs/log"
)

func TestNewDefaultLogger(t *testing.T) {
	testCases := map[string]struct {
		format    string
		level     string
		expectErr bool
	}{
		"invalid format": {
			format:    "foo",
			level:     log.LogLevelInfo,
			expectErr: true,
		},
		"invalid level": {
			format:    log.LogFormatJSON,
			level:     "foo",
			expectErr: true,
		},
		"valid format and level": {
			format:    log.LogFormatJSON,
			level:     log.LogLevelInfo,
			expectErr: false,
		},
		"plain format": {
			format:    log.LogFormatPlain,
			level:     log.LogLevelDebug,
			expectErr: false,
		},
	}

	for name, tc := range testCases {
		tc := tc

		t.Run(name, func(t *testing.T) {
			_, err := log.NewDefaultLogger(tc.format, tc.level)
			if tc.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoggerLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.NewLogger(log.LogFormatJSON, log.LogLevelInfo, &buf)
	require.NoError(t, err)

	logger = logger.With("canister", "canister-13")
	logger.Debug("dropped", "k", 1)
	logger.Info("pushed", "peer", "canister-1", "bytes", 70)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "pushed", entry["message"])
	require.Equal(t, "canister-13", entry["canister"])
	require.Equal(t, "canister-1", entry["peer"])
	require.EqualValues(t, 70, entry["bytes"])
}

func TestNopLogger(t *testing.T) {
	logger := log.NewNopLogger()
	require.NotPanics(t, func() {
		logger.With("a", 1).Error("nothing", "b", 2)
	})
}
