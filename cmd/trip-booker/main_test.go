package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"tripBooker/internal/catalog"
	"tripBooker/internal/config"
	"tripBooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseOrLog(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		closeErr error
		wantLog  bool
	}{
		{name: "close error is logged", closeErr: errors.New("connection already closed"), wantLog: true},
		{name: "clean close is silent"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, nil))

			called := false
			closeOrLog(log, "postgres connection", func() error {
				called = true
				return tc.closeErr
			})

			assert.True(t, called)

			if !tc.wantLog {
				assert.Empty(t, buf.String())
				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
			assert.Equal(t, "ERROR", entry["level"])
			assert.Equal(t, "failed to close postgres connection", entry["msg"])
			assert.Equal(t, "connection already closed", entry["error"])
		})
	}
}

func TestSetupLedgerMemory(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Storage: config.Storage{Driver: config.StorageMemory}}

	ledger, closeLedger, err := setupLedger(cfg, slogdiscard.NewDiscardLogger(), catalog.Default())
	require.NoError(t, err)
	require.NotNil(t, ledger)
	assert.NoError(t, closeLedger())
}
