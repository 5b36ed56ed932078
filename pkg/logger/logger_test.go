package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/refnet-api/pkg/logger"
)

func TestNew_NivelYComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "WARN", Output: &buf})

	log.Info().Msg("descartado")
	log.Named("ledger").Warn().Str("restock_id", "r-1").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "descartado")
	assert.Contains(t, out, `"component":"ledger"`)
	assert.Contains(t, out, `"restock_id":"r-1"`)
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "verbose", Output: &buf})

	log.Debug().Msg("debug")
	log.Info().Msg("info")

	assert.NotContains(t, buf.String(), `"message":"debug"`)
	assert.Contains(t, buf.String(), `"message":"info"`)
}
