package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EstampaElServicioEnCadaLinea(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "info", Service: "crm-pro", Out: &buf})

	log.Info().Msg("listo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "crm-pro", line["service"])
	assert.Equal(t, "listo", line["message"])
}

func TestNew_NivelPorDefectoEsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "no-existe", Out: &buf})

	log.Debug().Msg("no debe salir")
	log.Info().Msg("sí debe salir")

	assert.NotContains(t, buf.String(), "no debe salir")
	assert.Contains(t, buf.String(), "sí debe salir")
}
