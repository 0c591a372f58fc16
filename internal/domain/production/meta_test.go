package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrovida/produccion-api/internal/domain/production"
)

// La metadata de un evento debe normalizarse siempre a un mapa concreto:
// nil, valores escalares y mapas nil terminan como mapa vacío; un mapa
// bien formado se conserva tal cual.
func TestNormalizeMeta_ValoresNoMapa(t *testing.T) {
	assert.Equal(t, map[string]any{}, production.NormalizeMeta(nil))
	assert.Equal(t, map[string]any{}, production.NormalizeMeta("kanban"))
	assert.Equal(t, map[string]any{}, production.NormalizeMeta(42))
	assert.Equal(t, map[string]any{}, production.NormalizeMeta([]any{"a", "b"}))

	var nilMap map[string]any
	assert.Equal(t, map[string]any{}, production.NormalizeMeta(nilMap))
}

func TestNormalizeMeta_MapaSeConserva(t *testing.T) {
	in := map[string]any{"ui": "kanban", "retry": 2}
	out := production.NormalizeMeta(in)
	assert.Equal(t, in, out)
}

func TestPurposeFilter_TriEstado(t *testing.T) {
	postura := "postura"
	engorde := "engorde"

	// Sin filtro: acepta todo
	assert.True(t, production.PurposeAny().Matches(nil))
	assert.True(t, production.PurposeAny().Matches(&postura))

	// Filtro "sin propósito": solo etapas con purpose nil
	assert.True(t, production.PurposeNone().Matches(nil))
	assert.False(t, production.PurposeNone().Matches(&postura))

	// Filtro exacto
	assert.True(t, production.PurposeExact("postura").Matches(&postura))
	assert.False(t, production.PurposeExact("postura").Matches(&engorde))
	assert.False(t, production.PurposeExact("postura").Matches(nil))
}
