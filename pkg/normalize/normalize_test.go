package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrovida/produccion-api/pkg/normalize"
)

func TestCode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"tildes", "Incubación", "INCUBACION"},
		{"enie", "Destete de añojos", "DESTETE_DE_ANOJOS"},
		{"separadores colapsados", "Engorde / Ceba", "ENGORDE_CEBA"},
		{"espacios en los bordes", "  Postura  ", "POSTURA"},
		{"digitos", "Fase 2", "FASE_2"},
		{"ya normalizado", "VENTA", "VENTA"},
		{"vacio", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalize.Code(tc.in))
		})
	}
}
