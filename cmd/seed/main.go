// seed genera un script SQL con los catálogos de etapas por defecto para las
// cadenas productivas soportadas (avicultura, porcicultura, piscicultura).
//
// Uso: go run ./cmd/seed <tenant_id>
// Escribe: internal/infrastructure/postgres/migrations/002_seed_stages.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/agrovida/produccion-api/pkg/normalize"
)

// stageSeed una etapa del catálogo por defecto.
type stageSeed struct {
	name     string
	purpose  string // vacío = sin propósito
	terminal bool
}

// Catálogos por defecto, en el orden del ciclo productivo de cada cadena.
var catalogs = map[string][]stageSeed{
	"avicultura": {
		{name: "Incubación"},
		{name: "Levante"},
		{name: "Postura", purpose: "huevos"},
		{name: "Engorde", purpose: "carne"},
		{name: "Venta", terminal: true},
	},
	"porcicultura": {
		{name: "Gestación"},
		{name: "Lactancia"},
		{name: "Precebo"},
		{name: "Ceba"},
		{name: "Venta", terminal: true},
	},
	"piscicultura": {
		{name: "Alevinaje"},
		{name: "Levante"},
		{name: "Engorde"},
		{name: "Cosecha", terminal: true},
	},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seed <tenant_id>")
		os.Exit(1)
	}
	tenantID := os.Args[1]
	if _, err := uuid.Parse(tenantID); err != nil {
		fmt.Fprintf(os.Stderr, "tenant_id inválido: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_stages.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogos de etapas por defecto por cadena productiva\n")
	fmt.Fprintf(out, "-- Tenant: %s\n\n", tenantID)

	// Orden estable de cadenas para salida reproducible
	chains := []string{"avicultura", "piscicultura", "porcicultura"}
	total := 0
	for _, chain := range chains {
		fmt.Fprintf(out, "-- %s\n", chain)
		for i, s := range catalogs[chain] {
			code := normalize.Code(s.name)
			purpose := "NULL"
			if s.purpose != "" {
				purpose = "'" + escapeSQL(s.purpose) + "'"
			}
			fmt.Fprintf(out,
				"INSERT INTO stages (id, tenant_id, chain, purpose, name, code, sort_order, is_terminal, is_active, created_at, updated_at)\n"+
					"VALUES ('%s', '%s', '%s', %s, '%s', '%s', %d, %t, TRUE, now(), now())\n"+
					"ON CONFLICT (tenant_id, chain, code) DO NOTHING;\n",
				uuid.New().String(), tenantID, chain, purpose, escapeSQL(s.name), code, (i+1)*10, s.terminal)
			total++
		}
		out.WriteString("\n")
	}

	fmt.Printf("Generado %s: %d etapas\n", outPath, total)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
