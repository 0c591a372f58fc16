package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de cantidades sobre un lote.
const (
	MovementTypeIN         = "IN"         // nacimientos, compras, traslados de entrada
	MovementTypeOUT        = "OUT"        // muertes, ventas, traslados de salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // corrección de conteo
)

// Movement es una fila del libro de movimientos de cantidades: cantidad con signo
// atribuida a un lote y opcionalmente a una ubicación. El saldo actual de un lote
// se deriva sumando sus movimientos.
type Movement struct {
	ID         string
	TenantID   string
	LotID      string
	LocationID *string
	Type       string
	Quantity   *decimal.Decimal // NULL en DB suma cero en los agregados
	Date       time.Time
	CreatedAt  time.Time
	CreatedBy  string
}
