package dto

import "github.com/shopspring/decimal"

// Modos de agrupación del reporte de saldos.
const (
	GroupByLot         = "lot"
	GroupByLotLocation = "lot+location"
)

// BalanceRow saldo con signo para una clave observada. LocationID solo aparece
// en modo "lot+location"; la ausencia de ubicación es su propia clave.
type BalanceRow struct {
	LotID      string          `json:"lot_id"`
	LocationID *string         `json:"location_id,omitempty"`
	Balance    decimal.Decimal `json:"balance"`
}

// BalanceReportResponse reporte de saldos. Los lotes sin movimientos no aparecen.
type BalanceReportResponse struct {
	GroupBy string       `json:"group_by"`
	Rows    []BalanceRow `json:"rows"`
}
