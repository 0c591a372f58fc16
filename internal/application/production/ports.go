package production

import (
	"context"

	"github.com/agrovida/produccion-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a la tx.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		lotRepo repository.LotRepository,
		eventRepo repository.StageEventRepository,
	) error) error
}
