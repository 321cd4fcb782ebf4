package orders

import (
	"context"

	"github.com/tu-usuario/gestor-comercial/internal/domain/repository"
)

// TxRunner ejecuta las escrituras de una orden (cabecera + items) dentro de una
// transacción. El callback recibe un repositorio atado a la tx: si retorna
// error se hace rollback y no queda ningún item huérfano.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(repo repository.PurchaseRepository) error) error
	RunSale(ctx context.Context, fn func(repo repository.SaleRepository) error) error
}
