package interfaces

import (
	"context"
	"errors"

	"realnest_crm/internal/domain/entities"
)

// ErrUnitConflict is returned when a conditional status transition loses the
// race: the unit was not in the expected prior state at write time.
var ErrUnitConflict = errors.New("unit status conflict")

// IUnitRepository abstracts DynamoDB persistence for Unit.
//
// All status transitions are compare-and-swap: the write succeeds only if the
// unit currently holds the expected prior status, otherwise the repository
// returns ErrUnitConflict. This is what arbitrates two agents racing for the
// same unit.

type IUnitRepository interface {
	Create(ctx context.Context, u entities.Unit) (entities.Unit, error)
	GetByID(ctx context.Context, id string) (entities.Unit, error)
	ListByTower(ctx context.Context, tower string) ([]entities.Unit, error)
	// Block transitions Available -> Blocked, recording who holds the unit and
	// since when.
	Block(ctx context.Context, id, blockedBy string) (entities.Unit, error)
	// Release transitions Blocked -> Available and clears the hold fields.
	Release(ctx context.Context, id string) (entities.Unit, error)
	// MarkSold transitions Blocked -> Sold. Sold is terminal.
	MarkSold(ctx context.Context, id string) (entities.Unit, error)
}
