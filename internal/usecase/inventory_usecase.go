package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"realnest_crm/internal/domain/entities"
	"realnest_crm/internal/usecase/interfaces"
)

// IInventoryUseCase exposes unit reads and hold management.
//
// The 24-hour block hold is not driven by a timer: expiry is evaluated lazily
// whenever a unit is read, and a lapsed hold observed on a direct read is
// released in storage on the spot.

type IInventoryUseCase interface {
	GetUnit(ctx context.Context, unitID string) (entities.Unit, error)
	ListUnitsByTower(ctx context.Context, tower string) ([]entities.Unit, error)
	ReleaseBlock(ctx context.Context, unitID string) (entities.Unit, error)
}

type InventoryUseCase struct {
	unitRepo interfaces.IUnitRepository
	now      func() time.Time
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(unitRepo interfaces.IUnitRepository) *InventoryUseCase {
	return &InventoryUseCase{unitRepo: unitRepo, now: time.Now}
}

func (u *InventoryUseCase) GetUnit(ctx context.Context, unitID string) (entities.Unit, error) {
	unitID = strings.TrimSpace(unitID)
	if unitID == "" {
		return entities.Unit{}, ErrInvalidUnitID
	}
	unit, err := u.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return entities.Unit{}, err
	}
	if unit.ID == "" {
		return entities.Unit{}, ErrUnitNotFound
	}

	if unit.BlockExpired(u.now()) {
		released, err := u.unitRepo.Release(ctx, unit.ID)
		if err != nil {
			// Another writer may have raced the release; the effective view is
			// still Available.
			log.Printf("[inventory][usecase] lazy release failed unit_id=%s err=%v", unit.ID, err)
			unit.Status = entities.UnitStatusAvailable
			unit.BlockedBy = ""
			unit.BlockedAt = time.Time{}
			return unit, nil
		}
		log.Printf("[inventory][usecase] expired hold released unit_id=%s", unit.ID)
		return released, nil
	}
	return unit, nil
}

func (u *InventoryUseCase) ListUnitsByTower(ctx context.Context, tower string) ([]entities.Unit, error) {
	tower = strings.TrimSpace(tower)
	units, err := u.unitRepo.ListByTower(ctx, tower)
	if err != nil {
		return nil, err
	}

	now := u.now()
	out := make([]entities.Unit, 0, len(units))
	for _, unit := range units {
		// List reads only project the effective view; persistence catches up on
		// the next direct read.
		if unit.BlockExpired(now) {
			unit.Status = entities.UnitStatusAvailable
			unit.BlockedBy = ""
			unit.BlockedAt = time.Time{}
		}
		out = append(out, unit)
	}
	return out, nil
}

func (u *InventoryUseCase) ReleaseBlock(ctx context.Context, unitID string) (entities.Unit, error) {
	unitID = strings.TrimSpace(unitID)
	if unitID == "" {
		return entities.Unit{}, ErrInvalidUnitID
	}
	released, err := u.unitRepo.Release(ctx, unitID)
	if err != nil {
		return entities.Unit{}, err
	}
	log.Printf("[inventory][usecase] hold released unit_id=%s", unitID)
	return released, nil
}
