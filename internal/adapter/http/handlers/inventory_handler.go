package handlers

import (
	"errors"
	"net/http"

	response "realnest_crm/internal/adapter/http/dto/response"
	"realnest_crm/internal/usecase"
	"realnest_crm/internal/usecase/interfaces"
	"realnest_crm/pkg"

	"github.com/gin-gonic/gin"
)

// InventoryHandler exposes read and release operations over sellable units.

type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

// GetUnit returns one unit. A hold older than the hold window is released
// before the unit is returned.
func (h *InventoryHandler) GetUnit(c *gin.Context) {
	unitID := c.Param("unit_id")

	unit, err := h.usecase.GetUnit(c.Request.Context(), unitID)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUnit(unit))
}

// ListUnitsByTower returns every unit in a tower with expired holds shown as
// available.
func (h *InventoryHandler) ListUnitsByTower(c *gin.Context) {
	tower := c.Param("tower")

	units, err := h.usecase.ListUnitsByTower(c.Request.Context(), tower)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUnits(units))
}

// ReleaseBlock puts a blocked unit back on the market.
func (h *InventoryHandler) ReleaseBlock(c *gin.Context) {
	unitID := c.Param("unit_id")

	unit, err := h.usecase.ReleaseBlock(c.Request.Context(), unitID)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUnit(unit))
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUnitID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnitNotFound):
		return pkg.NewDomainErrorSimple("UNIT_NOT_FOUND", "Unit not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrUnitConflict):
		return pkg.NewDomainErrorSimple("UNIT_CONFLICT", "Unit is not currently blocked", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
