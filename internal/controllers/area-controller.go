package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"github.com/ovenfresh/pizza-shop-api/internal/services"
	"gorm.io/gorm"
)

// AreaController handles HTTP requests related to delivery areas
type AreaController interface {
	GetAllAreas(c *gin.Context)
	CreateArea(c *gin.Context)
	UpdateArea(c *gin.Context)
	DeleteArea(c *gin.Context)
}

type areaController struct {
	service services.AreaService
}

// NewAreaController creates a new instance of AreaController
func NewAreaController(service services.AreaService) AreaController {
	return &areaController{service: service}
}

// GetAllAreas godoc
// @Summary Get all delivery areas
// @Tags areas
// @Produce json
// @Success 200 {array} models.Area
// @Failure 500 {object} models.APIError
// @Router /api/areas [get]
func (ac *areaController) GetAllAreas(ctx *gin.Context) {
	areas, err := ac.service.GetAllAreas()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, areas)
}

// CreateArea godoc
// @Summary Create a delivery area
// @Tags areas
// @Accept json
// @Produce json
// @Param area body models.Area true "Area object"
// @Success 201 {object} models.Area
// @Failure 400 {object} models.APIError
// @Router /api/areas [post]
func (ac *areaController) CreateArea(ctx *gin.Context) {
	var area models.Area
	if err := ctx.ShouldBindJSON(&area); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}
	created, err := ac.service.CreateArea(area)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateArea godoc
// @Summary Update a delivery area
// @Tags areas
// @Accept json
// @Produce json
// @Param id path int true "Area ID"
// @Param area body models.Area true "Area object"
// @Success 200 {object} models.Area
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/areas/{id} [put]
func (ac *areaController) UpdateArea(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var area models.Area
	if err := ctx.ShouldBindJSON(&area); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}
	area.ID = id
	updated, err := ac.service.UpdateArea(area)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrAreaNotFound, "Area not found"))
			return
		}
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteArea godoc
// @Summary Delete a delivery area
// @Tags areas
// @Produce json
// @Param id path int true "Area ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/areas/{id} [delete]
func (ac *areaController) DeleteArea(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := ac.service.DeleteArea(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrAreaNotFound, "Area not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Area deleted"})
}
