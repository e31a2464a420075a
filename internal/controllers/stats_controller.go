package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"github.com/ovenfresh/pizza-shop-api/internal/services"
)

// StatsController serves the admin dashboard aggregates
type StatsController interface {
	Overview(c *gin.Context)
}

type statsController struct {
	service services.StatsService
}

// NewStatsController creates a new instance of StatsController
func NewStatsController(service services.StatsService) StatsController {
	return &statsController{service: service}
}

// Overview godoc
// @Summary Dashboard overview
// @Description Aggregate revenue, today's order count, active customers,
// @Description catalog size, recent orders and top pizzas. Recomputed by a
// @Description full scan on every request.
// @Tags stats
// @Produce json
// @Success 200 {object} services.StatsOverview
// @Failure 500 {object} models.APIError
// @Router /api/stats/overview [get]
func (sc *statsController) Overview(ctx *gin.Context) {
	overview, err := sc.service.Overview(time.Now())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, overview)
}
