package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"github.com/ovenfresh/pizza-shop-api/internal/services"
	"gorm.io/gorm"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	GetAllOrders(c *gin.Context)
	GetOrderByID(c *gin.Context)
	CreateOrder(c *gin.Context)
	UpdateOrder(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

// GetAllOrders godoc
// @Summary Get all orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} models.APIError
// @Router /api/orders [get]
func (oc *orderController) GetAllOrders(ctx *gin.Context) {
	orders, err := oc.service.GetAllOrders()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/orders/{id} [get]
func (oc *orderController) GetOrderByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	order, err := oc.service.GetOrderByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderNotFound, "Order not found"))
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// CreateOrder godoc
// @Summary Place an order
// @Description Place an order. Line items are merged and repriced server-side;
// @Description client-sent totals are ignored.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.Order true "Order payload"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/orders [post]
func (oc *orderController) CreateOrder(ctx *gin.Context) {
	var order models.Order
	if err := ctx.ShouldBindJSON(&order); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}
	placed, err := oc.service.PlaceOrder(order)
	if err != nil {
		if errors.Is(err, services.ErrEmptyOrder) || errors.Is(err, services.ErrInvalidStatus) {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidOrderData, err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, err.Error()))
		return
	}
	ctx.JSON(http.StatusCreated, placed)
}

// UpdateOrder godoc
// @Summary Update an order
// @Description Full-document replace, status included. Admin panel uses this
// @Description for status transitions.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param order body models.Order true "Order object"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/orders/{id} [put]
func (oc *orderController) UpdateOrder(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var order models.Order
	if err := ctx.ShouldBindJSON(&order); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}
	order.ID = id
	updated, err := oc.service.UpdateOrder(order)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderNotFound, "Order not found"))
			return
		}
		if errors.Is(err, services.ErrInvalidStatus) {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidOrderData, err.Error()))
			return
		}
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, updated)
}
