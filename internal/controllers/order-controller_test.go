package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"github.com/ovenfresh/pizza-shop-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func orderRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	areaService := services.NewAreaService(db)
	controller := NewOrderController(services.NewOrderService(db, areaService))

	router := gin.New()
	router.GET("/api/orders", controller.GetAllOrders)
	router.GET("/api/orders/:id", controller.GetOrderByID)
	router.POST("/api/orders", controller.CreateOrder)
	router.PUT("/api/orders/:id", controller.UpdateOrder)
	return router, db
}

func TestCreateOrderEndpoint(t *testing.T) {
	router, db := orderRouter(t)
	require.NoError(t, db.Create(&models.Pizza{Name: "Margherita", Price: 10.00, Category: "Classic"}).Error)

	payload := map[string]interface{}{
		"customerName":  "Jordan Baker",
		"customerPhone": "555-0134",
		"address":       "12 Oak Street",
		"items": []map[string]interface{}{
			{
				"name":     "Margherita",
				"size":     "Large",
				"extras":   []string{"Pepperoni"},
				"quantity": 2,
			},
		},
		// Client-sent totals must be ignored
		"subtotal": 1.00,
		"total":    1.00,
	}

	w := performJSON(t, router, http.MethodPost, "/api/orders", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var placed models.Order
	decodeBody(t, w, &placed)
	assert.InDelta(t, 32.98, placed.Subtotal, 0.0001)
	assert.InDelta(t, 2.64, placed.Tax, 0.0001)
	assert.InDelta(t, 3.99, placed.DeliveryFee, 0.0001)
	assert.InDelta(t, 39.61, placed.Total, 0.0001)
	assert.Equal(t, models.OrderStatusPending, placed.Status)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	router, _ := orderRouter(t)

	payload := map[string]interface{}{
		"customerName":  "Jordan Baker",
		"customerPhone": "555-0134",
		"address":       "12 Oak Street",
		"items":         []map[string]interface{}{},
	}

	w := performJSON(t, router, http.MethodPost, "/api/orders", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Contains(t, body, "error")
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	router, db := orderRouter(t)
	require.NoError(t, db.Create(&models.Pizza{Name: "Margherita", Price: 10.00, Category: "Classic"}).Error)

	create := map[string]interface{}{
		"customerName":  "Jordan Baker",
		"customerPhone": "555-0134",
		"address":       "12 Oak Street",
		"items": []map[string]interface{}{
			{"name": "Margherita", "size": "Medium", "quantity": 1},
		},
	}
	w := performJSON(t, router, http.MethodPost, "/api/orders", create)
	require.Equal(t, http.StatusCreated, w.Code)

	var placed models.Order
	decodeBody(t, w, &placed)

	placed.Status = models.OrderStatusPreparing
	w = performJSON(t, router, http.MethodPut, "/api/orders/1", placed)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	decodeBody(t, w, &updated)
	assert.Equal(t, models.OrderStatusPreparing, updated.Status)

	t.Run("unknown status is rejected", func(t *testing.T) {
		updated.Status = "vanished"
		w := performJSON(t, router, http.MethodPut, "/api/orders/1", updated)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing order returns not found", func(t *testing.T) {
		placed.Status = models.OrderStatusPreparing
		w := performJSON(t, router, http.MethodPut, "/api/orders/999", placed)
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		decodeBody(t, w, &body)
		assert.Equal(t, "Order not found", body["error"])
	})
}
