package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) OrderService {
	return NewOrderService(db, NewAreaService(db))
}

func baseOrder(items ...models.OrderItem) models.Order {
	return models.Order{
		CustomerName:  "Jordan Baker",
		CustomerPhone: "555-0134",
		Address:       "12 Oak Street",
		Items:         items,
	}
}

func TestPlaceOrderPricesDocumentedScenario(t *testing.T) {
	db := setupTestDB(t)
	service := newOrderService(db)
	pizza := seedPizza(t, db, models.Pizza{Name: "Margherita", Price: 10.00, Category: "Classic"})

	placed, err := service.PlaceOrder(baseOrder(models.OrderItem{
		PizzaID:  pizza.ID,
		Size:     "Large",
		Extras:   []string{"Pepperoni"},
		Quantity: 2,
	}))
	require.NoError(t, err)

	require.Len(t, placed.Items, 1)
	assert.InDelta(t, 16.49, placed.Items[0].Price, 0.0001)
	assert.InDelta(t, 32.98, placed.Subtotal, 0.0001)
	assert.InDelta(t, 3.99, placed.DeliveryFee, 0.0001)
	assert.InDelta(t, 2.64, placed.Tax, 0.0001)
	assert.InDelta(t, 39.61, placed.Total, 0.0001)
	assert.Equal(t, models.OrderStatusPending, placed.Status)
	assert.Equal(t, "cash", placed.PaymentMethod)
	assert.True(t, strings.HasPrefix(placed.Number, "ORD-"))
	assert.Equal(t, "30 min", placed.EstimatedDelivery)
}

func TestPlaceOrderMergesDuplicateLines(t *testing.T) {
	db := setupTestDB(t)
	service := newOrderService(db)
	pizza := seedPizza(t, db, models.Pizza{Name: "Margherita", Price: 10.00, Category: "Classic"})

	item := models.OrderItem{PizzaID: pizza.ID, Size: "Large", Extras: []string{"Pepperoni"}, Quantity: 1}
	placed, err := service.PlaceOrder(baseOrder(item, item))
	require.NoError(t, err)

	require.Len(t, placed.Items, 1)
	assert.Equal(t, 2, placed.Items[0].Quantity)
	assert.InDelta(t, 32.98, placed.Subtotal, 0.0001)
}

func TestPlaceOrderIgnoresClientTotals(t *testing.T) {
	db := setupTestDB(t)
	service := newOrderService(db)
	pizza := seedPizza(t, db, models.Pizza{Name: "Margherita", Price: 10.00, Category: "Classic"})

	order := baseOrder(models.OrderItem{
		PizzaID:  pizza.ID,
		Size:     "Medium",
		Quantity: 1,
		Price:    0.01, // client lies about the unit price
	})
	order.Subtotal = 0.01
	order.Tax = 0
	order.Total = 0.01

	placed, err := service.PlaceOrder(order)
	require.NoError(t, err)

	assert.InDelta(t, 10.00, placed.Items[0].Price, 0.0001)
	assert.InDelta(t, 10.00, placed.Subtotal, 0.0001)
	assert.InDelta(t, 0.80, placed.Tax, 0.0001)
	assert.InDelta(t, 14.79, placed.Total, 0.0001)
}

func TestPlaceOrderUsesAreaFeeWhenActive(t *testing.T) {
	db := setupTestDB(t)
	service := newOrderService(db)
	pizza := seedPizza(t, db, models.Pizza{Name: "Margherita", Price: 10.00, Category: "Classic"})
	seedArea(t, db, models.Area{Name: "Downtown", DeliveryFee: 2.99, DeliveryTime: "20-30 min", IsActive: models.Ptr(true)})
	seedArea(t, db, models.Area{Name: "Uptown", DeliveryFee: 4.99, DeliveryTime: "40-50 min", IsActive: models.Ptr(false)})

	item := models.OrderItem{PizzaID: pizza.ID, Size: "Medium", Quantity: 1}

	order := baseOrder(item)
	order.Area = "Downtown"
	placed, err := service.PlaceOrder(order)
	require.NoError(t, err)
	assert.InDelta(t, 2.99, placed.DeliveryFee, 0.0001)

	// Inactive area falls back to the flat default fee
	order = baseOrder(item)
	order.Area = "Uptown"
	placed, err = service.PlaceOrder(order)
	require.NoError(t, err)
	assert.InDelta(t, 3.99, placed.DeliveryFee, 0.0001)
}

func TestPlaceOrderBumpsAreaAndCustomerCounters(t *testing.T) {
	db := setupTestDB(t)
	service := newOrderService(db)
	pizza := seedPizza(t, db, models.Pizza{Name: "Margherita", Price: 10.00, Category: "Classic"})
	area := seedArea(t, db, models.Area{Name: "Downtown", DeliveryFee: 2.99, DeliveryTime: "20-30 min", IsActive: models.Ptr(true)})
	user := seedUser(t, db, models.User{Name: "Jordan Baker", Email: "jordan@example.com"})

	order := baseOrder(models.OrderItem{PizzaID: pizza.ID, Size: "Medium", Quantity: 1})
	order.Area = "Downtown"
	order.CustomerEmail = "jordan@example.com"
	placed, err := service.PlaceOrder(order)
	require.NoError(t, err)

	var reloadedArea models.Area
	require.NoError(t, db.First(&reloadedArea, area.ID).Error)
	assert.Equal(t, 1, reloadedArea.OrderCount)

	var reloadedUser models.User
	require.NoError(t, db.First(&reloadedUser, user.ID).Error)
	assert.Equal(t, 1, reloadedUser.TotalOrders)
	assert.InDelta(t, placed.Total, reloadedUser.TotalSpent, 0.0001)
	assert.NotNil(t, reloadedUser.LastOrder)
}

func TestPlaceOrderSnapshotSurvivesCatalogEdits(t *testing.T) {
	db := setupTestDB(t)
	service := newOrderService(db)
	pizza := seedPizza(t, db, models.Pizza{Name: "Margherita", Price: 10.00, Category: "Classic"})

	placed, err := service.PlaceOrder(baseOrder(models.OrderItem{
		PizzaID:  pizza.ID,
		Size:     "Medium",
		Quantity: 1,
	}))
	require.NoError(t, err)

	// Reprice the catalog after the order was placed
	require.NoError(t, db.Model(&models.Pizza{}).Where("id = ?", pizza.ID).Update("price", 99.99).Error)

	reloaded, err := service.GetOrderByID(placed.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10.00, reloaded.Items[0].Price, 0.0001)
	assert.InDelta(t, 10.00, reloaded.Subtotal, 0.0001)
}

func TestPlaceOrderValidation(t *testing.T) {
	db := setupTestDB(t)
	service := newOrderService(db)

	_, err := service.PlaceOrder(baseOrder())
	assert.True(t, errors.Is(err, ErrEmptyOrder))

	order := baseOrder(models.OrderItem{Name: "Margherita", Size: "Medium", Quantity: 1, Price: 10})
	order.Status = "teleported"
	_, err = service.PlaceOrder(order)
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestUpdateOrderStatusTransitions(t *testing.T) {
	db := setupTestDB(t)
	service := newOrderService(db)
	pizza := seedPizza(t, db, models.Pizza{Name: "Margherita", Price: 10.00, Category: "Classic"})

	placed, err := service.PlaceOrder(baseOrder(models.OrderItem{PizzaID: pizza.ID, Size: "Medium", Quantity: 1}))
	require.NoError(t, err)

	for _, status := range []string{
		models.OrderStatusPreparing,
		models.OrderStatusOutForDelivery,
		models.OrderStatusDelivered,
	} {
		placed.Status = status
		placed, err = service.UpdateOrder(placed)
		require.NoError(t, err)
		assert.Equal(t, status, placed.Status)
	}

	placed.Status = "returned"
	_, err = service.UpdateOrder(placed)
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newOrderService(db)

	_, err := service.GetOrderByID(123)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	order := baseOrder(models.OrderItem{Name: "Margherita", Quantity: 1, Price: 10})
	order.ID = 123
	order.Status = models.OrderStatusPending
	_, err = service.UpdateOrder(order)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
