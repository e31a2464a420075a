package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"github.com/ovenfresh/pizza-shop-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pizzaRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := setupTestDB(t)
	controller := NewPizzaController(services.NewPizzaService(db))

	router := gin.New()
	router.GET("/api/pizzas", controller.GetAllPizzas)
	router.GET("/api/pizzas/:id", controller.GetPizzaByID)
	router.POST("/api/pizzas", controller.CreatePizza)
	router.PUT("/api/pizzas/:id", controller.UpdatePizza)
	router.DELETE("/api/pizzas/:id", controller.DeletePizza)
	return router
}

func TestPizzaEndpoints(t *testing.T) {
	router := pizzaRouter(t)

	t.Run("create", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPost, "/api/pizzas", models.Pizza{
			Name:        "Margherita",
			Price:       10.99,
			Category:    "Classic",
			IsVeg:       true,
			IsAvailable: models.Ptr(true),
			Ingredients: []string{"Tomato Sauce", "Mozzarella", "Basil"},
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var created models.Pizza
		decodeBody(t, w, &created)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Margherita", created.Name)
	})

	t.Run("create rejects missing required fields", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPost, "/api/pizzas", map[string]interface{}{
			"description": "no name, no price",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		decodeBody(t, w, &body)
		assert.Contains(t, body, "error")
	})

	t.Run("list", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/api/pizzas", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var pizzas []models.Pizza
		decodeBody(t, w, &pizzas)
		assert.Len(t, pizzas, 1)
	})

	t.Run("get missing pizza", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/api/pizzas/999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		decodeBody(t, w, &body)
		assert.Equal(t, "Pizza not found", body["error"])
		assert.Equal(t, models.ErrPizzaNotFound, body["code"])
	})

	t.Run("invalid id format", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/api/pizzas/not-a-number", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete missing pizza", func(t *testing.T) {
		w := performJSON(t, router, http.MethodDelete, "/api/pizzas/999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		decodeBody(t, w, &body)
		assert.Equal(t, "Pizza not found", body["error"])
	})

	t.Run("delete", func(t *testing.T) {
		w := performJSON(t, router, http.MethodDelete, "/api/pizzas/1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = performJSON(t, router, http.MethodGet, "/api/pizzas/1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreatePizzaUnavailable(t *testing.T) {
	router := pizzaRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/pizzas", map[string]interface{}{
		"name":        "Quattro Stagioni",
		"price":       13.99,
		"category":    "Classic",
		"isAvailable": false,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Pizza
	decodeBody(t, w, &created)
	require.NotNil(t, created.IsAvailable)
	assert.False(t, *created.IsAvailable)

	// The flag must survive the round trip through the store
	w = performJSON(t, router, http.MethodGet, "/api/pizzas/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Pizza
	decodeBody(t, w, &reloaded)
	require.NotNil(t, reloaded.IsAvailable)
	assert.False(t, *reloaded.IsAvailable)
}
