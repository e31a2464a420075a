package services

import (
	"errors"
	"testing"

	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPizzaServiceCRUD(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)

	created, err := service.CreatePizza(models.Pizza{
		Name:        "Margherita",
		Price:       10.99,
		Category:    "Classic",
		IsVeg:       true,
		IsAvailable: models.Ptr(true),
		Ingredients: []string{"Tomato Sauce", "Mozzarella", "Basil"},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := service.GetPizzaByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Margherita", fetched.Name)
	assert.Equal(t, []string{"Tomato Sauce", "Mozzarella", "Basil"}, fetched.Ingredients)

	fetched.Price = 11.49
	updated, err := service.UpdatePizza(fetched)
	require.NoError(t, err)
	assert.Equal(t, 11.49, updated.Price)

	all, err := service.GetAllPizzas()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, service.DeletePizza(created.ID))
	_, err = service.GetPizzaByID(created.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPizzaServiceAvailabilityFlagOnCreate(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)

	t.Run("omitted flag defaults to available", func(t *testing.T) {
		created, err := service.CreatePizza(models.Pizza{Name: "Funghi", Price: 11.99, Category: "Classic"})
		require.NoError(t, err)

		reloaded, err := service.GetPizzaByID(created.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.IsAvailable)
		assert.True(t, *reloaded.IsAvailable)
	})

	t.Run("explicit false is persisted", func(t *testing.T) {
		created, err := service.CreatePizza(models.Pizza{
			Name:        "Quattro Stagioni",
			Price:       13.99,
			Category:    "Classic",
			IsAvailable: models.Ptr(false),
		})
		require.NoError(t, err)

		reloaded, err := service.GetPizzaByID(created.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.IsAvailable)
		assert.False(t, *reloaded.IsAvailable)
	})
}

func TestPizzaServiceDeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)
	seedPizza(t, db, models.Pizza{Name: "Funghi", Price: 11.99, Category: "Classic"})

	err := service.DeletePizza(999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// No mutation happened
	all, err := service.GetAllPizzas()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPizzaServiceUpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)

	_, err := service.UpdatePizza(models.Pizza{ID: 42, Name: "Ghost", Price: 9.99, Category: "Classic"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
