package services

import (
	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza catalog
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas from the database
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(id uint) (models.Pizza, error)
	// CreatePizza creates a new pizza in the database
	CreatePizza(pizza models.Pizza) (models.Pizza, error)
	// UpdatePizza updates an existing pizza in the database
	UpdatePizza(pizza models.Pizza) (models.Pizza, error)
	// DeletePizza deletes a pizza from the database by its ID
	DeletePizza(id uint) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.First(&pizza, id).Error; err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(pizza models.Pizza) (models.Pizza, error) {
	if err := s.db.Create(&pizza).Error; err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *pizzaService) UpdatePizza(pizza models.Pizza) (models.Pizza, error) {
	var existing models.Pizza
	if err := s.db.First(&existing, pizza.ID).Error; err != nil {
		return models.Pizza{}, err
	}
	if err := s.db.Save(&pizza).Error; err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *pizzaService) DeletePizza(id uint) error {
	result := s.db.Delete(&models.Pizza{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
