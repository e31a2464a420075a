package services

import (
	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"gorm.io/gorm"
)

// AreaService provides methods to interact with delivery areas
type AreaService interface {
	GetAllAreas() ([]models.Area, error)
	GetAreaByID(id uint) (models.Area, error)
	CreateArea(area models.Area) (models.Area, error)
	UpdateArea(area models.Area) (models.Area, error)
	DeleteArea(id uint) error
	// GetActiveAreaByName looks up an active area by its display name.
	// Checkout uses it to resolve the per-area delivery fee.
	GetActiveAreaByName(name string) (models.Area, error)
}

type areaService struct {
	db *gorm.DB
}

// NewAreaService creates a new instance of AreaService
func NewAreaService(db *gorm.DB) AreaService {
	return &areaService{db: db}
}

func (s *areaService) GetAllAreas() ([]models.Area, error) {
	var areas []models.Area
	if err := s.db.Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

func (s *areaService) GetAreaByID(id uint) (models.Area, error) {
	var area models.Area
	if err := s.db.First(&area, id).Error; err != nil {
		return models.Area{}, err
	}
	return area, nil
}

func (s *areaService) CreateArea(area models.Area) (models.Area, error) {
	if err := s.db.Create(&area).Error; err != nil {
		return models.Area{}, err
	}
	return area, nil
}

func (s *areaService) UpdateArea(area models.Area) (models.Area, error) {
	var existing models.Area
	if err := s.db.First(&existing, area.ID).Error; err != nil {
		return models.Area{}, err
	}
	if err := s.db.Save(&area).Error; err != nil {
		return models.Area{}, err
	}
	return area, nil
}

func (s *areaService) DeleteArea(id uint) error {
	result := s.db.Delete(&models.Area{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *areaService) GetActiveAreaByName(name string) (models.Area, error) {
	var area models.Area
	if err := s.db.Where("name = ? AND is_active = ?", name, true).First(&area).Error; err != nil {
		return models.Area{}, err
	}
	return area, nil
}
