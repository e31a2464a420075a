package services

import (
	"errors"
	"time"

	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"gorm.io/gorm"
)

// ErrUserAlreadyExists is returned when registering an email that is taken.
var ErrUserAlreadyExists = errors.New("user_already_exists")

// ErrInvalidCredentials is returned when the email/password pair does not
// match a stored user. Comparison is plaintext; no tokens are issued.
var ErrInvalidCredentials = errors.New("invalid_credentials")

type UserService interface {
	GetAllUsers() ([]models.User, error)
	GetUserByID(id uint) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(user models.User) (models.User, error)
	DeleteUser(id uint) error
	// Login checks the email/password pair and stamps the last-login time.
	Login(email, password string) (models.User, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) GetUserByID(id uint) (models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *userService) CreateUser(user *models.User) error {
	var existing models.User
	if err := s.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return s.db.Create(user).Error
}

func (s *userService) UpdateUser(user models.User) (models.User, error) {
	var existing models.User
	if err := s.db.First(&existing, user.ID).Error; err != nil {
		return models.User{}, err
	}
	if err := s.db.Save(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *userService) DeleteUser(id uint) error {
	result := s.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *userService) Login(email, password string) (models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if user.Password != password {
		return models.User{}, ErrInvalidCredentials
	}
	now := time.Now()
	user.LastLogin = &now
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
