package services

import (
	"errors"

	"github.com/tablebook/booking-app/models"
	"github.com/tablebook/booking-app/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role user
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// UserService menangani registrasi dan lookup user.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetUserByID me-resolve subject dari token JWT ke record user.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Register membuat user baru dengan password yang sudah di-hash.
// Email unik dijaga oleh constraint database, bukan check-then-create,
// supaya dua registrasi yang balapan tetap menghasilkan ErrEmailTaken.
func (s *UserService) Register(name, email, password, role string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)
	return &user, nil
}

// Authenticate memverifikasi email + password dan mengembalikan user-nya.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
