package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"order-api/dto"
	"order-api/models"
	"order-api/repositories"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type IUserService interface {
	FindAll(includeOrders bool) (*[]models.User, error)
	FindById(userID string) (*models.User, error)
	Create(input dto.CreateUserInput) (*models.User, error)
	Delete(userID string) (*models.User, error)
}

type UserService struct {
	repository repositories.IUserRepository
	validate   *validator.Validate
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{repository: repository, validate: validator.New()}
}

func (s *UserService) FindAll(includeOrders bool) (*[]models.User, error) {
	return s.repository.FindAll(includeOrders)
}

func (s *UserService) FindById(userID string) (*models.User, error) {
	user, err := s.repository.FindById(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Create(input dto.CreateUserInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return nil, fmt.Errorf("%w: name must be between 2 and 100 characters", ErrValidation)
	}
	if err := s.validate.Var(input.Email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: email is not a valid address", ErrValidation)
	}

	newUser := models.User{
		Name:  name,
		Email: input.Email,
	}
	created, err := s.repository.Create(newUser)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email %s already registered", ErrConflict, input.Email)
		}
		return nil, err
	}
	return created, nil
}

// Delete returns a snapshot of the user as it existed right before the
// delete, orders and items included. Callers cannot re-read the row
// afterwards, so the snapshot is their only record of what was removed.
func (s *UserService) Delete(userID string) (*models.User, error) {
	snapshot, err := s.repository.Delete(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, err
	}
	return snapshot, nil
}
