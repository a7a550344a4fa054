// Package users provides database operations for user management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	matches, err := repo.FindUsersByEmail(ctx, "reader@example.com")
package users

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new user.
func (r *Repository) CreateUser(ctx context.Context, username, email string) (*entities.User, error) {
	user := &entities.User{
		Username: username,
		Email:    email,
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUsersByEmail returns every user registered with email.
func (r *Repository) FindUsersByEmail(ctx context.Context, email string) ([]entities.User, error) {
	users := []entities.User{}
	err := r.db.WithContext(ctx).Where("email = ?", email).Find(&users).Error
	return users, err
}
