package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/regportal/internal/app/models"
	"github.com/arjun/regportal/internal/pkg/apperrors"
	"github.com/arjun/regportal/internal/pkg/dberrors"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEnrollmentNumber(ctx context.Context, enrollmentNumber string) (*models.User, error)
	EnrollmentNumberExists(ctx context.Context, enrollmentNumber string) (bool, error)
	PhoneNumberExists(ctx context.Context, phoneNumber string) (bool, error)
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user row
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (enrollment_number, phone_number, hashed_password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		user.EnrollmentNumber, user.PhoneNumber, user.Password).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_enrollment_number_key") {
			return apperrors.ErrEnrollmentAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_phone_number_key") {
			return apperrors.ErrPhoneAlreadyInUse
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByEnrollmentNumber retrieves a user by enrollment number
func (r *UserRepository) GetByEnrollmentNumber(ctx context.Context, enrollmentNumber string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, enrollment_number, phone_number, hashed_password, created_at
		FROM users
		WHERE enrollment_number = $1`,
		enrollmentNumber).Scan(
		&user.ID, &user.EnrollmentNumber, &user.PhoneNumber, &user.Password, &user.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

// EnrollmentNumberExists checks if an enrollment number is already taken
func (r *UserRepository) EnrollmentNumberExists(ctx context.Context, enrollmentNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE enrollment_number = $1)`,
		enrollmentNumber).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment number: %w", err)
	}

	return exists, nil
}

// PhoneNumberExists checks if a normalized phone number is already owned by a user
func (r *UserRepository) PhoneNumberExists(ctx context.Context, phoneNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE phone_number = $1)`,
		phoneNumber).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking phone number: %w", err)
	}

	return exists, nil
}
