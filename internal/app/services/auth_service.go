package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arjun/regportal/internal/app/models"
	"github.com/arjun/regportal/internal/app/models/dto"
	"github.com/arjun/regportal/internal/app/repositories"
	"github.com/arjun/regportal/internal/otp"
	"github.com/arjun/regportal/internal/pkg/apperrors"
	"github.com/arjun/regportal/internal/pkg/auth"
	"github.com/arjun/regportal/internal/pkg/phone"
	"github.com/arjun/regportal/internal/pkg/sms"
)

// AuthService handles account creation and credential verification
type AuthService interface {
	RequestOTP(ctx context.Context, phoneNumber string) error
	CreateAccount(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, enrollmentNumber, password string) (*models.User, error)
}

type authService struct {
	userRepo repositories.IUserRepository
	otpStore otp.Store
	sender   sms.Sender
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, otpStore otp.Store, sender sms.Sender, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		otpStore: otpStore,
		sender:   sender,
		logger:   logger,
	}
}

// RequestOTP issues a fresh verification code for a phone number and texts it
// out. A new request overwrites any code still pending for the same number.
// If delivery fails the stored code is left in place, so a client that did
// receive the text out-of-band can still verify against it.
func (s *authService) RequestOTP(ctx context.Context, phoneNumber string) error {
	subscriber, e164, err := phone.Normalize(phoneNumber)
	if err != nil {
		return err
	}

	exists, err := s.userRepo.PhoneNumberExists(ctx, subscriber)
	if err != nil {
		return fmt.Errorf("error checking phone number: %w", err)
	}
	if exists {
		return apperrors.ErrPhoneAlreadyInUse
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return err
	}

	if err := s.otpStore.Set(ctx, subscriber, code); err != nil {
		return err
	}

	body := fmt.Sprintf("Your verification code is: %s. It is valid for 5 minutes.", code)
	if err := s.sender.Send(ctx, e164, body); err != nil {
		s.logger.Error().Err(err).Str("phone", e164).Msg("OTP delivery failed")
		return apperrors.ErrOTPDeliveryFailed
	}

	s.logger.Info().Str("phone", e164).Msg("OTP issued")
	return nil
}

// CreateAccount verifies the OTP challenge and persists a new user. The
// pending code is discarded on success and on duplicate-identity rejections,
// forcing a fresh OTP round for another attempt.
func (s *authService) CreateAccount(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	subscriber, _, err := phone.Normalize(req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	stored, err := s.otpStore.Get(ctx, subscriber)
	if errors.Is(err, otp.ErrNotFound) || (err == nil && stored != req.OTP) {
		return nil, apperrors.ErrInvalidOrExpiredOTP
	}
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EnrollmentNumberExists(ctx, req.EnrollmentNumber)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment number: %w", err)
	}
	if exists {
		_ = s.otpStore.Delete(ctx, subscriber)
		return nil, apperrors.ErrEnrollmentAlreadyExists
	}

	exists, err = s.userRepo.PhoneNumberExists(ctx, subscriber)
	if err != nil {
		return nil, fmt.Errorf("error checking phone number: %w", err)
	}
	if exists {
		_ = s.otpStore.Delete(ctx, subscriber)
		return nil, apperrors.ErrPhoneAlreadyInUse
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		EnrollmentNumber: req.EnrollmentNumber,
		PhoneNumber:      subscriber,
		Password:         hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.otpStore.Delete(ctx, subscriber); err != nil {
		s.logger.Warn().Err(err).Str("phone", subscriber).Msg("Failed to discard consumed OTP")
	}

	s.logger.Info().Str("enrollmentNumber", user.EnrollmentNumber).Msg("User created successfully")
	return user, nil
}

// Login verifies credentials. A missing user and a wrong password both yield
// the same undifferentiated error, so the response never reveals which factor
// failed.
func (s *authService) Login(ctx context.Context, enrollmentNumber, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEnrollmentNumber(ctx, enrollmentNumber)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
