package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"huddle/internal/config"
	"huddle/internal/models"
	"huddle/internal/repository"
	"huddle/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type UserService struct {
	userRepo  repository.UserRepository
	jwtSecret string
}

type CreateAccountInput struct {
	Username string
	Email    string
	Password string
	Phone    string
	Avatar   *ImageUpload
}

type UpdateProfileInput struct {
	UserID   uint
	Username string
	Password string
	// Phone is a tri-state field: nil leaves the stored number untouched,
	// a pointer to "" clears it, anything else replaces it.
	Phone  *string
	Avatar *ImageUpload
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) *UserService {
	return &UserService{userRepo: userRepo, jwtSecret: cfg.JWTSecret}
}

func (s *UserService) CreateAccount(ctx context.Context, in CreateAccountInput) (*models.Profile, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePhone(in.Phone); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
	}
	if in.Phone != "" {
		user.Phone = &in.Phone
	}

	if in.Avatar != nil {
		avatar, err := processImage(in.Avatar, avatarMaxEdge)
		if err != nil {
			return nil, err
		}
		user.AvatarName = avatar.Name
		user.AvatarType = avatar.ContentType
		user.Avatar = avatar.Data
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return models.NewProfile(user), nil
}

// LogIn authenticates by email and password and returns the profile with a
// signed bearer token. Both fields are checked before any lookup happens,
// so malformed requests never hit the database.
func (s *UserService) LogIn(ctx context.Context, email, password string) (*models.Profile, string, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, "", models.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == models.CodeNotFound {
			return nil, "", models.NewUnauthorizedError("Invalid email or password")
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", models.NewUnauthorizedError("Invalid email or password")
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}
	return models.NewProfile(user), token, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	// The username is always overwritten, so a blank submission is a
	// validation error rather than a no-op.
	in.Username = strings.TrimSpace(in.Username)
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	user.Username = in.Username

	if in.Password != "" {
		if err := validation.ValidatePassword(in.Password); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}

	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		if phone == "" {
			user.Phone = nil
		} else {
			if err := validation.ValidatePhone(phone); err != nil {
				return nil, models.NewValidationError(err.Error())
			}
			user.Phone = &phone
		}
	}

	if in.Avatar != nil {
		avatar, err := processImage(in.Avatar, avatarMaxEdge)
		if err != nil {
			return nil, err
		}
		user.AvatarName = avatar.Name
		user.AvatarType = avatar.ContentType
		user.Avatar = avatar.Data
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return models.NewProfile(user), nil
}

// DeleteAccount soft-deletes the account. Deleting an already-deleted
// account reports NOT_FOUND since default reads exclude soft-deleted rows.
func (s *UserService) DeleteAccount(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.NewValidationError("Email is required")
	}
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.userRepo.SoftDelete(ctx, user.ID)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

func (s *UserService) issueToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
