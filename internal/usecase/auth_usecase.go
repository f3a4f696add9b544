package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/esbreenn/clinica-turnos/internal/converter"
	"github.com/esbreenn/clinica-turnos/internal/delivery/dto"
	"github.com/esbreenn/clinica-turnos/internal/delivery/http/middleware"
	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
	"github.com/esbreenn/clinica-turnos/internal/domain/repository"
	pgrepo "github.com/esbreenn/clinica-turnos/internal/repository"
	"github.com/esbreenn/clinica-turnos/internal/service"
	"github.com/esbreenn/clinica-turnos/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		redisClient:  redisClient,
		auditService: auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, tokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	// Record the token in Redis so logout can revoke it before expiry.
	tokenKey := fmt.Sprintf("access_token:%s:%s", user.ID.String(), tokenID)
	if err := u.redisClient.Set(ctx, tokenKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, u.db, &user.ID, entity.AuditActionUserLogin, "usuario", user.ID, nil)

	return &dto.TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	tokenKey := fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
	if err := u.redisClient.Del(ctx, tokenKey).Err(); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	_ = u.auditService.LogCreate(ctx, u.db, &userID, entity.AuditActionUserLogout, "usuario", userID, nil)
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// CreateUser registers a new staff account. Admin only, enforced at the router.
func (u *authUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		Role:     req.Role,
		IsActive: true,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		if pgrepo.IsUniqueViolation(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	actorID := middleware.ActorID(ctx)
	_ = u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionUserCreate, "usuario", user.ID, converter.UserToResponse(user))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit user create: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}
