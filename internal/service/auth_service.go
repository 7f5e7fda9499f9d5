package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/dto"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/entity"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/specification"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/unitofwork"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/events"
	pktNats "github.com/kangsm1989-hue/ai-counsel-web/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GuestSession(ctx context.Context) (*dto.GuestSessionResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

const accessTokenExpiry = time.Hour * 24

func signToken(userId uuid.UUID, role entity.UserRole, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"role":    string(role),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		Nickname:     req.Nickname,
		PasswordHash: &hashStr,
		Role:         entity.UserRoleUser,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if user == nil {
		return nil, errors.New("invalid credentials")
	}

	if user.PasswordHash == nil {
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, errors.New("user account is blocked")
	}

	expiresAt := time.Now().Add(accessTokenExpiry)
	signedToken, err := signToken(user.Id, user.Role, expiresAt)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signedToken,
		ExpiresAt:   expiresAt,
		Nickname:    user.Nickname,
	}, nil
}

// GuestSession mints a throwaway account so visitors can try the diary without
// registering. The guest row is a real user record; every downstream surface
// treats it like any other owner.
func (s *authService) GuestSession(ctx context.Context) (*dto.GuestSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	guestId := uuid.New()
	user := &entity.User{
		Id:        guestId,
		Email:     fmt.Sprintf("guest-%s@guest.local", guestId),
		Nickname:  "guest",
		Role:      entity.UserRoleGuest,
		Status:    entity.UserStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(accessTokenExpiry)
	signedToken, err := signToken(user.Id, user.Role, expiresAt)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeGuestStarted,
			Data: map[string]interface{}{
				"user_id": user.Id.String(),
				"time":    time.Now().Format(time.RFC822),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeGuestStarted, err)
		}
	}

	return &dto.GuestSessionResponse{
		AccessToken: signedToken,
		GuestId:     guestId,
		ExpiresAt:   expiresAt,
	}, nil
}
