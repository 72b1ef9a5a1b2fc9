package user

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/foodhive/cmd/config"
	"github.com/muhammadheryan/foodhive/constant"
	"github.com/muhammadheryan/foodhive/model"
	userrepo "github.com/muhammadheryan/foodhive/repository/user"
	"github.com/muhammadheryan/foodhive/utils/errors"
	"github.com/muhammadheryan/foodhive/utils/logger"
	validatorx "github.com/muhammadheryan/foodhive/utils/validator"
	"go.uber.org/zap"
)

type UserApp interface {
	ValidateToken(ctx context.Context, token string) (model.Identity, error)
	UpsertProfile(ctx context.Context, caller model.Identity, req *model.ProfileRequest) (*model.UserProfile, error)
	GetProfile(ctx context.Context, caller model.Identity, uid string) (*model.UserProfile, error)
}

type UserAppImpl struct {
	config   *config.Config
	userRepo userrepo.UserRepository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository) UserApp {
	return &UserAppImpl{
		config:   config,
		userRepo: userRepo,
	}
}

// identityClaims are the claims issued by the identity provider.
type identityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (model.Identity, error) {
	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		logger.Debug("[ValidateToken] rejected token", zap.Error(err))
		return model.Identity{}, errors.SetCustomError(constant.ErrUnauthorize)
	}

	email := strings.TrimSpace(claims.Email)
	if claims.Subject == "" || email == "" {
		logger.Debug("[ValidateToken] token missing subject or email")
		return model.Identity{}, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return model.Identity{
		UID:   claims.Subject,
		Name:  strings.TrimSpace(claims.Name),
		Email: email,
	}, nil
}

func (s *UserAppImpl) UpsertProfile(ctx context.Context, caller model.Identity, req *model.ProfileRequest) (*model.UserProfile, error) {
	if caller.UID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	if err := validatorx.ValidateStruct(req); err != nil {
		_, invalid := validatorx.FieldErrors(err)
		return nil, errors.SetFieldError(constant.ErrInvalidFields, invalid)
	}

	// uid always comes from the token, never from the body
	now := time.Now().UTC().Truncate(time.Millisecond)
	if err := s.userRepo.Upsert(ctx, &model.UserProfile{
		UID:       caller.UID,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedAt: &now,
		UpdatedAt: &now,
	}); err != nil {
		logger.Error("[UpsertProfile] err userRepo.Upsert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	profile, err := s.userRepo.Get(ctx, caller.UID)
	if err != nil || profile == nil {
		logger.Error("[UpsertProfile] err reading stored profile", zap.String("uid", caller.UID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return profile, nil
}

func (s *UserAppImpl) GetProfile(ctx context.Context, caller model.Identity, uid string) (*model.UserProfile, error) {
	if caller.UID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if uid == "" {
		uid = caller.UID
	}
	if uid != caller.UID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	profile, err := s.userRepo.Get(ctx, uid)
	if err != nil {
		logger.Error("[GetProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if profile == nil {
		// saved on first POST /users
		return &model.UserProfile{UID: uid}, nil
	}
	return profile, nil
}
