package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appuser "github.com/muhammadheryan/foodhive/application/user"
	"github.com/muhammadheryan/foodhive/cmd/config"
	"github.com/muhammadheryan/foodhive/constant"
	usermocks "github.com/muhammadheryan/foodhive/mocks/repository/user"
	"github.com/muhammadheryan/foodhive/model"
	cerr "github.com/muhammadheryan/foodhive/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const secret = "test-secret"

var caller = model.Identity{UID: "u-bob", Name: "Bob", Email: "bob@foodhive.io"}

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	tests := []struct {
		name    string
		token   func(t *testing.T) string
		want    model.Identity
		wantErr bool
	}{
		{
			name: "success: valid token",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
					"sub": "u-bob", "email": "bob@foodhive.io", "name": "Bob", "exp": exp,
				})
			},
			want: caller,
		},
		{
			name: "error: expired",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
					"sub": "u-bob", "email": "bob@foodhive.io", "exp": time.Now().Add(-time.Minute).Unix(),
				})
			},
			wantErr: true,
		},
		{
			name: "error: wrong secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{
					"sub": "u-bob", "email": "bob@foodhive.io", "exp": exp,
				})
			},
			wantErr: true,
		},
		{
			name: "error: other hmac method",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, []byte(secret), jwt.MapClaims{
					"sub": "u-bob", "email": "bob@foodhive.io", "exp": exp,
				})
			},
			wantErr: true,
		},
		{
			name: "error: missing email",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "u-bob", "exp": exp})
			},
			wantErr: true,
		},
		{
			name: "error: missing subject",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"email": "bob@foodhive.io", "exp": exp})
			},
			wantErr: true,
		},
		{
			name:    "error: garbage",
			token:   func(*testing.T) string { return "not.a.token" },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := appuser.NewUserApp(&config.Config{Auth: config.AuthConfig{JWTSecret: secret}}, usermocks.NewUserRepository(t))

			got, err := app.ValidateToken(context.Background(), tt.token(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, constant.ErrUnauthorize)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserApp_UpsertProfile(t *testing.T) {
	tests := []struct {
		name     string
		caller   model.Identity
		req      *model.ProfileRequest
		mockCall func(r *usermocks.UserRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: upsert trims values",
			caller: caller,
			req:    &model.ProfileRequest{Phone: " 0812 ", Address: " 1 Main St "},
			mockCall: func(r *usermocks.UserRepository) {
				r.On("Upsert", mock.Anything, mock.MatchedBy(func(p *model.UserProfile) bool {
					return p.UID == caller.UID && p.Phone == "0812" && p.Address == "1 Main St" && p.UpdatedAt != nil
				})).Return(nil).Once()
				r.On("Get", mock.Anything, caller.UID).Return(&model.UserProfile{UID: caller.UID, Phone: "0812", Address: "1 Main St"}, nil).Once()
			},
		},
		{
			name:    "error: address too long",
			caller:  caller,
			req:     &model.ProfileRequest{Address: strings.Repeat("a", 501)},
			wantErr: true,
			errCode: constant.ErrInvalidFields,
		},
		{
			name:    "error: no uid",
			caller:  model.Identity{Email: "x@y.z"},
			req:     &model.ProfileRequest{},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:   "error: repository failure",
			caller: caller,
			req:    &model.ProfileRequest{Phone: "1"},
			mockCall: func(r *usermocks.UserRepository) {
				r.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := usermocks.NewUserRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appuser.NewUserApp(&config.Config{}, repo)

			got, err := app.UpsertProfile(context.Background(), tt.caller, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpsertProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, "0812", got.Phone)
		})
	}
}

func TestUserApp_GetProfile(t *testing.T) {
	repo := usermocks.NewUserRepository(t)
	repo.On("Get", mock.Anything, caller.UID).Return(nil, nil).Once()
	app := appuser.NewUserApp(&config.Config{}, repo)

	got, err := app.GetProfile(context.Background(), caller, "")
	assert.NoError(t, err)
	assert.Equal(t, &model.UserProfile{UID: caller.UID}, got)

	_, err = app.GetProfile(context.Background(), caller, "u-alice")
	assertErrCode(t, err, constant.ErrForbidden)
}
