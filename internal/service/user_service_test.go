package service

import (
	"context"
	"testing"

	"notehub-be/internal/dto"
	"notehub-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPassword(t *testing.T) {
	userRepo := newFakeUserRepository()
	svc := NewUserService(userRepo)

	res, err := svc.Register(context.Background(), &dto.RegisterUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	stored := userRepo.users[res.Id]
	assert.NotEqual(t, "s3cret-pass", stored.Password, "plaintext passwords must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")))
}

func TestLogin(t *testing.T) {
	userRepo := newFakeUserRepository()
	svc := NewUserService(userRepo)

	_, err := svc.Register(context.Background(), &dto.RegisterUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginUserRequest{Username: "alice", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)

	_, err = svc.Login(context.Background(), &dto.LoginUserRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, serverutils.ErrUnauthorized)

	_, err = svc.Login(context.Background(), &dto.LoginUserRequest{Username: "nobody", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, serverutils.ErrUnauthorized)
}

func TestUpdateSettingsValidatesTheme(t *testing.T) {
	userRepo := newFakeUserRepository()
	svc := NewUserService(userRepo)

	created, err := svc.Register(context.Background(), &dto.RegisterUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	badTheme := 99
	_, err = svc.UpdateSettings(context.Background(), &dto.UpdateUserSettingsRequest{Id: created.Id, Theme: &badTheme})
	assert.ErrorIs(t, err, serverutils.ErrBadRequest)

	theme := 2
	visible := false
	res, err := svc.UpdateSettings(context.Background(), &dto.UpdateUserSettingsRequest{
		Id:            created.Id,
		Theme:         &theme,
		NavbarVisible: &visible,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.ThemeId)
	assert.False(t, res.NavbarVisible)
	assert.Equal(t, "top", res.NavbarPosition, "untouched settings keep their value")
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	userRepo := newFakeUserRepository()
	svc := NewUserService(userRepo)

	created, err := svc.Register(context.Background(), &dto.RegisterUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	newPass := "n3w-pass-123"
	_, err = svc.UpdateProfile(context.Background(), &dto.UpdateUserProfileRequest{Id: created.Id, Password: &newPass})
	require.NoError(t, err)

	stored := userRepo.users[created.Id]
	assert.NotEqual(t, newPass, stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(newPass)))
}
