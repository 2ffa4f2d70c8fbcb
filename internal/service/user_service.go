package service

import (
	"context"
	"errors"
	"fmt"

	"notehub-be/internal/constant"
	"notehub-be/internal/dto"
	"notehub-be/internal/entity"
	"notehub-be/internal/pkg/serverutils"
	"notehub-be/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.RegisterUserResponse, error)
	Login(ctx context.Context, req *dto.LoginUserRequest) (*dto.UserResponse, error)
	Show(ctx context.Context, id int64) (*dto.UserResponse, error)
	UpdateSettings(ctx context.Context, req *dto.UpdateUserSettingsRequest) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateUserProfileRequest) (*dto.UserResponse, error)
	Themes(ctx context.Context) []constant.Theme
}

type userService struct {
	userRepository repository.IUserRepository
}

func NewUserService(userRepository repository.IUserRepository) IUserService {
	return &userService{userRepository: userRepository}
}

func (c *userService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.RegisterUserResponse, error) {

	// Passwords are never stored or compared in plaintext.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Username:       req.Username,
		Email:          req.Email,
		Password:       string(hash),
		ThemeId:        constant.Themes[0].Id,
		NavbarPosition: "top",
		NavbarVisible:  true,
	}

	err = c.userRepository.Create(ctx, &user)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterUserResponse{
		Id:       user.Id,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (c *userService) Login(ctx context.Context, req *dto.LoginUserRequest) (*dto.UserResponse, error) {

	user, err := c.userRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, serverutils.ErrNotFound) {
			return nil, serverutils.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, serverutils.ErrUnauthorized
	}

	return toUserResponse(user), nil
}

func (c *userService) Show(ctx context.Context, id int64) (*dto.UserResponse, error) {

	user, err := c.userRepository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

func (c *userService) UpdateSettings(ctx context.Context, req *dto.UpdateUserSettingsRequest) (*dto.UserResponse, error) {

	if req.Theme != nil {
		if _, ok := constant.ThemeById(*req.Theme); !ok {
			return nil, fmt.Errorf("unknown theme %d: %w", *req.Theme, serverutils.ErrBadRequest)
		}
	}

	_, err := c.userRepository.GetById(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	err = c.userRepository.UpdateSettings(ctx, req)
	if err != nil {
		return nil, err
	}

	user, err := c.userRepository.GetById(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

func (c *userService) UpdateProfile(ctx context.Context, req *dto.UpdateUserProfileRequest) (*dto.UserResponse, error) {

	_, err := c.userRepository.GetById(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		req.Password = &hashed
	}

	err = c.userRepository.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	user, err := c.userRepository.GetById(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

func (c *userService) Themes(ctx context.Context) []constant.Theme {
	return constant.Themes
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:             user.Id,
		Username:       user.Username,
		Email:          user.Email,
		Nickname:       user.Nickname,
		AvatarUrl:      user.AvatarUrl,
		ThemeId:        user.ThemeId,
		NavbarPosition: user.NavbarPosition,
		NavbarVisible:  user.NavbarVisible,
	}
}
