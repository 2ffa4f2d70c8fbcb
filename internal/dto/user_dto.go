package dto

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterUserResponse struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Nickname       *string `json:"nickname"`
	AvatarUrl      *string `json:"avatar_url"`
	ThemeId        int     `json:"theme_id"`
	NavbarPosition string  `json:"navbar_position"`
	NavbarVisible  bool    `json:"navbar_visible"`
}

// Settings and profile updates are partial: nil fields are left untouched.
type UpdateUserSettingsRequest struct {
	Id             int64
	Theme          *int    `json:"theme"`
	NavbarPosition *string `json:"navbar_position"`
	NavbarVisible  *bool   `json:"navbar_visible"`
}

type UpdateUserProfileRequest struct {
	Id        int64
	Nickname  *string `json:"nickname"`
	Password  *string `json:"password"`
	AvatarUrl *string `json:"avatar_url"`
}
