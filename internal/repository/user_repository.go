package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notehub-be/internal/dto"
	"notehub-be/internal/entity"
	"notehub-be/internal/pkg/serverutils"
	"notehub-be/pkg/database"

	"github.com/jackc/pgx/v5"
)

type IUserRepository interface {
	UsingTx(ctx context.Context, tx database.DatabaseQueryer) IUserRepository
	Create(ctx context.Context, user *entity.User) error
	GetById(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdateSettings(ctx context.Context, req *dto.UpdateUserSettingsRequest) error
	UpdateProfile(ctx context.Context, req *dto.UpdateUserProfileRequest) error
}

type userRepository struct {
	db database.DatabaseQueryer
}

func NewUserRepository(db database.DatabaseQueryer) IUserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) UsingTx(ctx context.Context, tx database.DatabaseQueryer) IUserRepository {
	return &userRepository{db: tx}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO users (username, email, password, theme_id, navbar_position, navbar_visible)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		user.Username,
		user.Email,
		user.Password,
		user.ThemeId,
		user.NavbarPosition,
		user.NavbarVisible,
	)
	return row.Scan(&user.Id)
}

func (r *userRepository) GetById(ctx context.Context, id int64) (*entity.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, username, email, password, nickname, avatar_url, theme_id, navbar_position, navbar_visible
		 FROM users
		 WHERE id = $1`,
		id,
	)
	return scanUser(row)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, username, email, password, nickname, avatar_url, theme_id, navbar_position, navbar_visible
		 FROM users
		 WHERE username = $1`,
		username,
	)
	return scanUser(row)
}

// UpdateSettings only touches the columns the client actually sent.
func (r *userRepository) UpdateSettings(ctx context.Context, req *dto.UpdateUserSettingsRequest) error {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if req.Theme != nil {
		args = append(args, *req.Theme)
		sets = append(sets, fmt.Sprintf("theme_id = $%d", len(args)))
	}

	if req.NavbarPosition != nil {
		args = append(args, *req.NavbarPosition)
		sets = append(sets, fmt.Sprintf("navbar_position = $%d", len(args)))
	}

	if req.NavbarVisible != nil {
		args = append(args, *req.NavbarVisible)
		sets = append(sets, fmt.Sprintf("navbar_visible = $%d", len(args)))
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, req.Id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	_, err := r.db.Exec(ctx, query, args...)
	return err
}

func (r *userRepository) UpdateProfile(ctx context.Context, req *dto.UpdateUserProfileRequest) error {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if req.Nickname != nil {
		args = append(args, *req.Nickname)
		sets = append(sets, fmt.Sprintf("nickname = $%d", len(args)))
	}

	if req.Password != nil {
		args = append(args, *req.Password)
		sets = append(sets, fmt.Sprintf("password = $%d", len(args)))
	}

	if req.AvatarUrl != nil {
		args = append(args, *req.AvatarUrl)
		sets = append(sets, fmt.Sprintf("avatar_url = $%d", len(args)))
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, req.Id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	_, err := r.db.Exec(ctx, query, args...)
	return err
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.Id,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.Nickname,
		&u.AvatarUrl,
		&u.ThemeId,
		&u.NavbarPosition,
		&u.NavbarVisible,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serverutils.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
