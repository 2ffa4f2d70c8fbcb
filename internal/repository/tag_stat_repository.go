package repository

import (
	"context"

	"notehub-be/internal/entity"
	"notehub-be/pkg/database"
)

type ITagStatRepository interface {
	UsingTx(ctx context.Context, tx database.DatabaseQueryer) ITagStatRepository
	Create(ctx context.Context, stat *entity.TagStat) error
	DeleteByUserId(ctx context.Context, userId int64) error
	GetByUserId(ctx context.Context, userId int64) ([]*entity.TagStat, error)
}

type tagStatRepository struct {
	db database.DatabaseQueryer
}

func NewTagStatRepository(db database.DatabaseQueryer) ITagStatRepository {
	return &tagStatRepository{db: db}
}

func (r *tagStatRepository) UsingTx(ctx context.Context, tx database.DatabaseQueryer) ITagStatRepository {
	return &tagStatRepository{db: tx}
}

func (r *tagStatRepository) Create(ctx context.Context, stat *entity.TagStat) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO tag_stats (user_id, name, count) VALUES ($1, $2, $3)`,
		stat.UserId,
		stat.Name,
		stat.Count,
	)
	return err
}

func (r *tagStatRepository) DeleteByUserId(ctx context.Context, userId int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tag_stats WHERE user_id = $1`, userId)
	return err
}

func (r *tagStatRepository) GetByUserId(ctx context.Context, userId int64) ([]*entity.TagStat, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, name, count
		 FROM tag_stats
		 WHERE user_id = $1
		 ORDER BY count DESC, name ASC`,
		userId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*entity.TagStat, 0)
	for rows.Next() {
		var s entity.TagStat
		if err := rows.Scan(&s.UserId, &s.Name, &s.Count); err != nil {
			return nil, err
		}

		res = append(res, &s)
	}

	return res, rows.Err()
}
