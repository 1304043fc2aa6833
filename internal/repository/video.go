package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/infosoft-ph/video-rental-service/internal/errs"
	"github.com/infosoft-ph/video-rental-service/internal/model"
)

func (r *repository) ListVideos(ctx context.Context) ([]model.Video, error) {
	query, args, err := qb.Select("id", "title", "category", "price", "quantity", "rent_days", "version").
		From(videoTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	videos := make([]model.Video, 0)
	if err := r.db.SelectContext(ctx, &videos, query, args...); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *repository) GetVideo(ctx context.Context, id int) (model.Video, error) {
	query, args, err := qb.Select("id", "title", "category", "price", "quantity", "rent_days", "version").
		From(videoTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Video{}, err
	}

	var video model.Video
	if err := r.db.GetContext(ctx, &video, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Video{}, errors.Wrap(errs.ErrNotFound, "video")
		}
		return model.Video{}, err
	}
	return video, nil
}

func (r *repository) CreateVideo(ctx context.Context, video model.Video) (model.Video, error) {
	query, args, err := qb.Insert(videoTableName).
		Columns("title", "category", "price", "quantity", "rent_days").
		Values(video.Title, video.Category, video.Price, video.Quantity, video.RentDays).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Video{}, err
	}

	var created model.Video
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateVideo", zap.String("q", query), zap.Any("args", args))
		return model.Video{}, wrapPgError(err)
	}
	return created, nil
}

// UpdateVideo applies the change only when the stored version matches the
// one the client read; a stale version on an existing row is a conflict.
func (r *repository) UpdateVideo(ctx context.Context, video model.Video) (model.Video, error) {
	query, args, err := qb.Update(videoTableName).
		Set("title", video.Title).
		Set("category", video.Category).
		Set("price", video.Price).
		Set("quantity", video.Quantity).
		Set("rent_days", video.RentDays).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": video.ID, "version": video.Version}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Video{}, err
	}

	var updated model.Video
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := r.GetVideo(ctx, video.ID); getErr != nil {
				return model.Video{}, getErr
			}
			return model.Video{}, errors.Wrap(errs.ErrConflict, "video was modified concurrently")
		}
		return model.Video{}, wrapPgError(err)
	}
	return updated, nil
}

func (r *repository) DeleteVideo(ctx context.Context, id int) error {
	query, args, err := qb.Delete(videoTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPgError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrap(errs.ErrNotFound, "video")
	}
	return nil
}
