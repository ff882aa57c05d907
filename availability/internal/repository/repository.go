package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/hotelio/hotel-service/availability/internal/model"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Repository interface {
	ListAvailable(ctx context.Context, query model.AvailabilityQuery) ([]model.RoomDay, error)
	UpsertRoomDays(ctx context.Context, roomID int, roomType string, status model.Status, from, to time.Time) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	availabilityTableName = `availability`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ListAvailable returns matching room/day records ordered by room_id, then
// available_date. The ordering is part of the contract: the orchestrator's
// candidate selection relies on it being deterministic.
func (r *repository) ListAvailable(ctx context.Context, query model.AvailabilityQuery) ([]model.RoomDay, error) {
	q, args, err := qb.Select("room_id", "available_date").
		From(availabilityTableName).
		Where(sq.Eq{"room_type": query.RoomType}).
		Where(sq.GtOrEq{"available_date": query.StartDate}).
		Where(sq.LtOrEq{"available_date": query.EndDate}).
		Where(sq.Eq{"status": model.StatusAvailable}).
		OrderBy("room_id asc", "available_date asc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.RoomDay
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		r.log.Error("ListAvailable", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return nil, err
	}
	return items, nil
}

// UpsertRoomDays writes one record per day in [from, to] for the room,
// overwriting status and room_type on conflict. The (room_id, available_date)
// uniqueness comes from the table constraint.
func (r *repository) UpsertRoomDays(ctx context.Context, roomID int, roomType string, status model.Status, from, to time.Time) error {
	q := `
	insert into availability (room_id, room_type, available_date, status)
	select $1, $2, d::date, $3
	from generate_series($4::date, $5::date, interval '1 day') d
	on conflict (room_id, available_date)
	do update set status = excluded.status, room_type = excluded.room_type
`
	if _, err := r.db.ExecContext(ctx, q, roomID, roomType, status,
		from.Format(time.DateOnly), to.Format(time.DateOnly)); err != nil {
		r.log.Error("UpsertRoomDays", zap.Int("room_id", roomID), zap.Error(err))
		return err
	}
	return nil
}
