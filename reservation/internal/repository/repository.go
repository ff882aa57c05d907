package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/hotelio/hotel-service/reservation/internal/errs"
	"github.com/hotelio/hotel-service/reservation/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateReservation(ctx context.Context, roomID int, req model.CreateReservationRequest) (model.Reservation, error)
	GetReservation(ctx context.Context, id int) (model.Reservation, error)
	GetReservations(ctx context.Context) ([]model.Reservation, error)
	DeleteReservation(ctx context.Context, id int) (model.Reservation, error)
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
	reservationTableName = `reservation`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// CreateReservation inserts a confirmed reservation. The table's exclusion
// constraint rejects overlapping date ranges for the same room; that
// conflict surfaces as ErrRoomConflict so the caller can try the next
// candidate instead of double-booking.
func (r *repository) CreateReservation(ctx context.Context, roomID int, req model.CreateReservationRequest) (model.Reservation, error) {
	q, args, err := qb.Insert(reservationTableName).
		Columns("room_id", "customer_name", "start_date", "end_date", "status").
		Values(roomID, req.CustomerName, req.StartDate, req.EndDate, model.StatusConfirmed).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return model.Reservation{}, errs.ErrRoomConflict
		}
		r.log.Error("CreateReservation", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *repository) GetReservation(ctx context.Context, id int) (model.Reservation, error) {
	q, args, err := qb.Select("reservation_id", "room_id", "customer_name", "start_date", "end_date", "status").
		From(reservationTableName).
		Where(sq.Eq{"reservation_id": id}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *repository) GetReservations(ctx context.Context) ([]model.Reservation, error) {
	q, args, err := qb.Select("reservation_id", "room_id", "customer_name", "start_date", "end_date", "status").
		From(reservationTableName).
		OrderBy("reservation_id asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Reservation
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteReservation hard-deletes and returns the removed snapshot.
func (r *repository) DeleteReservation(ctx context.Context, id int) (model.Reservation, error) {
	q := `delete from reservation where reservation_id = $1 returning *`

	var res model.Reservation
	if err := r.db.GetContext(ctx, &res, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		r.log.Error("DeleteReservation", zap.Int("id", id), zap.Error(err))
		return model.Reservation{}, err
	}
	return res, nil
}
