package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/hotelio/hotel-service/inventory/internal/errs"
	"github.com/hotelio/hotel-service/inventory/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateRoom(ctx context.Context, req model.CreateRoomRequest) (model.Room, error)
	GetRoom(ctx context.Context, id int) (model.Room, error)
	ListRooms(ctx context.Context) ([]model.Room, error)
	UpdateRoomStatus(ctx context.Context, id int, status model.Status) (model.Room, error)
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
	roomTableName = `rooms`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) CreateRoom(ctx context.Context, req model.CreateRoomRequest) (model.Room, error) {
	status := req.Status
	if status == "" {
		status = model.StatusAvailable
	}
	q, args, err := qb.Insert(roomTableName).
		Columns("room_number", "room_type", "status").
		Values(req.RoomNumber, req.RoomType, status).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Room{}, err
	}

	var room model.Room
	if err := r.db.GetContext(ctx, &room, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Room{}, errs.ErrRoomExists
		}
		r.log.Error("CreateRoom", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.Room{}, err
	}
	return room, nil
}

func (r *repository) GetRoom(ctx context.Context, id int) (model.Room, error) {
	q, args, err := qb.Select("room_id", "room_number", "room_type", "status").
		From(roomTableName).
		Where(sq.Eq{"room_id": id}).
		ToSql()
	if err != nil {
		return model.Room{}, err
	}

	var room model.Room
	if err := r.db.GetContext(ctx, &room, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Room{}, errs.ErrNotFound
		}
		return model.Room{}, err
	}
	return room, nil
}

func (r *repository) ListRooms(ctx context.Context) ([]model.Room, error) {
	q, args, err := qb.Select("room_id", "room_number", "room_type", "status").
		From(roomTableName).
		OrderBy("room_id asc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rooms []model.Room
	if err := r.db.SelectContext(ctx, &rooms, q, args...); err != nil {
		r.log.Error("ListRooms", zap.String("q", q), zap.Error(err))
		return nil, err
	}
	return rooms, nil
}

func (r *repository) UpdateRoomStatus(ctx context.Context, id int, status model.Status) (model.Room, error) {
	q, args, err := qb.Update(roomTableName).
		Set("status", status).
		Where(sq.Eq{"room_id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Room{}, err
	}

	var room model.Room
	if err := r.db.GetContext(ctx, &room, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Room{}, errs.ErrNotFound
		}
		r.log.Error("UpdateRoomStatus", zap.Int("room_id", id), zap.Error(err))
		return model.Room{}, err
	}
	return room, nil
}
