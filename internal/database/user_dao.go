package database

import (
	"context"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/medpoint/clinic-api/internal/model"
)

type UserDAO struct {
	Logger *slog.Logger
	*DB
}

func NewUserDAO(logger *slog.Logger, db *DB) *UserDAO {
	return &UserDAO{
		Logger: logger.With("dao", "user"),
		DB:     db,
	}
}

func (dao *UserDAO) Get(ctx context.Context, id model.ID) (model.User, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("users").
		Where(squirrel.Eq{"uuid": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var user model.User
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&user); err != nil {
		if IsNoRows(err) {
			return model.User{}, model.NewError("user", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.User{}, err
	}

	return user, nil
}

func (dao *UserDAO) GetByEmail(ctx context.Context, email string) (model.User, error) {
	logger := dao.Logger.With("query", "getByEmail")

	query, args, err := dao.Builder.
		Select("*").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var user model.User
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&user); err != nil {
		if IsNoRows(err) {
			return model.User{}, model.NewError("user", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.User{}, err
	}

	return user, nil
}

type InsertUserDTO struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

func (dao *UserDAO) Insert(ctx context.Context, dto InsertUserDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	id := uuid.NewString()

	query, args, err := dao.Builder.
		Insert("users").
		Columns("uuid", "first_name", "last_name", "email", "password_hash").
		Values(id, dto.FirstName, dto.LastName, dto.Email, dto.PasswordHash).
		Suffix("RETURNING uuid").
		ToSql()
	if err != nil {
		return "", err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var insertedID model.ID
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&insertedID); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			return "", model.NewError("user", model.ErrExists)
		}

		return "", err
	}

	logger.Debug("success query execute", "insertId", insertedID)

	return insertedID, nil
}
