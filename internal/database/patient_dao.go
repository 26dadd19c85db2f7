package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/medpoint/clinic-api/internal/model"
)

// PatientDAO accesses patient rows. Every query is conditioned on the
// owner passed in; a patient belonging to another owner is
// indistinguishable from one that does not exist.
type PatientDAO struct {
	Logger *slog.Logger
	*DB
}

func NewPatientDAO(logger *slog.Logger, db *DB) *PatientDAO {
	return &PatientDAO{
		Logger: logger.With("dao", "patient"),
		DB:     db,
	}
}

type FindPatientFilter struct {
	Search *string
}

func (f FindPatientFilter) apply(pred []squirrel.Sqlizer) []squirrel.Sqlizer {
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		pred = append(pred, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"id_number": pattern},
		})
	}
	return pred
}

func (dao *PatientDAO) Find(ctx context.Context, owner model.ID, filter FindPatientFilter, opts FindOptions) ([]model.Patient, error) {
	logger := dao.Logger.With("query", "find")

	pred := filter.apply([]squirrel.Sqlizer{squirrel.Eq{"created_by": owner}})

	builder := dao.Builder.
		Select("*").
		From("patients")
	for _, p := range pred {
		builder = builder.Where(p)
	}

	query, args, err := builder.
		OrderBy("created_at DESC").
		Limit(uint64(opts.Limit)).
		Offset(uint64(opts.Offset)).
		ToSql()
	if err != nil {
		return []model.Patient{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	patients := make([]model.Patient, 0, opts.Limit)
	if err := dao.SelectContext(ctx, &patients, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.Patient{}, err
	}

	return patients, nil
}

// Count returns the number of rows matching the filter, independent of
// the page window.
func (dao *PatientDAO) Count(ctx context.Context, owner model.ID, filter FindPatientFilter) (int, error) {
	logger := dao.Logger.With("query", "count")

	pred := filter.apply([]squirrel.Sqlizer{squirrel.Eq{"created_by": owner}})

	builder := dao.Builder.
		Select("COUNT(*)").
		From("patients")
	for _, p := range pred {
		builder = builder.Where(p)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var total int
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&total); err != nil {
		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	return total, nil
}

func (dao *PatientDAO) Get(ctx context.Context, owner, id model.ID) (model.Patient, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("patients").
		Where(squirrel.Eq{"uuid": id}).
		Where(squirrel.Eq{"created_by": owner}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Patient{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var patient model.Patient
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&patient); err != nil {
		if IsNoRows(err) {
			return model.Patient{}, model.NewError("patient", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Patient{}, err
	}

	return patient, nil
}

// Exists reports whether a patient row exists under the given owner.
func (dao *PatientDAO) Exists(ctx context.Context, owner, id model.ID) (bool, error) {
	logger := dao.Logger.With("query", "exists")

	query, args, err := dao.Builder.
		Select("1").
		From("patients").
		Where(squirrel.Eq{"uuid": id}).
		Where(squirrel.Eq{"created_by": owner}).
		ToSql()
	if err != nil {
		return false, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var exists int
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&exists); err != nil {
		if IsNoRows(err) {
			return false, nil
		}

		logger.Warn("failed query execute", "error", err)

		return false, err
	}

	return true, nil
}

type InsertPatientDTO struct {
	Name        string
	IDNumber    string
	Gender      string
	Contact     string
	DateOfBirth time.Time
}

func (dao *PatientDAO) Insert(ctx context.Context, owner model.ID, dto InsertPatientDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	id := uuid.NewString()

	query, args, err := dao.Builder.
		Insert("patients").
		Columns("uuid", "name", "id_number", "gender", "contact", "date_of_birth", "created_by").
		Values(id, dto.Name, dto.IDNumber, dto.Gender, dto.Contact, dto.DateOfBirth, owner).
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
			return "", model.NewError("patient", model.ErrExists)
		}

		return "", err
	}

	logger.Debug("success query execute", "insertId", insertedID)

	return insertedID, nil
}

type UpdatePatientDTO struct {
	Name        string
	IDNumber    string
	Gender      string
	Contact     string
	DateOfBirth time.Time
}

// Update applies the change in a single conditional statement. Zero
// affected rows means the target does not exist under this owner.
func (dao *PatientDAO) Update(ctx context.Context, owner, id model.ID, dto UpdatePatientDTO) error {
	logger := dao.Logger.With("query", "update")

	query, args, err := dao.Builder.
		Update("patients").
		SetMap(map[string]any{
			"name":          dto.Name,
			"id_number":     dto.IDNumber,
			"gender":        dto.Gender,
			"contact":       dto.Contact,
			"date_of_birth": dto.DateOfBirth,
			"updated_at":    time.Now(),
		}).
		Where(squirrel.Eq{"uuid": id}).
		Where(squirrel.Eq{"created_by": owner}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	result, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			return model.NewError("patient", model.ErrExists)
		}

		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.NewError("patient", model.ErrNotFound)
	}

	return nil
}

// Delete removes the row in a single conditional statement, same
// contract as Update.
func (dao *PatientDAO) Delete(ctx context.Context, owner, id model.ID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("patients").
		Where(squirrel.Eq{"uuid": id}).
		Where(squirrel.Eq{"created_by": owner}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	result, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.NewError("patient", model.ErrNotFound)
	}

	return nil
}
