package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/medpoint/clinic-api/internal/model"
)

// VisitDAO accesses visit rows. Cross-entity queries join on the parent
// patient and repeat the owner condition on both sides, so a visit can
// never surface through a patient the caller does not own.
type VisitDAO struct {
	Logger *slog.Logger
	*DB
}

func NewVisitDAO(logger *slog.Logger, db *DB) *VisitDAO {
	return &VisitDAO{
		Logger: logger.With("dao", "visit"),
		DB:     db,
	}
}

type FindVisitFilter struct {
	Search    *string
	StartDate *time.Time
	EndDate   *time.Time
}

func (f FindVisitFilter) apply(pred []squirrel.Sqlizer) []squirrel.Sqlizer {
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		pred = append(pred, squirrel.Or{
			squirrel.ILike{"p.name": pattern},
			squirrel.ILike{"p.id_number": pattern},
			squirrel.ILike{"v.diagnosis": pattern},
			squirrel.ILike{"v.medications": pattern},
		})
	}
	if f.StartDate != nil {
		pred = append(pred, squirrel.GtOrEq{"v.visit_date": *f.StartDate})
	}
	if f.EndDate != nil {
		pred = append(pred, squirrel.LtOrEq{"v.visit_date": *f.EndDate})
	}
	return pred
}

func (dao *VisitDAO) joined() squirrel.SelectBuilder {
	return dao.Builder.
		Select("v.*", "p.name AS patient_name", "p.id_number AS patient_id_number").
		From("visits AS v").
		Join("patients AS p ON p.uuid = v.patient_id AND p.created_by = v.created_by")
}

func (dao *VisitDAO) Find(ctx context.Context, owner model.ID, filter FindVisitFilter, opts FindOptions) ([]model.VisitWithPatient, error) {
	logger := dao.Logger.With("query", "find")

	pred := filter.apply([]squirrel.Sqlizer{squirrel.Eq{"v.created_by": owner}})

	builder := dao.joined()
	for _, p := range pred {
		builder = builder.Where(p)
	}

	query, args, err := builder.
		OrderBy("v.created_at DESC").
		Limit(uint64(opts.Limit)).
		Offset(uint64(opts.Offset)).
		ToSql()
	if err != nil {
		return []model.VisitWithPatient{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	visits := make([]model.VisitWithPatient, 0, opts.Limit)
	if err := dao.SelectContext(ctx, &visits, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.VisitWithPatient{}, err
	}

	return visits, nil
}

func (dao *VisitDAO) Count(ctx context.Context, owner model.ID, filter FindVisitFilter) (int, error) {
	logger := dao.Logger.With("query", "count")

	pred := filter.apply([]squirrel.Sqlizer{squirrel.Eq{"v.created_by": owner}})

	builder := dao.Builder.
		Select("COUNT(*)").
		From("visits AS v").
		Join("patients AS p ON p.uuid = v.patient_id AND p.created_by = v.created_by")
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

func (dao *VisitDAO) Get(ctx context.Context, owner, id model.ID) (model.VisitWithPatient, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.joined().
		Where(squirrel.Eq{"v.uuid": id}).
		Where(squirrel.Eq{"v.created_by": owner}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.VisitWithPatient{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var visit model.VisitWithPatient
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&visit); err != nil {
		if IsNoRows(err) {
			return model.VisitWithPatient{}, model.NewError("visit", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.VisitWithPatient{}, err
	}

	return visit, nil
}

// FindByPatient returns the full visit history of an owned patient,
// most recent visit first.
func (dao *VisitDAO) FindByPatient(ctx context.Context, owner, patient model.ID) ([]model.Visit, error) {
	logger := dao.Logger.With("query", "findByPatient")

	query, args, err := dao.Builder.
		Select("*").
		From("visits").
		Where(squirrel.Eq{"patient_id": patient}).
		Where(squirrel.Eq{"created_by": owner}).
		OrderBy("visit_date DESC").
		ToSql()
	if err != nil {
		return []model.Visit{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	visits := []model.Visit{}
	if err := dao.SelectContext(ctx, &visits, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.Visit{}, err
	}

	return visits, nil
}

type InsertVisitDTO struct {
	VisitDate   time.Time
	Diagnosis   string
	Medications string
	Notes       *string
}

// Insert records a visit under an already-verified parent patient. The
// visit inherits the caller as owner.
func (dao *VisitDAO) Insert(ctx context.Context, owner, patient model.ID, dto InsertVisitDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	id := uuid.NewString()

	query, args, err := dao.Builder.
		Insert("visits").
		Columns("uuid", "visit_date", "diagnosis", "medications", "notes", "patient_id", "created_by").
		Values(id, dto.VisitDate, dto.Diagnosis, dto.Medications, dto.Notes, patient, owner).
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

		return "", err
	}

	logger.Debug("success query execute", "insertId", insertedID)

	return insertedID, nil
}

type UpdateVisitDTO struct {
	VisitDate   time.Time
	Diagnosis   string
	Medications string
	Notes       *string
}

func (dao *VisitDAO) Update(ctx context.Context, owner, id model.ID, dto UpdateVisitDTO) error {
	logger := dao.Logger.With("query", "update")

	query, args, err := dao.Builder.
		Update("visits").
		SetMap(map[string]any{
			"visit_date":  dto.VisitDate,
			"diagnosis":   dto.Diagnosis,
			"medications": dto.Medications,
			"notes":       dto.Notes,
			"updated_at":  time.Now(),
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

		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.NewError("visit", model.ErrNotFound)
	}

	return nil
}

func (dao *VisitDAO) Delete(ctx context.Context, owner, id model.ID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("visits").
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
		return model.NewError("visit", model.ErrNotFound)
	}

	return nil
}
