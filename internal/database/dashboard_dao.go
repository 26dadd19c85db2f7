package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/medpoint/clinic-api/internal/model"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	_recentVisitsLimit = 5
	_weeklyBuckets     = 10
)

// DashboardDAO computes the per-owner summary aggregation.
type DashboardDAO struct {
	Logger *slog.Logger
	*DB
}

func NewDashboardDAO(logger *slog.Logger, db *DB) *DashboardDAO {
	return &DashboardDAO{
		Logger: logger.With("dao", "dashboard"),
		DB:     db,
	}
}

func (dao *DashboardDAO) Get(ctx context.Context, owner model.ID) (model.Dashboard, error) {
	var dashboard model.Dashboard
	var err error

	if dashboard.TotalPatients, err = dao.count(ctx, "patients", owner); err != nil {
		return model.Dashboard{}, err
	}
	if dashboard.TotalVisits, err = dao.count(ctx, "visits", owner); err != nil {
		return model.Dashboard{}, err
	}
	if dashboard.RecentVisits, err = dao.recentVisits(ctx, owner); err != nil {
		return model.Dashboard{}, err
	}
	if dashboard.WeeklyVisits, err = dao.weeklyVisits(ctx, owner); err != nil {
		return model.Dashboard{}, err
	}

	return dashboard, nil
}

func (dao *DashboardDAO) count(ctx context.Context, table string, owner model.ID) (int, error) {
	logger := dao.Logger.With("query", "count", "table", table)

	query, args, err := dao.Builder.
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"created_by": owner}).
		ToSql()
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

func (dao *DashboardDAO) recentVisits(ctx context.Context, owner model.ID) ([]model.VisitWithPatient, error) {
	logger := dao.Logger.With("query", "recentVisits")

	query, args, err := dao.Builder.
		Select("v.*", "p.name AS patient_name", "p.id_number AS patient_id_number").
		From("visits AS v").
		Join("patients AS p ON p.uuid = v.patient_id AND p.created_by = v.created_by").
		Where(squirrel.Eq{"v.created_by": owner}).
		OrderBy("v.created_at DESC").
		Limit(_recentVisitsLimit).
		ToSql()
	if err != nil {
		return []model.VisitWithPatient{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	visits := make([]model.VisitWithPatient, 0, _recentVisitsLimit)
	if err := dao.SelectContext(ctx, &visits, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.VisitWithPatient{}, err
	}

	return visits, nil
}

// weeklyVisits buckets visit counts by ISO week for the most recent 10
// weeks. Weeks with no visits are present with a zero count; the result
// is in ascending week order.
func (dao *DashboardDAO) weeklyVisits(ctx context.Context, owner model.ID) ([]model.WeeklyVisitCount, error) {
	logger := dao.Logger.With("query", "weeklyVisits")

	now := time.Now()
	// The window must cover the oldest bucket's whole ISO week, not just
	// the last 7*(_weeklyBuckets-1) days.
	windowStart := startOfISOWeek(now.AddDate(0, 0, -7*(_weeklyBuckets-1)))

	query, args, err := dao.Builder.
		Select("to_char(visit_date, 'IYYY-IW') AS week", "COUNT(*) AS count").
		From("visits").
		Where(squirrel.Eq{"created_by": owner}).
		Where(squirrel.GtOrEq{"visit_date": windowStart}).
		GroupBy("week").
		ToSql()
	if err != nil {
		return []model.WeeklyVisitCount{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	counted := []model.WeeklyVisitCount{}
	if err := dao.SelectContext(ctx, &counted, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.WeeklyVisitCount{}, err
	}

	buckets := make(map[string]int, _weeklyBuckets)
	for i := 0; i < _weeklyBuckets; i++ {
		buckets[isoWeekLabel(now.AddDate(0, 0, -7*i))] = 0
	}
	for _, wc := range counted {
		if _, ok := buckets[wc.Week]; ok {
			buckets[wc.Week] = wc.Count
		}
	}

	// The IYYY-IW label sorts lexicographically in week order.
	weeks := maps.Keys(buckets)
	slices.Sort(weeks)

	result := make([]model.WeeklyVisitCount, 0, len(weeks))
	for _, week := range weeks {
		result = append(result, model.WeeklyVisitCount{Week: week, Count: buckets[week]})
	}

	return result, nil
}

func isoWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-%02d", year, week)
}

// startOfISOWeek returns midnight on the Monday of t's ISO week.
func startOfISOWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, 1-weekday)
}
