package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/medpoint/clinic-api/internal/model"
)

func visitColumns() []string {
	return []string{"uuid", "created_at", "updated_at", "visit_date", "diagnosis", "medications", "notes", "patient_id", "created_by", "patient_name", "patient_id_number"}
}

func addVisitRow(rows *sqlmock.Rows, id, patient, owner string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, now, now, now, "flu", "paracetamol", nil, patient, owner, "John Doe", "ID-001")
}

func TestVisitDAO_Find(t *testing.T) {
	t.Run("joins parent and filters by owner", func(t *testing.T) {
		db, mock := newTestDB(t)
		dao := NewVisitDAO(testLogger(), db)

		rows := sqlmock.NewRows(visitColumns())
		addVisitRow(rows, "vvvv", "aaaa", ownerA)

		mock.ExpectQuery(`SELECT v\.\*, p\.name AS patient_name, p\.id_number AS patient_id_number FROM visits AS v JOIN patients AS p ON p\.uuid = v\.patient_id AND p\.created_by = v\.created_by WHERE v\.created_by = \$1 ORDER BY v\.created_at DESC LIMIT 10 OFFSET 0`).
			WithArgs(ownerA).
			WillReturnRows(rows)

		visits, err := dao.Find(context.Background(), ownerA, FindVisitFilter{}, FindOptions{Limit: 10})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(visits) != 1 {
			t.Fatalf("len(visits) = %d, want 1", len(visits))
		}
		if visits[0].PatientName != "John Doe" {
			t.Errorf("PatientName = %q, want %q", visits[0].PatientName, "John Doe")
		}

		expectationsMet(t, mock)
	})

	t.Run("search spans patient and visit columns", func(t *testing.T) {
		db, mock := newTestDB(t)
		dao := NewVisitDAO(testLogger(), db)

		search := "flu"
		mock.ExpectQuery(`WHERE v\.created_by = \$1 AND \(p\.name ILIKE \$2 OR p\.id_number ILIKE \$3 OR v\.diagnosis ILIKE \$4 OR v\.medications ILIKE \$5\)`).
			WithArgs(ownerA, "%flu%", "%flu%", "%flu%", "%flu%").
			WillReturnRows(sqlmock.NewRows(visitColumns()))

		_, err := dao.Find(context.Background(), ownerA, FindVisitFilter{Search: &search}, FindOptions{Limit: 10})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}

		expectationsMet(t, mock)
	})

	t.Run("date range bounds visit_date", func(t *testing.T) {
		db, mock := newTestDB(t)
		dao := NewVisitDAO(testLogger(), db)

		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`WHERE v\.created_by = \$1 AND v\.visit_date >= \$2 AND v\.visit_date <= \$3`).
			WithArgs(ownerA, start, end).
			WillReturnRows(sqlmock.NewRows(visitColumns()))

		_, err := dao.Find(context.Background(), ownerA, FindVisitFilter{StartDate: &start, EndDate: &end}, FindOptions{Limit: 10})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}

		expectationsMet(t, mock)
	})
}

func TestVisitDAO_Get(t *testing.T) {
	t.Run("other owner is not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		dao := NewVisitDAO(testLogger(), db)

		mock.ExpectQuery(`WHERE v\.uuid = \$1 AND v\.created_by = \$2 LIMIT 1`).
			WithArgs("vvvv", ownerB).
			WillReturnRows(sqlmock.NewRows(visitColumns()))

		_, err := dao.Get(context.Background(), ownerB, "vvvv")
		if !errors.Is(err, model.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}

		expectationsMet(t, mock)
	})
}

func TestVisitDAO_FindByPatient(t *testing.T) {
	db, mock := newTestDB(t)
	dao := NewVisitDAO(testLogger(), db)

	mock.ExpectQuery(`SELECT \* FROM visits WHERE patient_id = \$1 AND created_by = \$2 ORDER BY visit_date DESC`).
		WithArgs("aaaa", ownerA).
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "created_at", "updated_at", "visit_date", "diagnosis", "medications", "notes", "patient_id", "created_by"}))

	visits, err := dao.FindByPatient(context.Background(), ownerA, "aaaa")
	if err != nil {
		t.Fatalf("FindByPatient() error = %v", err)
	}
	if visits == nil {
		t.Error("history must be an empty slice, not nil")
	}

	expectationsMet(t, mock)
}

func TestVisitDAO_Insert(t *testing.T) {
	db, mock := newTestDB(t)
	dao := NewVisitDAO(testLogger(), db)

	mock.ExpectQuery(`INSERT INTO visits \(uuid,visit_date,diagnosis,medications,notes,patient_id,created_by\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\) RETURNING uuid`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "flu", "paracetamol", nil, "aaaa", ownerA).
		WillReturnRows(sqlmock.NewRows([]string{"uuid"}).AddRow("new-visit"))

	id, err := dao.Insert(context.Background(), ownerA, "aaaa", InsertVisitDTO{
		VisitDate:   time.Now(),
		Diagnosis:   "flu",
		Medications: "paracetamol",
	})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if id != "new-visit" {
		t.Errorf("id = %q, want %q", id, "new-visit")
	}

	expectationsMet(t, mock)
}

func TestVisitDAO_UpdateDelete(t *testing.T) {
	t.Run("update zero rows is not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		dao := NewVisitDAO(testLogger(), db)

		mock.ExpectExec(`UPDATE visits SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := dao.Update(context.Background(), ownerB, "vvvv", UpdateVisitDTO{Diagnosis: "flu"})
		if !errors.Is(err, model.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}

		expectationsMet(t, mock)
	})

	t.Run("delete zero rows is not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		dao := NewVisitDAO(testLogger(), db)

		mock.ExpectExec(`DELETE FROM visits WHERE uuid = \$1 AND created_by = \$2`).
			WithArgs("vvvv", ownerB).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := dao.Delete(context.Background(), ownerB, "vvvv")
		if !errors.Is(err, model.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}

		expectationsMet(t, mock)
	})
}
