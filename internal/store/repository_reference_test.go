package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gserrano-dev/portfolio-api/internal/logger"
)

func newTestReferenceRepo(t *testing.T) (*referenceRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &referenceRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var referenceColumns = []string{"id", "nombre", "titulo", "correo", "carta", "fecha", "fecha_formateada"}

func TestReferenceList_Success(t *testing.T) {
	repo, mock, db := newTestReferenceRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(referenceColumns).
		AddRow(2, "Laura", "CTO", "laura@example.com", "Gran profesional.", now, "01/02/2026 10:00").
		AddRow(1, "Pedro", "Tech Lead", "pedro@example.com", "Muy recomendable.", now.Add(-time.Hour), "01/02/2026 09:00")

	mock.ExpectQuery("SELECT .* FROM referencias ORDER BY fecha DESC").
		WillReturnRows(rows)

	references, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(references) != 2 {
		t.Fatalf("expected 2 references, got %d", len(references))
	}
	if references[0].Nombre != "Laura" {
		t.Errorf("expected newest reference first, got %s", references[0].Nombre)
	}
}

func TestReferenceList_Empty(t *testing.T) {
	repo, mock, db := newTestReferenceRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM referencias").
		WillReturnRows(sqlmock.NewRows(referenceColumns))

	references, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if references == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(references) != 0 {
		t.Errorf("expected no references, got %d", len(references))
	}
}

func TestReferenceList_QueryError(t *testing.T) {
	repo, mock, db := newTestReferenceRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM referencias").
		WillReturnError(errors.New("db network error"))

	_, err := repo.List(context.Background())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestReferenceGetByID_Success(t *testing.T) {
	repo, mock, db := newTestReferenceRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(referenceColumns).
		AddRow(1, "Laura", "CTO", "laura@example.com", "Gran profesional.", time.Now(), "01/02/2026 10:00")

	mock.ExpectQuery("SELECT id, nombre, titulo").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	ref, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Titulo != "CTO" {
		t.Errorf("expected titulo=CTO, got %s", ref.Titulo)
	}
}

func TestReferenceGetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestReferenceRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, nombre, titulo").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(referenceColumns))

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
}

func TestReferenceCreate_Success(t *testing.T) {
	repo, mock, db := newTestReferenceRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(referenceColumns).
		AddRow(9, "Laura", "CTO", "laura@example.com", "Gran profesional.", time.Now(), "01/02/2026 10:00")

	mock.ExpectQuery("INSERT INTO referencias").
		WithArgs("Laura", "CTO", "laura@example.com", "Gran profesional.").
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), "Laura", "CTO", "laura@example.com", "Gran profesional.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 9 {
		t.Errorf("expected id=9, got %d", created.ID)
	}
	if created.FechaFormateada == "" {
		t.Error("expected formatted fecha from the database")
	}
}

func TestReferenceCreate_DBError(t *testing.T) {
	repo, mock, db := newTestReferenceRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO referencias").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(context.Background(), "Laura", "CTO", "laura@example.com", "Gran profesional.")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
