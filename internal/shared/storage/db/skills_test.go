package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestEnsureSkillReturnsCatalogID(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO skills").
		WithArgs("Go", "Backend").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("skill-1"))
	mock.ExpectCommit()

	tx, err := sqlDB.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("BeginTx: %v", err)
	}
	id, err := EnsureSkill(context.Background(), tx, " Go ", "Backend")
	if err != nil {
		t.Fatalf("EnsureSkill: %v", err)
	}
	if id != "skill-1" {
		t.Fatalf("expected skill-1, got %q", id)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestEnsureSkillRejectsEmptyName(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	mock.ExpectBegin()
	tx, err := sqlDB.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("BeginTx: %v", err)
	}
	if _, err := EnsureSkill(context.Background(), tx, "  ", ""); !errors.Is(err, ErrEmptySkillName) {
		t.Fatalf("expected ErrEmptySkillName, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
