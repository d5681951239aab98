package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvledder/inspecto/apperr"
	"github.com/rvledder/inspecto/model"
)

func validProperty() model.CreatePropertyRequest {
	return model.CreatePropertyRequest{
		Name:       "P1",
		Street:     "Main",
		Number:     "1",
		City:       "X",
		PostalCode: "00000",
	}
}

func TestPropertyList(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPropertyService(db)

	now := time.Now()
	mock.ExpectQuery(quote("FROM objects o")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "street", "number", "city", "postal_code", "created_at", "inspection_count"}).
			AddRow(2, "P2", "Side", "4b", "Y", "11111", now, 0).
			AddRow(1, "P1", "Main", "1", "X", "00000", now.Add(-time.Hour), 3))

	properties, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 2)
	assert.Equal(t, 0, properties[0].InspectionCount)
	assert.Equal(t, 3, properties[1].InspectionCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyCreate(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPropertyService(db)

	now := time.Now()
	mock.ExpectQuery(quote("INSERT INTO objects (name, street, number, city, postal_code)")).
		WithArgs("P1", "Main", "1", "X", "00000").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(quote("SELECT id, name, street, number, city, postal_code, created_at FROM objects WHERE id = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "street", "number", "city", "postal_code", "created_at"}).
			AddRow(3, "P1", "Main", "1", "X", "00000", now))

	property, err := s.Create(context.Background(), validProperty())
	require.NoError(t, err)
	assert.Equal(t, int64(3), property.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyCreateValidation(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPropertyService(db)

	req := validProperty()
	req.City = "  "

	_, err := s.Create(context.Background(), req)
	assert.EqualError(t, err, "city is required")
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPropertyService(db)

	now := time.Now()
	mock.ExpectExec(quote("UPDATE objects")).
		WithArgs("P1", "Main", "1", "X", "00000", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(quote("FROM objects WHERE id = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "street", "number", "city", "postal_code", "created_at"}).
			AddRow(3, "P1", "Main", "1", "X", "00000", now))

	property, err := s.Update(context.Background(), model.UpdatePropertyRequest{
		ID:                    "3",
		CreatePropertyRequest: validProperty(),
	})
	require.NoError(t, err)
	assert.Equal(t, "P1", property.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPropertyService(db)

	mock.ExpectExec(quote("UPDATE objects")).
		WithArgs("P1", "Main", "1", "X", "00000", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := s.Update(context.Background(), model.UpdatePropertyRequest{
		ID:                    "99",
		CreatePropertyRequest: validProperty(),
	})
	assert.EqualError(t, err, "Object not found")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyDeleteGuardedByInspections(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPropertyService(db)

	mock.ExpectQuery(quote("SELECT 1 FROM objects WHERE id = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery(quote("SELECT COUNT(*) FROM inspections WHERE object_id = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := s.Delete(context.Background(), "3")
	assert.EqualError(t, err, "Cannot delete object that is used in inspections")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyDelete(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPropertyService(db)

	mock.ExpectQuery(quote("SELECT 1 FROM objects WHERE id = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery(quote("SELECT COUNT(*) FROM inspections WHERE object_id = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(quote("DELETE FROM objects WHERE id = ?")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Delete(context.Background(), "3")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
