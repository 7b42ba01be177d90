package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, AppointmentRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return mock, NewAppointmentRepository(gdb)
}

func TestGetAppointments_Success(t *testing.T) {
	mock, repo := setupMockDB(t)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "date", "phone", "status", "answer1"}).
		AddRow(id.String(), uuid.New().String(), time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), "0900", "PENDING", "yes")

	mock.ExpectQuery(`SELECT \* FROM "appointments"`).WillReturnRows(rows)

	appointments, err := repo.GetAppointments(context.Background())

	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, id, appointments[0].ID)
	assert.Equal(t, "PENDING", appointments[0].Status)
	assert.Equal(t, "yes", appointments[0].Answers()[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAppointmentByID_NotFound(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	appointment, err := repo.GetAppointmentByID(context.Background(), uuid.NewString())

	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppointmentStatus_Success(t *testing.T) {
	mock, repo := setupMockDB(t)
	id := uuid.NewString()

	mock.ExpectExec(`UPDATE "appointments" SET "status"`).
		WithArgs("APPROVED", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateAppointmentStatus(context.Background(), id, "APPROVED"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppointmentStatus_NoRows(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(`UPDATE "appointments"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAppointmentStatus(context.Background(), uuid.NewString(), "APPROVED")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateAppointmentStatus_DBError(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(`UPDATE "appointments"`).
		WillReturnError(errors.New("connection reset"))

	err := repo.UpdateAppointmentStatus(context.Background(), uuid.NewString(), "APPROVED")
	assert.EqualError(t, err, "connection reset")
}
