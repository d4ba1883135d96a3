package seats

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func seatRow(seatID, routeID uuid.UUID, status Status) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "route_id", "carriage_number", "seat_number", "class", "status"}).
		AddRow(seatID.String(), routeID.String(), 1, 1, "LUX", string(status))
}

func TestReserveSeatTx_LocksRowAndReserves(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	seatID := uuid.New()
	routeID := uuid.New()

	mock.ExpectBegin()
	tx := db.Begin()

	// The SELECT must carry FOR UPDATE: the FREE check and the flip are
	// only atomic while the row is locked
	mock.ExpectQuery(`SELECT \* FROM "seats" WHERE id = .+ FOR UPDATE`).
		WillReturnRows(seatRow(seatID, routeID, StatusFree))
	mock.ExpectExec(`UPDATE "seats" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	seat, err := repo.ReserveSeatTx(tx, seatID)

	assert.NoError(t, err)
	assert.Equal(t, StatusReserved, seat.Status)
	assert.Equal(t, routeID, seat.RouteID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSeatTx_RejectsNonFreeSeat(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	seatID := uuid.New()

	mock.ExpectBegin()
	tx := db.Begin()

	mock.ExpectQuery(`SELECT \* FROM "seats" WHERE id = .+ FOR UPDATE`).
		WillReturnRows(seatRow(seatID, uuid.New(), StatusReserved))

	_, err := repo.ReserveSeatTx(tx, seatID)

	assert.ErrorIs(t, err, ErrSeatUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSeatTx_LostRaceOnFlip(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	seatID := uuid.New()

	mock.ExpectBegin()
	tx := db.Begin()

	// Seat reads FREE but another transaction claims it before the flip
	// lands; zero affected rows means the reservation lost
	mock.ExpectQuery(`SELECT \* FROM "seats" WHERE id = .+ FOR UPDATE`).
		WillReturnRows(seatRow(seatID, uuid.New(), StatusFree))
	mock.ExpectExec(`UPDATE "seats" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.ReserveSeatTx(tx, seatID)

	assert.ErrorIs(t, err, ErrSeatUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSeatTx_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	tx := db.Begin()

	mock.ExpectQuery(`SELECT \* FROM "seats" WHERE id = .+ FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.ReserveSeatTx(tx, uuid.New())

	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestReleaseSeatTx_IdempotentOnFreeSeat(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	tx := db.Begin()

	// Releasing an already-free seat touches zero rows and still succeeds
	mock.ExpectExec(`UPDATE "seats" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReleaseSeatTx(tx, uuid.New())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvisionSeatsTx_RejectsNonPositiveCount(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.ProvisionSeatsTx(nil, uuid.New(), 0)
	assert.ErrorIs(t, err, ErrInvalidSeatCount)

	_, err = repo.ProvisionSeatsTx(nil, uuid.New(), -5)
	assert.ErrorIs(t, err, ErrInvalidSeatCount)
}
