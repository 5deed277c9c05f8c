package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsalud/agenda-api/internal/models"
)

func newEventRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

var eventRowColumns = []string{
	"id", "title", "type", "start_at", "end_at", "status", "color", "staff_id", "branch_id",
	"patient_id", "staff_schedule_id", "is_active", "is_cancelled", "is_base_event",
	"cancellation_reason", "exception_dates", "staff_name", "staff_last_name", "branch_name",
	"created_at", "updated_at",
}

func addEventRow(rows *sqlmock.Rows, id string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, "Turno mañana", "TURNO", now, now.Add(8*time.Hour), "CONFIRMED", "#0ea5e9",
		"staff-1", "branch-1", nil, nil, true, false, true, nil, "{}", "Ana", "García", "Sede Centro", now, now)
}

func TestEventRepositoryListFilters(t *testing.T) {
	db, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	rows := addEventRow(sqlmock.NewRows(eventRowColumns), "evt-1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT e.id, e.title, e.type")).
		WithArgs("TURNO", "staff-1", "CONFIRMED", "2025-02-22", "2025-04-07").
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("TURNO", "staff-1", "CONFIRMED", "2025-02-22", "2025-04-07").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	events, total, err := repo.List(context.Background(), models.EventFilter{
		Type:      models.EventTypeTurno,
		StaffID:   "staff-1",
		Status:    models.EventStatusConfirmed,
		StartDate: "2025-02-22",
		EndDate:   "2025-04-07",
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "evt-1", events[0].ID)
	assert.Equal(t, "Ana", events[0].StaffName)
	assert.Equal(t, 1, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListDisablePagination(t *testing.T) {
	db, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	mock.ExpectQuery(`ORDER BY e\.start_at ASC$`).
		WithArgs("CITA").
		WillReturnRows(sqlmock.NewRows(eventRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("CITA").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, _, err := repo.List(context.Background(), models.EventFilter{
		Type:              models.EventTypeCita,
		DisablePagination: true,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO events")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	event := &models.Event{
		Title:    "Consulta",
		Type:     models.EventTypeCita,
		Start:    time.Now(),
		End:      time.Now().Add(time.Hour),
		Status:   models.EventStatusPending,
		StaffID:  "staff-1",
		BranchID: "branch-1",
		IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), event))
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryBulkCreateTransaction(t *testing.T) {
	db, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO events")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO events")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	events := []models.Event{
		{Title: "Turno 1", Type: models.EventTypeTurno, Start: time.Now(), End: time.Now().Add(8 * time.Hour)},
		{Title: "Turno 2", Type: models.EventTypeTurno, Start: time.Now().AddDate(0, 0, 1), End: time.Now().AddDate(0, 0, 1).Add(8 * time.Hour)},
	}
	require.NoError(t, repo.BulkCreate(context.Background(), events))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositorySetActive(t *testing.T) {
	db, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE events SET is_active")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	affected, err := repo.SetActive(context.Background(), []string{"evt-1", "evt-2"}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositorySetActiveEmptyIDs(t *testing.T) {
	db, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	affected, err := repo.SetActive(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Zero(t, affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryDeleteGeneratedKeepsBase(t *testing.T) {
	db, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE staff_schedule_id = $1 AND is_base_event = FALSE")).
		WithArgs("sched-1").
		WillReturnResult(sqlmock.NewResult(0, 5))

	affected, err := repo.DeleteGenerated(context.Background(), "sched-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryDeleteBySchedule(t *testing.T) {
	db, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE staff_schedule_id = $1")).
		WithArgs("sched-1").
		WillReturnResult(sqlmock.NewResult(0, 6))

	affected, err := repo.DeleteBySchedule(context.Background(), "sched-1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}
