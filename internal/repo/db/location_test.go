package db

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/JMURv/attendance-guard/internal/dto"
	"github.com/JMURv/attendance-guard/internal/geo"
	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/JMURv/attendance-guard/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var locationCols = []string{"id", "name", "address", "latitude", "longitude", "radius", "is_active", "created_at"}

func testLocation() md.Location {
	return md.Location{
		ID:        uuid.New(),
		Name:      "HQ",
		Address:   "Main st. 1",
		Latitude:  -6.2,
		Longitude: 106.8,
		Radius:    100,
		IsActive:  true,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func locationRow(rows *sqlmock.Rows, l md.Location) *sqlmock.Rows {
	return rows.AddRow(l.ID.String(), l.Name, l.Address, l.Latitude, l.Longitude, l.Radius, l.IsActive, l.CreatedAt)
}

func TestRepository_GetLocation(t *testing.T) {
	r, mock, closeFn := newMockRepo(t)
	defer closeFn()

	l := testLocation()

	mock.ExpectQuery(regexp.QuoteMeta(getLocation)).
		WithArgs(l.ID).
		WillReturnRows(locationRow(sqlmock.NewRows(locationCols), l))

	res, err := r.GetLocation(context.Background(), l.ID)
	assert.NoError(t, err)
	assert.Equal(t, &l, res)

	mock.ExpectQuery(regexp.QuoteMeta(getLocation)).
		WithArgs(l.ID).
		WillReturnError(sql.ErrNoRows)

	res, err = r.GetLocation(context.Background(), l.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.Nil(t, res)

	mock.ExpectQuery(regexp.QuoteMeta(getLocation)).
		WithArgs(l.ID).
		WillReturnError(errors.New("database error"))

	_, err = r.GetLocation(context.Background(), l.ID)
	assert.EqualError(t, err, "database error")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildLocationListQuery(t *testing.T) {
	tests := []struct {
		name     string
		filters  map[string]any
		contains []string
		args     []any
	}{
		{
			name:     "NoFilters",
			filters:  map[string]any{},
			contains: []string{"FROM locations l", "ORDER BY l.name"},
			args:     nil,
		},
		{
			name:     "ActiveOnly",
			filters:  map[string]any{repo.FilterIsActive: true},
			contains: []string{"WHERE l.is_active = $1"},
			args:     []any{true},
		},
		{
			name: "ActiveWithinBox",
			filters: map[string]any{
				repo.FilterIsActive: true,
				repo.FilterBox:      geo.Box{MinLat: 1, MaxLat: 2, MinLng: 3, MaxLng: 4},
			},
			contains: []string{
				"l.is_active = $1",
				"l.latitude >= $2",
				"l.latitude <= $3",
				"l.longitude >= $4",
				"l.longitude <= $5",
			},
			args: []any{true, 1.0, 2.0, 3.0, 4.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, args, err := buildLocationListQuery(context.Background(), tt.filters)
			require.NoError(t, err)
			for _, c := range tt.contains {
				assert.Contains(t, q, c)
			}
			assert.Equal(t, len(tt.args), len(args))
			if tt.args != nil {
				assert.Equal(t, tt.args, args)
			}
		})
	}
}

func TestRepository_ListLocations(t *testing.T) {
	r, mock, closeFn := newMockRepo(t)
	defer closeFn()

	l1, l2 := testLocation(), testLocation()
	l2.Name = "Warehouse"
	filters := map[string]any{repo.FilterIsActive: true}

	mock.ExpectQuery(regexp.QuoteMeta("FROM locations l WHERE l.is_active = $1 ORDER BY l.name")).
		WithArgs(true).
		WillReturnRows(locationRow(locationRow(sqlmock.NewRows(locationCols), l1), l2))

	res, err := r.ListLocations(context.Background(), filters)
	assert.NoError(t, err)
	assert.Equal(t, []md.Location{l1, l2}, res)

	mock.ExpectQuery(regexp.QuoteMeta("FROM locations l")).
		WithArgs(true).
		WillReturnError(errors.New("database error"))

	res, err = r.ListLocations(context.Background(), filters)
	assert.EqualError(t, err, "database error")
	assert.Nil(t, res)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateLocation(t *testing.T) {
	r, mock, closeFn := newMockRepo(t)
	defer closeFn()

	req := &dto.CreateLocationRequest{
		Name:      "HQ",
		Address:   "Main st. 1",
		Latitude:  -6.2,
		Longitude: 106.8,
		Radius:    100,
	}
	id := uuid.New()

	tests := []struct {
		name        string
		mock        func()
		expected    uuid.UUID
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(createLocation)).
					WithArgs(req.Name, req.Address, req.Latitude, req.Longitude, req.Radius).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
			},
			expected: id,
		},
		{
			name: "AlreadyExists",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(createLocation)).
					WithArgs(req.Name, req.Address, req.Latitude, req.Longitude, req.Radius).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectedErr: repo.ErrAlreadyExists,
		},
		{
			name: "DatabaseError",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(createLocation)).
					WithArgs(req.Name, req.Address, req.Latitude, req.Longitude, req.Radius).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			res, err := r.CreateLocation(context.Background(), req)
			if tt.expectedErr != nil {
				if errors.Is(tt.expectedErr, repo.ErrAlreadyExists) {
					assert.ErrorIs(t, err, repo.ErrAlreadyExists)
				} else {
					assert.EqualError(t, err, tt.expectedErr.Error())
				}
				assert.Equal(t, uuid.Nil, res)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateAttendance(t *testing.T) {
	r, mock, closeFn := newMockRepo(t)
	defer closeFn()

	locID := uuid.New()
	lat, lng, dist := -6.2, 106.8, 12.5
	a := &md.Attendance{
		EmployeeID: uuid.New(),
		Type:       md.AttendanceCheckIn,
		DeviceID:   uuid.New(),
		LocationID: &locID,
		Latitude:   &lat,
		Longitude:  &lng,
		Distance:   &dist,
	}

	id := uuid.New()
	created := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(regexp.QuoteMeta(createAttendance)).
		WithArgs(a.EmployeeID, a.Type, a.DeviceID, sqlmock.AnyArg(), lat, lng, dist).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), created))

	require.NoError(t, r.CreateAttendance(context.Background(), a))
	assert.Equal(t, id, a.ID)
	assert.Equal(t, created, a.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(createAttendance)).
		WillReturnError(errors.New("database error"))
	assert.EqualError(t, r.CreateAttendance(context.Background(), a), "database error")

	assert.NoError(t, mock.ExpectationsWereMet())
}
