package db

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/JMURv/attendance-guard/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRepository_CreateMonitoringLog(t *testing.T) {
	r, mock, closeFn := newMockRepo(t)
	defer closeFn()

	l := &md.MonitoringLog{
		EmployeeID: uuid.New(),
		DeviceUUID: "0cc175b9c0f1b6a831c399e269772661",
		RiskScore:  45,
		RiskLevel:  md.RiskMedium,
		Flags:      []string{"Too many devices", "Unusual hours"},
		Action:     "TEMPORARY_APPROVAL",
	}

	tests := []struct {
		name        string
		flags       []string
		encoded     string
		mockErr     error
		expectedErr error
	}{
		{
			name:    "Success",
			flags:   l.Flags,
			encoded: `["Too many devices","Unusual hours"]`,
		},
		{
			name:    "NilFlags",
			flags:   nil,
			encoded: `[]`,
		},
		{
			name:        "DatabaseError",
			flags:       l.Flags,
			encoded:     `["Too many devices","Unusual hours"]`,
			mockErr:     errors.New("database error"),
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := *l
			entry.Flags = tt.flags

			exp := mock.ExpectExec(regexp.QuoteMeta(createMonitoringLog)).
				WithArgs(entry.EmployeeID, entry.DeviceUUID, entry.RiskScore, "MEDIUM", tt.encoded, entry.Action)
			if tt.mockErr != nil {
				exp.WillReturnError(tt.mockErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err := r.CreateMonitoringLog(context.Background(), &entry)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateSecurityIncident(t *testing.T) {
	r, mock, closeFn := newMockRepo(t)
	defer closeFn()

	i := &md.SecurityIncident{
		EmployeeID:       uuid.New(),
		Type:             "HIGH_RISK_DEVICE",
		Severity:         md.RiskHigh,
		RiskScore:        70,
		DeviceUUIDPrefix: "0cc175b9",
		IP:               "10.0.0.1",
		Flags:            []string{"Location anomaly: 200km"},
		ArchiveKey:       "incidents/key.json",
	}

	mock.ExpectExec(regexp.QuoteMeta(createSecurityIncident)).
		WithArgs(
			i.EmployeeID,
			i.Type,
			"HIGH",
			i.RiskScore,
			i.DeviceUUIDPrefix,
			i.IP,
			`["Location anomaly: 200km"]`,
			i.ArchiveKey,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))
	assert.NoError(t, r.CreateSecurityIncident(context.Background(), i))

	mock.ExpectExec(regexp.QuoteMeta(createSecurityIncident)).
		WillReturnError(errors.New("database error"))
	assert.EqualError(t, r.CreateSecurityIncident(context.Background(), i), "database error")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetManagerContact(t *testing.T) {
	r, mock, closeFn := newMockRepo(t)
	defer closeFn()

	employeeID := uuid.New()
	cols := []string{"employee_id", "employee_name", "manager_name", "manager_email"}

	tests := []struct {
		name        string
		mock        func()
		expected    *md.ManagerContact
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getManagerContact)).
					WithArgs(employeeID).
					WillReturnRows(
						sqlmock.NewRows(cols).
							AddRow(employeeID.String(), "John Doe", "Ann Boss", "boss@example.com"),
					)
			},
			expected: &md.ManagerContact{
				EmployeeID:   employeeID,
				EmployeeName: "John Doe",
				ManagerName:  "Ann Boss",
				ManagerEmail: "boss@example.com",
			},
		},
		{
			name: "NoManager",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getManagerContact)).
					WithArgs(employeeID).
					WillReturnError(sql.ErrNoRows)
			},
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "DatabaseError",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getManagerContact)).
					WithArgs(employeeID).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			res, err := r.GetManagerContact(context.Background(), employeeID)
			if tt.expectedErr != nil {
				if errors.Is(tt.expectedErr, repo.ErrNotFound) {
					assert.ErrorIs(t, err, repo.ErrNotFound)
				} else {
					assert.EqualError(t, err, tt.expectedErr.Error())
				}
				assert.Nil(t, res)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
