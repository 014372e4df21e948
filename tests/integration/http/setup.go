// Package http runs the HTTP surface against real Postgres, Redis and MinIO.
// It is skipped unless INTEGRATION_ENV points to an env file describing
// running services.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JMURv/attendance-guard/internal/auth/jwt"
	"github.com/JMURv/attendance-guard/internal/cache/redis"
	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/JMURv/attendance-guard/internal/ctrl"
	hdl "github.com/JMURv/attendance-guard/internal/hdl/http"
	"github.com/JMURv/attendance-guard/internal/notify"
	"github.com/JMURv/attendance-guard/internal/repo/db"
	"github.com/JMURv/attendance-guard/internal/repo/s3"
	"github.com/JMURv/attendance-guard/internal/smtp"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const getTables = `
SELECT tablename
FROM pg_tables
WHERE schemaname = 'public' AND tablename <> 'schema_migrations';
`

const createEmployee = `INSERT INTO employees (name, email, manager_id) VALUES ($1, $2, $3) RETURNING id`

var rootDir = filepath.Join("..", "..", "..")

type testEnv struct {
	ts    *httptest.Server
	conn  *sql.DB
	au    *jwt.Core
	close func(t *testing.T)
}

func setupTestServer(t *testing.T) *testEnv {
	envPath := os.Getenv("INTEGRATION_ENV")
	if envPath == "" {
		t.Skip("INTEGRATION_ENV is not set")
	}

	zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	conf := config.MustLoad(envPath)

	_ = os.Setenv(
		"MIGRATIONS_PATH", filepath.ToSlash(
			filepath.Join(rootDir, "internal", "repo", "db", "migration"),
		),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cache := redis.New(conf)
	repo := db.New(conf)
	worker := notify.New(conf.Notify, repo, smtp.New(conf))
	worker.Start(ctx)

	au := jwt.New(conf)
	h := hdl.New(au, ctrl.New(repo, cache, worker, s3.New(conf), conf.Risk))
	ts := httptest.NewServer(h.Router())

	conn, err := sql.Open(
		"pgx", fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=disable",
			conf.DB.User,
			conf.DB.Password,
			conf.DB.Host,
			conf.DB.Port,
			conf.DB.Database,
		),
	)
	if err != nil {
		t.Fatalf("failed to connect to the database: %v", err)
	}

	return &testEnv{
		ts:   ts,
		conn: conn,
		au:   au,
		close: func(t *testing.T) {
			ts.Close()
			truncate(t, conn)
			cache.InvalidateKeysByPattern(context.Background(), "location*")

			if err := worker.Close(context.Background()); err != nil {
				t.Logf("failed to close worker: %v", err)
			}
			cancel()

			_ = cache.Close()
			_ = repo.Close(context.Background())
			_ = conn.Close()
		},
	}
}

func truncate(t *testing.T, conn *sql.DB) {
	rows, err := conn.Query(getTables)
	if err != nil {
		t.Fatalf("failed to fetch table names: %v", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Debug("Error while closing rows", zap.Error(err))
		}
	}(rows)

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("failed to scan table name: %v", err)
		}
		tables = append(tables, name)
	}

	if len(tables) == 0 {
		return
	}

	_, err = conn.Exec(fmt.Sprintf("TRUNCATE TABLE %v RESTART IDENTITY CASCADE;", strings.Join(tables, ", ")))
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

func (e *testEnv) createEmployee(t *testing.T, name string, manager *uuid.UUID) uuid.UUID {
	var id uuid.UUID
	email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
	if err := e.conn.QueryRow(createEmployee, name, email, manager).Scan(&id); err != nil {
		t.Fatalf("failed to create employee: %v", err)
	}
	return id
}

func (e *testEnv) token(t *testing.T, uid uuid.UUID) string {
	token, err := e.au.NewToken(context.Background(), uid, config.AccessTokenDuration)
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}
	return token
}
