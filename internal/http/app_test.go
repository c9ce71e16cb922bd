package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"hwstore/internal/config"
	"hwstore/internal/http/handlers"
	"hwstore/internal/repos"
	"hwstore/internal/store"
)

const testAdminToken = "s3cret-admin"

// newAPIApp wires the real routes over an in-memory SQLite store.
func newAPIApp(t *testing.T) (*fiber.App, *handlers.Deps, *repos.KVRepo) {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", EURRate: 0.9, AdminToken: testAdminToken}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	kv := repos.NewKVRepo(db)

	deps := handlers.NewDeps(store.New(kv), cfg)
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Server().MaxRequestBodySize = 1 << 20
	app.Use(requestid.New())
	deps.Routes(app.Group("/api/v1"))
	return app, deps, kv
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	out, _ := io.ReadAll(resp.Body)
	return resp, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("decode %s: %v", b, err)
	}
	return v
}
