package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calebrosario/bookhaven-backend/pkg/config"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = config.AppEnvDev
	return cfg
}

func TestHealthLive(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	HealthLive(testConfig()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-BookHaven-Env"); got != config.AppEnvDev {
		t.Fatalf("expected env header %q, got %q", config.AppEnvDev, got)
	}
}

func TestHealthReady(t *testing.T) {
	logg := testLogger()

	readyStatus := func(rec *httptest.ResponseRecorder) map[string]string {
		t.Helper()
		var envelope struct {
			Data map[string]string `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		return envelope.Data
	}

	t.Run("ready with cache", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		rec := httptest.NewRecorder()
		HealthReady(testConfig(), logg, stubPinger{}, stubPinger{}).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		data := readyStatus(rec)
		if data["status"] != "ready" || data["cache"] != "ok" {
			t.Fatalf("unexpected readiness payload: %+v", data)
		}
	})

	t.Run("cache disabled", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		rec := httptest.NewRecorder()
		HealthReady(testConfig(), logg, stubPinger{}, nil).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if data := readyStatus(rec); data["cache"] != "disabled" {
			t.Fatalf("expected cache disabled, got %+v", data)
		}
	})

	t.Run("cache degraded stays ready", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		rec := httptest.NewRecorder()
		HealthReady(testConfig(), logg, stubPinger{}, stubPinger{err: errors.New("redis down")}).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 with degraded cache, got %d", rec.Code)
		}
		if data := readyStatus(rec); data["cache"] != "degraded" {
			t.Fatalf("expected cache degraded, got %+v", data)
		}
	})

	t.Run("database down", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		rec := httptest.NewRecorder()
		HealthReady(testConfig(), logg, stubPinger{err: errors.New("connection refused")}, nil).ServeHTTP(rec, req)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 when database is down, got %d", rec.Code)
		}
	})
}
