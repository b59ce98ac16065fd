package db

import (
	"context"
	"testing"

	"github.com/calebrosario/bookhaven-backend/pkg/config"
)

func TestNewRequiresDSN(t *testing.T) {
	if _, err := New(context.Background(), config.DBConfig{}, nil); err == nil {
		t.Fatal("expected an error when DSN is empty")
	}
}
