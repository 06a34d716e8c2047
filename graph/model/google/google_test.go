package google

import (
	"context"
	"errors"
	"testing"

	"github.com/vt0299/Blog-Generation-Agent/graph/model"
)

func TestNew_MissingAPIKey(t *testing.T) {
	_, err := New(context.Background(), "", "")
	var cerr *model.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *model.ConfigError, got %v", err)
	}
	if cerr.Provider != "google" {
		t.Errorf("expected provider google, got %s", cerr.Provider)
	}
}
