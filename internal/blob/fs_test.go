package blob

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/docflowhq/docflow/internal/common"
)

func TestFSStoreRoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	ctx := context.Background()

	if err := store.Put(ctx, "tasks/T1/invoice.pdf", []byte("pdf bytes"), "application/pdf"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	data, err := store.Get(ctx, "tasks/T1/invoice.pdf")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != "pdf bytes" {
		t.Errorf("data = %q", data)
	}

	url, err := store.PresignGet(ctx, "tasks/T1/invoice.pdf", time.Minute)
	if err != nil {
		t.Fatalf("PresignGet: %v", err)
	}
	if !strings.HasPrefix(url, "file://") {
		t.Errorf("url = %q, want file:// scheme", url)
	}

	if err := store.Delete(ctx, "tasks/T1/invoice.pdf"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "tasks/T1/invoice.pdf"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
}

func TestFSStoreRejectsTraversal(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	if err := store.Put(context.Background(), "../escape", []byte("x"), ""); err == nil {
		t.Error("path traversal key must be rejected")
	}
}
