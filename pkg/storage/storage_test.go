package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name        string
		key         string
		data        []byte
		contentType string
		wantErr     bool
	}{
		{"png", "receipts/a.png", []byte{1}, "image/png", false},
		{"pdf with params", "receipts/a.pdf", []byte{1}, "application/pdf; charset=binary", false},
		{"empty", "receipts/a.png", nil, "image/png", true},
		{"too large", "receipts/a.png", make([]byte, 11), "image/png", true},
		{"bad type", "receipts/a.exe", []byte{1}, "application/x-msdownload", true},
		{"escape", "../etc/passwd", []byte{1}, "image/png", true},
		{"absolute", "/etc/passwd", []byte{1}, "image/png", true},
	}

	for _, c := range cases {
		err := Validate(c.key, c.data, c.contentType, 10)
		if c.wantErr {
			if !errors.Is(err, ErrRejected) {
				t.Errorf("%s: expected ErrRejected, got %v", c.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		}
	}
}

func TestLocalStorePut(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root, "/uploads/", 1024, zap.NewNop())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	url, err := store.Put(context.Background(), "receipts/c1-1.png", []byte("png-bytes"), "image/png")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if url != "/uploads/receipts/c1-1.png" {
		t.Fatalf("unexpected url %q", url)
	}

	got, err := os.ReadFile(filepath.Join(root, "receipts", "c1-1.png"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "png-bytes" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestLocalStoreRejects(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", 4, zap.NewNop())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Put(context.Background(), "receipts/big.png", []byte("too big"), "image/png"); !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}
