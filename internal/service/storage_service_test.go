package service

import (
	"os"
	"path/filepath"
	"testing"

	"thanawya_backend/internal/config"
)

func TestLocalStorageUploadFile(t *testing.T) {
	base := t.TempDir()
	p, err := NewLocalStorageProvider(base)
	if err != nil {
		t.Fatalf("NewLocalStorageProvider: %v", err)
	}

	src := filepath.Join(t.TempDir(), "lecture.mp4")
	if err := os.WriteFile(src, []byte("video-bytes"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	url, err := p.UploadFile(src, "videos/lecture.mp4")
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if url != "/uploads/videos/lecture.mp4" {
		t.Fatalf("url = %q", url)
	}

	data, err := os.ReadFile(filepath.Join(base, "videos", "lecture.mp4"))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "video-bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestLocalStorageDeleteIdempotent(t *testing.T) {
	p, err := NewLocalStorageProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorageProvider: %v", err)
	}

	if err := p.Delete("nonexistent.pdf"); err != nil {
		t.Fatalf("delete of missing object must be a no-op, got %v", err)
	}
}

func TestNewStorageProviderDefaultsToLocal(t *testing.T) {
	// minio以外的type一律落到本地实现
	for _, typ := range []string{"local", ""} {
		cfg := &config.StorageConfig{Type: typ, LocalPath: t.TempDir()}
		p, err := NewStorageProvider(cfg)
		if err != nil {
			t.Fatalf("NewStorageProvider(%q): %v", typ, err)
		}
		if _, ok := p.(*LocalStorageProvider); !ok {
			t.Fatalf("type %q: expected local provider, got %T", typ, p)
		}
	}
}
