package webcache

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPutGet(t *testing.T) {
	cache, err := New(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	url := "https://example.test/dota2/Dota_2/Tournaments/2024"
	body := "<html><body>tournaments</body></html>"

	if err := cache.Put(url, body); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, ok := cache.Get(url)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != body {
		t.Errorf("Get() = %q, expected %q", got, body)
	}
}

func TestGetMiss(t *testing.T) {
	cache, err := New(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if _, ok := cache.Get("https://example.test/never-stored"); ok {
		t.Error("expected miss for URL that was never stored")
	}
}

func TestGetStale(t *testing.T) {
	dir := t.TempDir()
	cache, err := New(dir, time.Hour)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	url := "https://example.test/stale"

	// Write an entry stamped two hours ago.
	sum := md5.Sum([]byte(url))
	path := filepath.Join(dir, fmt.Sprintf("%x.json", sum))
	data, _ := json.Marshal(map[string]interface{}{
		"timestamp": time.Now().Add(-2 * time.Hour).Unix(),
		"content":   "old body",
	})
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing stale entry: %v", err)
	}

	if _, ok := cache.Get(url); ok {
		t.Error("expected miss for stale entry")
	}
}

func TestGetCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	cache, err := New(dir, time.Hour)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	url := "https://example.test/corrupt"
	sum := md5.Sum([]byte(url))
	path := filepath.Join(dir, fmt.Sprintf("%x.json", sum))
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("writing corrupt entry: %v", err)
	}

	if _, ok := cache.Get(url); ok {
		t.Error("expected miss for corrupt entry")
	}
}

func TestKeyIsURLHash(t *testing.T) {
	dir := t.TempDir()
	cache, err := New(dir, time.Hour)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	url := "https://example.test/page"
	if err := cache.Put(url, "body"); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	sum := md5.Sum([]byte(url))
	expected := filepath.Join(dir, fmt.Sprintf("%x.json", sum))
	if _, err := os.Stat(expected); err != nil {
		t.Errorf("expected cache file at %s: %v", expected, err)
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	if _, err := New(dir, time.Hour); err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected cache directory to exist: %v", err)
	}
}
