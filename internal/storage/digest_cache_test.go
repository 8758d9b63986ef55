package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDigestCache_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.json")

	c := NewDigestCache(path, 48*time.Hour)
	if err := c.Load(); err != nil {
		t.Fatalf("loading a missing file should succeed: %v", err)
	}

	c.MarkSent("id-1", "Title", "https://example.com/a", "src")
	if !c.WasSent("id-1") {
		t.Fatalf("freshly marked id should report as sent")
	}
	if c.WasSent("id-2") {
		t.Errorf("unknown id should not report as sent")
	}
	if err := c.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded := NewDigestCache(path, 48*time.Hour)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !reloaded.WasSent("id-1") {
		t.Errorf("sent ids must survive a reload")
	}
}

func TestDigestCache_ExpiredEntriesDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.json")

	c := NewDigestCache(path, time.Millisecond)
	c.MarkSent("id-1", "Title", "https://example.com/a", "src")
	time.Sleep(5 * time.Millisecond)

	if c.WasSent("id-1") {
		t.Errorf("entries past the TTL should not report as sent")
	}
	if err := c.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded := NewDigestCache(path, time.Millisecond)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.WasSent("id-1") {
		t.Errorf("expired entries should not be loaded back")
	}
}
