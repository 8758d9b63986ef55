package ratelimit

import "testing"

func TestAllow_PerProviderLimit(t *testing.T) {
	l := New(map[string]int{"gemini": 2}, 0)

	if !l.Allow("gemini") || !l.Allow("gemini") {
		t.Fatalf("first two calls should be allowed")
	}
	if l.Allow("gemini") {
		t.Errorf("third call should be rejected")
	}
}

func TestAllow_TotalLimit(t *testing.T) {
	l := New(nil, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow("any") {
			t.Fatalf("call %d should be allowed", i)
		}
	}
	if l.Allow("other") {
		t.Errorf("total cap should apply across providers")
	}
}

func TestAllow_ZeroMeansUnlimited(t *testing.T) {
	l := New(map[string]int{"gemini": 0}, 0)

	for i := 0; i < 100; i++ {
		if !l.Allow("gemini") {
			t.Fatalf("limit 0 must mean unlimited, rejected at call %d", i)
		}
	}
}

func TestStats(t *testing.T) {
	l := New(nil, 0)
	l.Allow("a")
	l.Allow("a")
	l.Allow("b")

	stats := l.Stats()
	if stats["a"] != 2 || stats["b"] != 1 || stats["total"] != 3 {
		t.Errorf("wrong stats: %v", stats)
	}
}
