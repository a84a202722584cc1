package caching

import (
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	url := "https://example.com/recipes/1"
	payload := []byte("<html>recipe</html>")

	if _, hit := cache.Get(url); hit {
		t.Fatal("Get hit before Set")
	}
	if err := cache.Set(url, payload); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit := cache.Get(url)
	if !hit {
		t.Fatal("Get missed after Set")
	}
	if string(data) != string(payload) {
		t.Errorf("Get = %q, want %q", data, payload)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Nanosecond)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	url := "https://example.com/recipes/1"
	if err := cache.Set(url, []byte("data")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(time.Millisecond)

	if _, hit := cache.Get(url); hit {
		t.Error("Get hit an expired entry")
	}
}

func TestCacheKeysDistinctURLs(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	if err := cache.Set("https://a.example.com", []byte("a")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := cache.Set("https://b.example.com", []byte("b")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit := cache.Get("https://a.example.com")
	if !hit || string(data) != "a" {
		t.Errorf("Get(a) = %q, %v; want %q, true", data, hit, "a")
	}
}
