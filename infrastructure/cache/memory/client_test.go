package memory

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	if cache == nil {
		t.Error("NewMemoryCache returned nil")
	}
}

func TestMemoryCache_Get_ExistingKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	key := "mostpopular:viewed:7"
	value := []byte(`{"status":"OK"}`)
	if err := cache.Set(ctx, key, value, 1*time.Hour); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", string(got), string(value))
	}
}

func TestMemoryCache_Get_NonExistentKey(t *testing.T) {
	cache := NewMemoryCache()

	got, err := cache.Get(context.Background(), "non-existent")

	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
	if got != nil {
		t.Error("Get should return nil value for non-existent key")
	}
}

func TestMemoryCache_Get_ExpiredKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "short", []byte("value"), 10*time.Millisecond); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); err == nil {
		t.Error("Get should return error for expired key")
	}
}

func TestMemoryCache_Set_WithZeroTTL(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "forever", []byte("value"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	got, err := cache.Get(ctx, "forever")
	if err != nil {
		t.Errorf("Get returned error for zero TTL key: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get returned %s, want value", string(got))
	}
}

func TestMemoryCache_Set_UpdatesExisting(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("first"), time.Hour)
	cache.Set(ctx, "key", []byte("second"), time.Hour)

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get returned %s, want second", string(got))
	}
}

func TestMemoryCache_Set_CopiesValue(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	value := []byte("abc")
	cache.Set(ctx, "key", value, time.Hour)
	value[0] = 'z'

	got, _ := cache.Get(ctx, "key")
	got[1] = 'z'

	again, _ := cache.Get(ctx, "key")
	if string(again) != "abc" {
		t.Errorf("stored value was mutated: %s", string(again))
	}
}

func TestMemoryCache_Delete_RemovesKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Hour)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should return error after Delete")
	}
	if err := cache.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := cache.Set(ctx, "key", []byte("v"), time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Set error = %v, want context.Canceled", err)
	}
	if _, err := cache.Get(ctx, "key"); !errors.Is(err, context.Canceled) {
		t.Errorf("Get error = %v, want context.Canceled", err)
	}
	if err := cache.Delete(ctx, "key"); !errors.Is(err, context.Canceled) {
		t.Errorf("Delete error = %v, want context.Canceled", err)
	}
}

func TestMemoryCache_Cleanup(t *testing.T) {
	cache := NewMemoryCacheWithCleanup(5 * time.Millisecond)
	ctx := context.Background()

	cache.Set(ctx, "a", []byte("1"), time.Millisecond)
	cache.Set(ctx, "b", []byte("2"), time.Hour)

	time.Sleep(50 * time.Millisecond)

	if n := cache.Len(); n != 1 {
		t.Errorf("Len after cleanup = %d, want 1", n)
	}
}
