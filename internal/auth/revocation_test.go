package auth

import (
	"context"
	"testing"
	"time"
)

func TestMemoryRevocationStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRevocationStore()

	revoked, err := store.IsRevoked(ctx, "token-a")
	if err != nil {
		t.Fatalf("is revoked: %v", err)
	}
	if revoked {
		t.Error("fresh store should not report token revoked")
	}

	if err := store.Revoke(ctx, "token-a", time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	revoked, err = store.IsRevoked(ctx, "token-a")
	if err != nil {
		t.Fatalf("is revoked: %v", err)
	}
	if !revoked {
		t.Error("revoked token should be reported revoked")
	}

	revoked, _ = store.IsRevoked(ctx, "token-b")
	if revoked {
		t.Error("unrelated token should not be revoked")
	}
}

func TestMemoryRevocationStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRevocationStore()

	// An entry already past its expiry is dropped on the next read.
	store.entries[revokedKey("stale")] = time.Now().Add(-time.Second)

	revoked, err := store.IsRevoked(ctx, "stale")
	if err != nil {
		t.Fatalf("is revoked: %v", err)
	}
	if revoked {
		t.Error("expired entry should not count as revoked")
	}
	if len(store.entries) != 0 {
		t.Errorf("expired entry should be removed, %d entries left", len(store.entries))
	}
}

func TestMemoryRevocationStoreIgnoresNonPositiveTTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRevocationStore()

	if err := store.Revoke(ctx, "token", 0); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if revoked, _ := store.IsRevoked(ctx, "token"); revoked {
		t.Error("zero ttl revoke should be a no-op")
	}
}
