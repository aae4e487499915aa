package session

import (
	"context"
	"errors"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type memoryStore struct {
	values map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (m *memoryStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	m.values[key] = value.(string)
	return nil
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", redislib.Nil
	}
	return value, nil
}

func (m *memoryStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

type prefixKeyer struct{}

func (prefixKeyer) AccessSessionKey(accessID string) string {
	return "session:access:" + accessID
}

func testManager() (*Manager, *memoryStore) {
	store := newMemoryStore()
	return &Manager{store: store, keyer: prefixKeyer{}, ttl: time.Hour}, store
}

func TestGenerateStoresToken(t *testing.T) {
	m, store := testManager()

	token, err := m.Generate(t.Context(), "jti-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if store.values["session:access:jti-1"] != token {
		t.Fatal("token not persisted under session key")
	}

	ok, err := m.HasSession(t.Context(), "jti-1")
	if err != nil || !ok {
		t.Fatalf("expected live session, ok=%v err=%v", ok, err)
	}
}

func TestRotateSwapsSession(t *testing.T) {
	m, store := testManager()
	token, err := m.Generate(t.Context(), "jti-old")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	newID, newToken, err := m.Rotate(t.Context(), "jti-old", token)
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if newID == "jti-old" || newToken == token {
		t.Fatal("rotation should mint a fresh pair")
	}
	if _, ok := store.values["session:access:jti-old"]; ok {
		t.Fatal("old session should be deleted")
	}
	if store.values["session:access:"+newID] != newToken {
		t.Fatal("new session not persisted")
	}
}

func TestRotateRejectsMismatchedToken(t *testing.T) {
	m, _ := testManager()
	if _, err := m.Generate(t.Context(), "jti-1"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, _, err := m.Rotate(t.Context(), "jti-1", "forged"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRevokeDropsSession(t *testing.T) {
	m, _ := testManager()
	if _, err := m.Generate(t.Context(), "jti-1"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := m.Revoke(t.Context(), "jti-1"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	ok, err := m.HasSession(t.Context(), "jti-1")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("session should be gone after revoke")
	}
}
