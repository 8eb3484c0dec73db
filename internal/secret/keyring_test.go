package secret_test

import (
	"testing"

	"github.com/zalando/go-keyring"

	"proprofile/internal/secret"
)

func TestKeyringStore_RoundTrip(t *testing.T) {
	keyring.MockInit()
	s := secret.NewKeyringStore()

	if v, err := s.Get(secret.GeminiKey); err != nil || v != nil {
		t.Fatalf("expected missing key to return nil,nil; got %q,%v", v, err)
	}
	if err := s.Set(secret.GeminiKey, []byte("abc")); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.Get(secret.GeminiKey); string(v) != "abc" {
		t.Errorf("expected abc, got %q", v)
	}
	if err := s.Delete(secret.GeminiKey); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(secret.GeminiKey); err != nil {
		t.Errorf("deleting a missing key should succeed, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	keyring.MockInit()
	s := secret.NewKeyringStore()
	_ = s.Set(secret.GeminiKey, []byte("stored"))

	if got := secret.Resolve("from-env", s, secret.GeminiKey); got != "from-env" {
		t.Errorf("configured value should win, got %q", got)
	}
	if got := secret.Resolve("", s, secret.GeminiKey); got != "stored" {
		t.Errorf("expected stored value, got %q", got)
	}
	if got := secret.Resolve("", nil, secret.GeminiKey); got != "" {
		t.Errorf("nil store should resolve empty, got %q", got)
	}
}
