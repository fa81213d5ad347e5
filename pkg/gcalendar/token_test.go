package gcalendar_test

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"

	"birthday-calendar-sync/pkg/gcalendar"
)

func TestKeyringTokenStore(t *testing.T) {
	keyring.MockInit()

	store, err := gcalendar.NewTokenStore(gcalendar.TokenStoreKeyring, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, gcalendar.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
	if err := store.Save(&oauth2.Token{AccessToken: "from-keyring", RefreshToken: "r"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	tok, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if tok.AccessToken != "from-keyring" || tok.RefreshToken != "r" {
		t.Errorf("unexpected token: %+v", tok)
	}
}
