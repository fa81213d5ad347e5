package gcalendar

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
)

const (
	TokenStoreFile    = "file"
	TokenStoreKeyring = "keyring"

	DefaultTokenPath      = "token.json"
	DefaultKeyringService = "birthday-calendar-sync"
	DefaultKeyringUser    = "google-oauth-token"
)

// TokenStore persists the OAuth token of an installed-app credential.
type TokenStore interface {
	Load() (*oauth2.Token, error)
	Save(tok *oauth2.Token) error
}

// NewTokenStore returns the store named by kind ("file" or "keyring").
func NewTokenStore(kind, path string) (TokenStore, error) {
	switch kind {
	case "", TokenStoreFile:
		if path == "" {
			path = DefaultTokenPath
		}
		return FileTokenStore{Path: path}, nil
	case TokenStoreKeyring:
		return KeyringTokenStore{Service: DefaultKeyringService, User: DefaultKeyringUser}, nil
	default:
		return nil, fmt.Errorf("unknown token store %q", kind)
	}
}

// FileTokenStore keeps the token as JSON on disk.
type FileTokenStore struct {
	Path string
}

func (s FileTokenStore) Load() (*oauth2.Token, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.Path, ErrTokenNotFound)
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path, err)
	}
	return &tok, nil
}

func (s FileTokenStore) Save(tok *oauth2.Token) error {
	f, err := os.OpenFile(s.Path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.Path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.Path, err)
	}
	return nil
}

// KeyringTokenStore keeps the token in the OS keyring.
type KeyringTokenStore struct {
	Service string
	User    string
}

func (s KeyringTokenStore) Load() (*oauth2.Token, error) {
	secret, err := keyring.Get(s.Service, s.User)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, fmt.Errorf("keyring %s/%s: %w", s.Service, s.User, ErrTokenNotFound)
		}
		return nil, fmt.Errorf("failed to read keyring: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal([]byte(secret), &tok); err != nil {
		return nil, fmt.Errorf("failed to parse keyring token: %w", err)
	}
	return &tok, nil
}

func (s KeyringTokenStore) Save(tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := keyring.Set(s.Service, s.User, string(data)); err != nil {
		return fmt.Errorf("failed to write keyring: %w", err)
	}
	return nil
}

// persistingTokenSource writes refreshed tokens back to the store.
type persistingTokenSource struct {
	mu    sync.Mutex
	base  oauth2.TokenSource
	store TokenStore
	last  string
}

func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := p.base.Token()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if tok.AccessToken != p.last {
		p.last = tok.AccessToken
		// A failed save only costs a refresh on the next start.
		_ = p.store.Save(tok)
	}
	return tok, nil
}
