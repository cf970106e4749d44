// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package links implements the link tools: a URL shortener with custom
// aliases, YouTube video lookups, and Instagram profile links.
package links

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/toolshed/pkg/types"
)

var (
	// ErrEmptyURL is returned when no URL was given.
	ErrEmptyURL = errors.New("please enter a URL")

	// ErrInvalidURL is returned for anything but an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid URL format")

	// ErrInvalidAlias is returned for an alias outside 3-20 letters,
	// digits, dashes, and underscores.
	ErrInvalidAlias = errors.New("alias must be 3-20 characters (letters, numbers, dash, underscore)")
)

var aliasPattern = regexp.MustCompile(`(?i)^[a-z0-9_-]{3,20}$`)

const (
	aliasAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	aliasLength   = 6

	// generateAttempts bounds retries when a random alias collides.
	generateAttempts = 5
)

// LinkStore persists short links.
type LinkStore interface {
	SaveLink(ctx context.Context, link types.ShortLink) error
	ResolveLink(ctx context.Context, alias string) (types.ShortLink, error)
}

// Shortener creates and resolves short links under a base URL.
type Shortener struct {
	store   LinkStore
	baseURL string
	isTaken func(error) bool
}

// NewShortener returns a Shortener that saves links in store and prints
// them under baseURL. isTaken reports whether a store error means the alias
// already exists, so generated aliases can be retried.
func NewShortener(store LinkStore, baseURL string, isTaken func(error) bool) *Shortener {
	if isTaken == nil {
		isTaken = func(error) bool { return false }
	}
	return &Shortener{store: store, baseURL: strings.TrimRight(baseURL, "/"), isTaken: isTaken}
}

// ValidateURL checks that raw is an absolute http or https URL.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrEmptyURL
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}

// ValidateAlias checks alias against the allowed pattern.
func ValidateAlias(alias string) error {
	if !aliasPattern.MatchString(alias) {
		return fmt.Errorf("%w: %q", ErrInvalidAlias, alias)
	}
	return nil
}

// RandomAlias returns a 6-character lower-case base-36 alias.
func RandomAlias() (string, error) {
	limit := big.NewInt(int64(len(aliasAlphabet)))
	b := make([]byte, aliasLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generating alias: %w", err)
		}
		b[i] = aliasAlphabet[n.Int64()]
	}
	return string(b), nil
}

// ShortURL returns the public short URL for alias.
func (s *Shortener) ShortURL(alias string) string {
	return s.baseURL + "/go/" + alias
}

// Shorten validates longURL and stores it under alias, or under a random
// alias when alias is blank. Custom aliases that are taken fail; random
// ones are regenerated a few times.
func (s *Shortener) Shorten(ctx context.Context, longURL, alias string) (types.ShortLink, error) {
	if err := ValidateURL(longURL); err != nil {
		return types.ShortLink{}, err
	}
	longURL = strings.TrimSpace(longURL)
	alias = strings.TrimSpace(alias)

	if alias != "" {
		if err := ValidateAlias(alias); err != nil {
			return types.ShortLink{}, err
		}
		link := types.ShortLink{Alias: alias, URL: longURL, CreatedAt: time.Now().UTC()}
		if err := s.store.SaveLink(ctx, link); err != nil {
			return types.ShortLink{}, err
		}
		return link, nil
	}

	var lastErr error
	for i := 0; i < generateAttempts; i++ {
		generated, err := RandomAlias()
		if err != nil {
			return types.ShortLink{}, err
		}
		link := types.ShortLink{Alias: generated, URL: longURL, CreatedAt: time.Now().UTC()}
		err = s.store.SaveLink(ctx, link)
		if err == nil {
			return link, nil
		}
		if !s.isTaken(err) {
			return types.ShortLink{}, err
		}
		lastErr = err
	}
	return types.ShortLink{}, fmt.Errorf("no free alias after %d attempts: %w", generateAttempts, lastErr)
}

// Resolve returns the long URL stored for alias.
func (s *Shortener) Resolve(ctx context.Context, alias string) (types.ShortLink, error) {
	alias = strings.TrimSpace(alias)
	alias = strings.TrimPrefix(alias, s.baseURL+"/go/")
	if err := ValidateAlias(alias); err != nil {
		return types.ShortLink{}, err
	}
	return s.store.ResolveLink(ctx, alias)
}
