package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Theme values
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// themeKey is the single fixed key the preference lives under.
const themeKey = "portfolio:prefs:theme"

var ErrInvalidTheme = errors.New("invalid theme")

// ThemeStore persists the one theme preference the app keeps across reloads.
type ThemeStore struct {
	rdb *redis.Client
}

func NewThemeStore(rdb *redis.Client) *ThemeStore {
	return &ThemeStore{rdb: rdb}
}

// Get returns the stored theme, defaulting to light when none is set.
func (s *ThemeStore) Get(ctx context.Context) (string, error) {
	val, err := s.rdb.Get(ctx, themeKey).Result()
	if err == redis.Nil {
		return ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	return val, nil
}

// Set stores the theme. Only "light" and "dark" are accepted; the value has
// no expiry.
func (s *ThemeStore) Set(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrInvalidTheme
	}
	if err := s.rdb.Set(ctx, themeKey, theme, 0).Err(); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}
