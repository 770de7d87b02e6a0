// Package currency resolves a user's display currency. The preference
// only affects formatting; stored cents never change when it does.
package currency

import (
	"context"
	"errors"

	"finmate/internal/core"
	"finmate/internal/storage"
)

var ErrUnsupported = errors.New("unsupported currency code")

// supported maps ISO codes to display symbols.
var supported = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"CAD": "C$",
	"AUD": "A$",
}

// Lookup returns the preference for a known code.
func Lookup(code string) (core.CurrencyPreference, error) {
	symbol, ok := supported[code]
	if !ok {
		return core.CurrencyPreference{}, ErrUnsupported
	}
	return core.CurrencyPreference{Code: code, Symbol: symbol}, nil
}

// Codes lists the supported ISO codes.
func Codes() []string {
	codes := make([]string, 0, len(supported))
	for code := range supported {
		codes = append(codes, code)
	}
	return codes
}

// PreferenceStore is the subset of the repository the provider needs.
type PreferenceStore interface {
	GetCurrencyPreference(ctx context.Context, userID string) (core.CurrencyPreference, error)
	SetCurrencyPreference(ctx context.Context, userID string, pref core.CurrencyPreference) error
}

// Provider resolves per-user preferences with a configured fallback.
type Provider struct {
	store    PreferenceStore
	fallback core.CurrencyPreference
}

func NewProvider(store PreferenceStore, fallback core.CurrencyPreference) *Provider {
	return &Provider{store: store, fallback: fallback}
}

// Resolve returns the user's stored preference, or the fallback when
// none exists.
func (p *Provider) Resolve(ctx context.Context, userID string) core.CurrencyPreference {
	pref, err := p.store.GetCurrencyPreference(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return p.fallback
	}
	if err != nil {
		return p.fallback
	}
	return pref
}

// Set validates and stores a new preference.
func (p *Provider) Set(ctx context.Context, userID, code string) (core.CurrencyPreference, error) {
	pref, err := Lookup(code)
	if err != nil {
		return core.CurrencyPreference{}, err
	}
	if err := p.store.SetCurrencyPreference(ctx, userID, pref); err != nil {
		return core.CurrencyPreference{}, err
	}
	return pref, nil
}
