// Package oauth integrates external identity providers for sign-in.
package oauth

import "context"

// UserInfo is the provider-agnostic identity returned by a completed
// OAuth exchange.
type UserInfo struct {
	ID        string
	Email     string
	Name      string
	AvatarURL string
	Provider  string
}

// Provider abstracts an OAuth identity provider.
type Provider interface {
	Name() string
	GetConsentURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*UserInfo, error)
}
