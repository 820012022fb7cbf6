package commands

import (
	"testing"

	"github.com/stretchr/testify/require"

	"etcgBot/internal/domain"
)

func TestAuthorizationPolicy_Allows(t *testing.T) {
	strict := NewAuthorizationPolicy(true, map[domain.Platform][]int64{
		domain.PlatformTelegram: {709158714, 1},
		domain.PlatformTwitch:   {555},
	})
	open := NewAuthorizationPolicy(false, nil)

	tests := []struct {
		name     string
		policy   AuthorizationPolicy
		platform domain.Platform
		id       *int64
		want     bool
	}{
		{"allow-listed", strict, domain.PlatformTelegram, ptr(int64(709158714)), true},
		{"second allow-listed", strict, domain.PlatformTelegram, ptr(int64(1)), true},
		{"twitch allow-listed", strict, domain.PlatformTwitch, ptr(int64(555)), true},
		{"other identity", strict, domain.PlatformTelegram, ptr(int64(42)), false},
		{"telegram id on twitch", strict, domain.PlatformTwitch, ptr(int64(709158714)), false},
		{"twitch id on telegram", strict, domain.PlatformTelegram, ptr(int64(555)), false},
		{"unknown platform", strict, domain.Platform("irc"), ptr(int64(709158714)), false},
		{"nil identity", strict, domain.PlatformTelegram, nil, false},
		{"gate disabled", open, domain.PlatformTwitch, ptr(int64(42)), true},
		{"gate disabled nil identity", open, domain.PlatformTelegram, nil, true},
		{"empty allow-list", NewAuthorizationPolicy(true, nil), domain.PlatformTelegram, ptr(int64(709158714)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.policy.Allows(tt.platform, tt.id))
		})
	}
}
