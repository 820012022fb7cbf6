package commands

import "etcgBot/internal/domain"

// AuthorizationPolicy decide quién puede ejecutar el comando restringido.
// Las identidades se agrupan por plataforma: el mismo número en Telegram y en Twitch
// son usuarios distintos.
type AuthorizationPolicy struct {
	requireAuthorization bool
	allowed              map[domain.Platform]map[int64]struct{}
}

func NewAuthorizationPolicy(requireAuthorization bool, allowed map[domain.Platform][]int64) AuthorizationPolicy {
	sets := make(map[domain.Platform]map[int64]struct{}, len(allowed))
	for platform, ids := range allowed {
		set := make(map[int64]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		sets[platform] = set
	}
	return AuthorizationPolicy{
		requireAuthorization: requireAuthorization,
		allowed:              sets,
	}
}

// Allows reporta si la identidad pasa la política. Una identidad nil nunca está permitida
// salvo que la política no exija autorización.
func (p AuthorizationPolicy) Allows(platform domain.Platform, id *int64) bool {
	if !p.requireAuthorization {
		return true
	}
	if id == nil {
		return false
	}
	_, ok := p.allowed[platform][*id]
	return ok
}

func (p AuthorizationPolicy) RequiresAuthorization() bool {
	return p.requireAuthorization
}
