package usecase

import (
	"trip-planner/pkg/log"
	"trip-planner/pkg/placeprovider"
	"trip-planner/pkg/ratelimit"
)

type implUseCase struct {
	l        log.Logger
	provider placeprovider.Provider
	throttle *ratelimit.Throttle
}

// New creates a place UseCase. provider is normally a *placeprovider.Chain;
// throttle guards Search per client.
func New(l log.Logger, provider placeprovider.Provider, throttle *ratelimit.Throttle) *implUseCase {
	return &implUseCase{
		l:        l,
		provider: provider,
		throttle: throttle,
	}
}
