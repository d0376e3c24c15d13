package services

import (
	portsrepo "github.com/harborfleet/crewdesk/internal/core/ports/repositories"
	portssvc "github.com/harborfleet/crewdesk/internal/core/ports/services"
	"github.com/harborfleet/crewdesk/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The facade backs every data-facing port so all
// of them share one snapshot.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, opts ...FacadeOption) *portssvc.ServiceContainer {
	facade := NewFacadeService(repos, opts...)

	return &portssvc.ServiceContainer{
		Snapshot:  facade,
		Ship:      facade,
		Crew:      facade,
		Loan:      facade,
		StandBack: facade,
		User:      NewUserService(repos.UserRepo),
		Token:     NewTokenService(cfg),
	}
}
