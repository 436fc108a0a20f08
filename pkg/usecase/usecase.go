package usecase

import (
	"github.com/secmon-lab/talos/pkg/domain/interfaces"
)

// UseCase provides the application operations over the configured
// repository. A nil notifier disables outbound notifications.
type UseCase struct {
	repo     interfaces.Repository
	notifier interfaces.Notifier
}

type Option func(*UseCase)

// WithNotifier sets the outbound notifier for newly submitted reports
func WithNotifier(notifier interfaces.Notifier) Option {
	return func(uc *UseCase) {
		uc.notifier = notifier
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCase {
	uc := &UseCase{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
