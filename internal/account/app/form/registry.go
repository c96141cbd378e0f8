package form

import (
	"context"
	"sync"
	"time"

	"github.com/klwxsrx/tagabukid-property/internal/account/domain"
	"github.com/klwxsrx/tagabukid-property/pkg/lazy"
	"github.com/klwxsrx/tagabukid-property/pkg/log"
	pkgtime "github.com/klwxsrx/tagabukid-property/pkg/time"
)

const DefaultStateTTL = 30 * time.Minute

// Registry keeps one form controller per signed-in user.
type Registry interface {
	Get(context.Context, domain.UserID) Controller
	EvictIdle(context.Context) error
}

type (
	registry struct {
		mu          sync.Mutex
		entries     map[domain.UserID]*registryEntry
		profileRepo domain.ProfileRepository
		ttl         time.Duration
		clock       pkgtime.Clock
		logger      log.Logger
	}

	registryEntry struct {
		controller lazy.Loader[*controller]
		lastUsedAt time.Time
	}
)

func NewRegistry(
	profileRepo domain.ProfileRepository,
	ttl time.Duration,
	clock pkgtime.Clock,
	logger log.Logger,
) Registry {
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}

	return &registry{
		entries:     make(map[domain.UserID]*registryEntry),
		profileRepo: profileRepo,
		ttl:         ttl,
		clock:       clock,
		logger:      logger,
	}
}

func (r *registry) Get(ctx context.Context, userID domain.UserID) Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[userID]
	if !ok {
		entry = &registryEntry{
			controller: lazy.New(func() (*controller, error) {
				return newController(userID, r.profileRepo), nil
			}),
		}
		r.entries[userID] = entry
	}

	entry.lastUsedAt = r.clock.Now(ctx)
	return entry.controller.MustLoad()
}

// EvictIdle drops controllers unused for longer than the ttl, a submitting controller is kept.
func (r *registry) EvictIdle(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now(ctx)
	var evicted int
	for userID, entry := range r.entries {
		if now.Sub(entry.lastUsedAt) <= r.ttl {
			continue
		}

		submitting := false
		entry.controller.IfLoaded(func(c *controller) {
			submitting = c.submitting()
		})
		if submitting {
			continue
		}

		delete(r.entries, userID)
		evicted++
	}

	if evicted > 0 {
		r.logger.With(log.Fields{
			"evicted": evicted,
			"active":  len(r.entries),
		}).Debug(ctx, "idle profile forms evicted")
	}

	return nil
}
