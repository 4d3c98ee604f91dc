package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=mockencounter -source=service.go

import (
	"sort"

	"github.com/KirkDiggler/reapers-guild/internal/catalog"
	"github.com/KirkDiggler/reapers-guild/internal/dice"
	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"go.uber.org/zap"
)

// Service defines the encounter service interface
type Service interface {
	// NewPool returns a full encounter pool for a new run
	NewPool() *Pool

	// Draw takes one encounter out of the pool
	Draw(pool *Pool) (*Encounter, error)
}

// Encounter is one drawn board event
type Encounter struct {
	Kind catalog.EncounterKind
	Name string
}

// Archetype returns the monster archetype for a monster encounter
func (e *Encounter) Archetype() entities.Archetype {
	return entities.Archetype(e.Name)
}

type poolEntry struct {
	kind      catalog.EncounterKind
	name      string
	remaining int
	members   []string
}

// Pool tracks how many encounters of each kind are left. Each draw of a
// kind lowers its weight by one, so a run sees exactly the pool's total.
type Pool struct {
	entries []*poolEntry
}

// Remaining is the number of encounters left in the pool
func (p *Pool) Remaining() int {
	total := 0
	for _, e := range p.entries {
		total += e.remaining
	}
	return total
}

// RemainingOf is the number of encounters of one kind left in the pool
func (p *Pool) RemainingOf(kind catalog.EncounterKind) int {
	total := 0
	for _, e := range p.entries {
		if e.kind == kind {
			total += e.remaining
		}
	}
	return total
}

type service struct {
	catalog *catalog.Catalog
	roller  dice.Roller
	log     *zap.SugaredLogger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog *catalog.Catalog
	Roller  dice.Roller
	Logger  *zap.SugaredLogger
}

// NewService creates a new encounter service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}

	svc := &service{
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
		log:     cfg.Logger,
	}
	if svc.log == nil {
		svc.log = zap.S()
	}
	return svc
}

// NewPool returns a full pool with its groups sorted by name
func (s *service) NewPool() *Pool {
	groups := s.catalog.EncounterPools()
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})

	pool := &Pool{entries: make([]*poolEntry, 0, len(groups))}
	for _, g := range groups {
		pool.entries = append(pool.entries, &poolEntry{
			kind:      g.Kind,
			name:      g.Name,
			remaining: g.Weight,
			members:   g.Members,
		})
	}
	return pool
}

// Draw picks a group by its remaining weight, spends one of its weight and
// picks a member of the group uniformly
func (s *service) Draw(pool *Pool) (*Encounter, error) {
	if pool == nil || pool.Remaining() == 0 {
		return nil, rgerr.Exhausted("encounter pool is empty")
	}

	weights := make([]int, len(pool.entries))
	for i, e := range pool.entries {
		weights[i] = e.remaining
	}

	idx, err := dice.WeightedIndex(s.roller, weights)
	if err != nil {
		return nil, rgerr.Wrap(err, "failed to pick encounter group")
	}
	entry := pool.entries[idx]
	entry.remaining--

	member, err := dice.Pick(s.roller, len(entry.members))
	if err != nil {
		return nil, rgerr.Wrapf(err, "failed to pick from %s", entry.name)
	}

	enc := &Encounter{Kind: entry.kind, Name: entry.members[member]}
	s.log.Debugw("encounter drawn", "group", entry.name, "encounter", enc.Name, "remaining", pool.Remaining())
	return enc, nil
}
