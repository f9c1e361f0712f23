package social

import (
	"math/rand"
	"sort"
	"sync"
	"time"
)

// Service ranks friend suggestions over the social and enrollment graph.
type Service struct {
	store GraphStore
	limit int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService builds a suggestion service. limit caps the suggestion list;
// rng drives the fallback sampling and may be seeded for deterministic
// tests. A nil rng gets a time-seeded one.
func NewService(store GraphStore, limit int, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{store: store, limit: limit, rng: rng}
}

// Suggest returns up to limit suggested new friends for zid, best match
// first. Candidates share a course or a friend with zid; when no such
// candidate exists the result is a uniform random sample of all other
// active students. Suggestions never include zid itself, a current friend,
// or a suspended account.
func (s *Service) Suggest(zid string) ([]string, error) {
	courseMates, err := s.store.CourseMates(zid)
	if err != nil {
		return nil, err
	}
	friendsOfFriends, err := s.store.FriendsOfFriends(zid)
	if err != nil {
		return nil, err
	}

	candidates := make(map[string]struct{}, len(courseMates)+len(friendsOfFriends))
	for _, c := range courseMates {
		candidates[c] = struct{}{}
	}
	for _, c := range friendsOfFriends {
		candidates[c] = struct{}{}
	}

	eligible, err := s.dropSuspended(candidates)
	if err != nil {
		return nil, err
	}

	if len(eligible) > 0 {
		return s.rank(zid, eligible)
	}
	return s.sampleFallback(zid)
}

// rank orders candidates by similarity descending, zid ascending on ties
// so results are reproducible, and truncates to the limit.
func (s *Service) rank(zid string, candidates []string) ([]string, error) {
	type scored struct {
		zid   string
		score int
	}
	ranked := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		score, err := s.Similarity(zid, candidate)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, scored{zid: candidate, score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].zid < ranked[j].zid
	})

	if len(ranked) > s.limit {
		ranked = ranked[:s.limit]
	}
	results := make([]string, len(ranked))
	for i, r := range ranked {
		results[i] = r.zid
	}
	return results, nil
}

// sampleFallback draws a uniform random sample without replacement from
// every active non-friend when the graph offers no candidate at all.
func (s *Service) sampleFallback(zid string) ([]string, error) {
	pool, err := s.store.StrangerZIDs(zid)
	if err != nil {
		return nil, err
	}

	eligible := make([]string, 0, len(pool))
	for _, candidate := range pool {
		suspended, err := s.store.IsSuspended(candidate)
		if err != nil {
			return nil, err
		}
		if !suspended {
			eligible = append(eligible, candidate)
		}
	}

	s.mu.Lock()
	s.rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	s.mu.Unlock()

	if len(eligible) > s.limit {
		eligible = eligible[:s.limit]
	}
	return eligible, nil
}

func (s *Service) dropSuspended(candidates map[string]struct{}) ([]string, error) {
	eligible := make([]string, 0, len(candidates))
	for candidate := range candidates {
		suspended, err := s.store.IsSuspended(candidate)
		if err != nil {
			return nil, err
		}
		if !suspended {
			eligible = append(eligible, candidate)
		}
	}
	return eligible, nil
}
