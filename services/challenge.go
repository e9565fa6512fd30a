package services

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"farida_law_site_go/models"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	challengeMin = 2
	challengeMax = 9
)

// ChallengeIssuer hands out fresh challenges. Implementations must never
// return a challenge that was already shown.
type ChallengeIssuer interface {
	Issue() models.Challenge
}

// GenerateChallenge draws two integers uniformly from [2, 9] and returns the
// question with its expected sum
func GenerateChallenge() models.Challenge {
	a := challengeMin + rand.IntN(challengeMax-challengeMin+1)
	b := challengeMin + rand.IntN(challengeMax-challengeMin+1)

	return models.Challenge{
		ID:       uuid.New().String(),
		A:        a,
		B:        b,
		Question: fmt.Sprintf("What is %d + %d?", a, b),
		Answer:   strconv.Itoa(a + b),
		IssuedAt: time.Now(),
	}
}

// ChallengeStore remembers issued challenges so a posted answer can be checked
// against the question that was rendered. Entries are single use.
type ChallengeStore struct {
	cache *gocache.Cache
	mu    sync.Mutex
}

// Challenges is the process-wide store used by the form handlers
var Challenges *ChallengeStore

// InitializeChallenges sets up the global challenge store
func InitializeChallenges(ttl time.Duration) {
	Challenges = NewChallengeStore(ttl)
}

// NewChallengeStore creates a store whose entries expire after ttl
func NewChallengeStore(ttl time.Duration) *ChallengeStore {
	return &ChallengeStore{cache: gocache.New(ttl, 2*ttl)}
}

// Issue generates a challenge and remembers it
func (s *ChallengeStore) Issue() models.Challenge {
	ch := GenerateChallenge()
	s.cache.SetDefault(ch.ID, ch)
	return ch
}

// Peek returns a live challenge without consuming it
func (s *ChallengeStore) Peek(id string) (models.Challenge, bool) {
	if id == "" {
		return models.Challenge{}, false
	}
	v, ok := s.cache.Get(id)
	if !ok {
		return models.Challenge{}, false
	}
	return v.(models.Challenge), true
}

// Take returns and forgets a challenge. A second Take for the same ID fails.
func (s *ChallengeStore) Take(id string) (models.Challenge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.Peek(id)
	if ok {
		s.cache.Delete(id)
	}
	return ch, ok
}

// Len returns the number of live challenges
func (s *ChallengeStore) Len() int {
	return s.cache.ItemCount()
}
