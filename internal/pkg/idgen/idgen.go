package idgen

import (
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Generator issues identifiers for new records and verification codes for bookings.
type Generator interface {
	NewID() string
	NewVerificationCode() string
}

type randomGenerator struct{}

func NewRandomGenerator() Generator {
	return randomGenerator{}
}

func (randomGenerator) NewID() string {
	return uuid.NewString()
}

// NewVerificationCode returns a 6-digit code in [100000, 999999]. Not cryptographically secure.
func (randomGenerator) NewVerificationCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// Sequence is a deterministic Generator for tests.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
	codes  []string
}

// NewSequence yields ids prefix1, prefix2, ... and cycles through codes.
// Without codes it yields 100001, 100002, ...
func NewSequence(prefix string, codes ...string) *Sequence {
	return &Sequence{prefix: prefix, codes: slices.Clone(codes)}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("%s%d", s.prefix, s.next)
}

func (s *Sequence) NewVerificationCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.codes) == 0 {
		s.next++
		return fmt.Sprintf("%06d", 100000+s.next)
	}
	code := s.codes[0]
	s.codes = append(s.codes[1:], code)
	return code
}
