package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/entities"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/errors"
)

// Store is the process-local voter directory. A single mutex covers the
// uniqueness check and the insert.
type Store struct {
	mu sync.RWMutex

	voters     map[string]entities.Voter
	byEmail    map[string]string
	byDocument map[string]string
}

func NewStore(seed []entities.Voter) *Store {
	store := &Store{
		voters:     make(map[string]entities.Voter, len(seed)),
		byEmail:    make(map[string]string, len(seed)),
		byDocument: make(map[string]string, len(seed)),
	}
	for _, voter := range seed {
		store.insertLocked(voter)
	}
	return store
}

func (s *Store) CreateVoter(_ context.Context, voter entities.Voter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.takenLocked(voter.Email, voter.IdentityDocument, voter.RegistrationNumber) {
		return domainerrors.ErrDuplicateIdentity
	}
	s.insertLocked(voter)
	return nil
}

func (s *Store) IdentityTaken(
	_ context.Context,
	email string,
	identityDocument string,
	registrationNumber string,
) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.takenLocked(email, identityDocument, registrationNumber), nil
}

func (s *Store) GetVoterByRegistration(_ context.Context, registrationNumber string) (entities.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	voter, ok := s.voters[strings.TrimSpace(registrationNumber)]
	if !ok {
		return entities.Voter{}, domainerrors.ErrVoterNotFound
	}
	return voter, nil
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.voters)
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) takenLocked(email string, identityDocument string, registrationNumber string) bool {
	if _, ok := s.byEmail[email]; ok {
		return true
	}
	if _, ok := s.byDocument[identityDocument]; ok {
		return true
	}
	_, ok := s.voters[registrationNumber]
	return ok
}

func (s *Store) insertLocked(voter entities.Voter) {
	s.voters[voter.RegistrationNumber] = voter
	s.byEmail[voter.Email] = voter.RegistrationNumber
	s.byDocument[voter.IdentityDocument] = voter.RegistrationNumber
}
