package entities

import (
	"fmt"
	"strings"
	"time"

	domainerrors "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/errors"
)

type CampaignStatus string

const (
	CampaignStatusEnabled  CampaignStatus = "enabled"
	CampaignStatusDisabled CampaignStatus = "disabled"
	CampaignStatusClosed   CampaignStatus = "closed"
)

var statusAliases = map[string]CampaignStatus{
	"enabled":       CampaignStatusEnabled,
	"habilitada":    CampaignStatusEnabled,
	"disabled":      CampaignStatusDisabled,
	"deshabilitada": CampaignStatusDisabled,
	"closed":        CampaignStatusClosed,
	"cerrada":       CampaignStatusClosed,
}

// ParseCampaignStatus accepts the canonical values and their Spanish aliases.
func ParseCampaignStatus(raw string) (CampaignStatus, bool) {
	status, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]
	return status, ok
}

type Candidate struct {
	ID    int64
	Name  string
	Votes int64
}

type Campaign struct {
	ID          int64
	Title       string
	Description string
	Status      CampaignStatus
	Candidates  []Candidate
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TallyEntry is one line of the snapshot published on close.
type TallyEntry struct {
	Name  string
	Votes int64
}

// Ballot is a single vote request. VoterID is empty for anonymous ballots.
type Ballot struct {
	CampaignID  int64
	CandidateID int64
	VoterID     string
	CastAt      time.Time
}

func (c Campaign) Clone() Campaign {
	clone := c
	clone.Candidates = append([]Candidate(nil), c.Candidates...)
	return clone
}

func (c Campaign) CandidateIndex(candidateID int64) int {
	for i, candidate := range c.Candidates {
		if candidate.ID == candidateID {
			return i
		}
	}
	return -1
}

// AdmitVote reports where the vote lands or why it is refused.
func (c Campaign) AdmitVote(candidateID int64) (int, error) {
	index := c.CandidateIndex(candidateID)
	if index < 0 {
		return -1, domainerrors.ErrCandidateNotFound
	}
	switch c.Status {
	case CampaignStatusEnabled:
		return index, nil
	case CampaignStatusClosed:
		return -1, domainerrors.ErrCampaignClosed
	default:
		return -1, domainerrors.ErrCampaignNotOpen
	}
}

// Tally lists candidates in slate order.
func (c Campaign) Tally() []TallyEntry {
	items := make([]TallyEntry, 0, len(c.Candidates))
	for _, candidate := range c.Candidates {
		items = append(items, TallyEntry{
			Name:  candidate.Name,
			Votes: candidate.Votes,
		})
	}
	return items
}

func ValidateCandidates(candidates []Candidate) error {
	seen := make(map[int64]struct{}, len(candidates))
	for i, candidate := range candidates {
		if candidate.ID <= 0 {
			return fmt.Errorf("%w: candidate %d requires a positive id", domainerrors.ErrInvalidInput, i)
		}
		if strings.TrimSpace(candidate.Name) == "" {
			return fmt.Errorf("%w: candidate %d requires a name", domainerrors.ErrInvalidInput, candidate.ID)
		}
		if candidate.Votes < 0 {
			return fmt.Errorf("%w: candidate %d has negative votes", domainerrors.ErrInvalidInput, candidate.ID)
		}
		if _, ok := seen[candidate.ID]; ok {
			return fmt.Errorf("%w: candidate id %d is repeated", domainerrors.ErrInvalidInput, candidate.ID)
		}
		seen[candidate.ID] = struct{}{}
	}
	return nil
}
