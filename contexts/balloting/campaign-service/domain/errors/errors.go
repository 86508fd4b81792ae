package errors

import "errors"

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInvalidInput      = errors.New("invalid campaign input")
	ErrMissingSelection  = errors.New("a candidate must be selected")
	ErrCampaignClosed    = errors.New("campaign is closed")
	ErrCampaignNotOpen   = errors.New("campaign is not open for voting")
	ErrAlreadyVoted      = errors.New("voter already cast a ballot in this campaign")
	ErrVoterRequired     = errors.New("an authenticated voter is required to vote")
)
