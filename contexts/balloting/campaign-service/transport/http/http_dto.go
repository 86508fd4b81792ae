package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"mensaje"`
}

// ErrCandidatesNotArray is returned when the candidate payload is not a JSON
// array.
var ErrCandidatesNotArray = errors.New("candidates must be an array")

// FlexibleID decodes a JSON number or a numeric string. Empty strings and null
// decode to zero.
type FlexibleID int64

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = 0
		return nil
	}
	raw := string(trimmed)
	if trimmed[0] == '"' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*f = 0
			return nil
		}
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("expected integer id, got %s", string(trimmed))
	}
	*f = FlexibleID(value)
	return nil
}

type CreateCampaignRequest struct {
	Title       string
	Description string
	Status      string
}

func (r *CreateCampaignRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Titulo      *string `json:"titulo"`
		Title       *string `json:"title"`
		Descripcion *string `json:"descripcion"`
		Description *string `json:"description"`
		Estado      *string `json:"estado"`
		Status      *string `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Title = firstString(raw.Titulo, raw.Title)
	r.Description = firstString(raw.Descripcion, raw.Description)
	r.Status = firstString(raw.Estado, raw.Status)
	return nil
}

type SetStatusRequest struct {
	Status string
}

func (r *SetStatusRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Estado *string `json:"estado"`
		Status *string `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Status = firstString(raw.Estado, raw.Status)
	return nil
}

type CandidateRequest struct {
	ID    FlexibleID
	Name  string
	Votes int64
}

func (r *CandidateRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     FlexibleID `json:"id"`
		Nombre *string    `json:"nombre"`
		Name   *string    `json:"name"`
		Votos  *int64     `json:"votos"`
		Votes  *int64     `json:"votes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.ID = raw.ID
	r.Name = firstString(raw.Nombre, raw.Name)
	switch {
	case raw.Votos != nil:
		r.Votes = *raw.Votos
	case raw.Votes != nil:
		r.Votes = *raw.Votes
	default:
		r.Votes = 0
	}
	return nil
}

// ReplaceCandidatesRequest accepts {"candidatos": [...]} or its English alias.
type ReplaceCandidatesRequest struct {
	Candidates []CandidateRequest
}

func (r *ReplaceCandidatesRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Candidatos json.RawMessage `json:"candidatos"`
		Candidates json.RawMessage `json:"candidates"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	payload := raw.Candidatos
	if len(bytes.TrimSpace(payload)) == 0 {
		payload = raw.Candidates
	}
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || payload[0] != '[' {
		return ErrCandidatesNotArray
	}
	var items []CandidateRequest
	if err := json.Unmarshal(payload, &items); err != nil {
		return err
	}
	r.Candidates = items
	return nil
}

type CastVoteRequest struct {
	CandidateID FlexibleID
}

func (r *CastVoteRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		CandidatoID *FlexibleID `json:"candidatoId"`
		CandidateID *FlexibleID `json:"candidate_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.CandidatoID != nil:
		r.CandidateID = *raw.CandidatoID
	case raw.CandidateID != nil:
		r.CandidateID = *raw.CandidateID
	default:
		r.CandidateID = 0
	}
	return nil
}

type CandidateResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Votes int64  `json:"votos"`
}

type CampaignResponse struct {
	ID          int64               `json:"id"`
	Title       string              `json:"titulo"`
	Description string              `json:"descripcion"`
	Status      string              `json:"estado"`
	Candidates  []CandidateResponse `json:"candidatos"`
	CreatedAt   time.Time           `json:"creadaEn"`
	UpdatedAt   time.Time           `json:"actualizadaEn"`
}

type VoteResponse struct {
	Message   string            `json:"mensaje"`
	Candidate CandidateResponse `json:"candidato"`
}

type TallyEntryResponse struct {
	Name  string `json:"nombre"`
	Votes int64  `json:"votos"`
}

type CloseCampaignResponse struct {
	Message       string               `json:"mensaje"`
	Results       []TallyEntryResponse `json:"resultados"`
	AlreadyClosed bool                 `json:"yaCerrada"`
}

func firstString(values ...*string) string {
	for _, value := range values {
		if value != nil {
			return *value
		}
	}
	return ""
}
