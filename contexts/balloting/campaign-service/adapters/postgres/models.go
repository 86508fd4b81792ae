package postgresadapter

import (
	"time"

	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/entities"
)

type sequenceModel struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value int64  `gorm:"column:value"`
}

func (sequenceModel) TableName() string {
	return "campaign_sequences"
}

type campaignModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement:false"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (campaignModel) TableName() string {
	return "campaigns"
}

func campaignModelFromEntity(campaign entities.Campaign) campaignModel {
	return campaignModel{
		ID:          campaign.ID,
		Title:       campaign.Title,
		Description: campaign.Description,
		Status:      string(campaign.Status),
		CreatedAt:   campaign.CreatedAt.UTC(),
		UpdatedAt:   campaign.UpdatedAt.UTC(),
	}
}

func (m campaignModel) toEntity(candidates []entities.Candidate) entities.Campaign {
	if candidates == nil {
		candidates = []entities.Candidate{}
	}
	return entities.Campaign{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entities.CampaignStatus(m.Status),
		Candidates:  candidates,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

type candidateModel struct {
	CampaignID  int64  `gorm:"column:campaign_id;primaryKey;autoIncrement:false"`
	CandidateID int64  `gorm:"column:candidate_id;primaryKey;autoIncrement:false"`
	Position    int    `gorm:"column:position"`
	Name        string `gorm:"column:name"`
	Votes       int64  `gorm:"column:votes"`
}

func (candidateModel) TableName() string {
	return "campaign_candidates"
}

func (m candidateModel) toEntity() entities.Candidate {
	return entities.Candidate{
		ID:    m.CandidateID,
		Name:  m.Name,
		Votes: m.Votes,
	}
}

// participationModel records that a voter cast a ballot, not which candidate
// the ballot went to.
type participationModel struct {
	CampaignID int64     `gorm:"column:campaign_id;primaryKey;autoIncrement:false"`
	VoterID    string    `gorm:"column:voter_id;primaryKey"`
	CastAt     time.Time `gorm:"column:cast_at"`
}

func (participationModel) TableName() string {
	return "campaign_participation"
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "campaign_outbox"
}
