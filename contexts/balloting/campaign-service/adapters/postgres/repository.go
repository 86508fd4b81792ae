package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/entities"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/errors"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/ports"
	"github.com/rlopezl29/proyectofinal/internal/shared/outbox"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const campaignSequenceName = "campaigns"

// Repository persists campaigns through gorm. Writes touching one campaign
// lock its row (FOR UPDATE on postgres) and vote increments are single
// UPDATE statements, so concurrent ballots never lose a count.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(
		&sequenceModel{},
		&campaignModel{},
		&candidateModel{},
		&participationModel{},
		&outboxModel{},
	)
}

func (r *Repository) CreateCampaign(ctx context.Context, campaign entities.Campaign) (entities.Campaign, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextCampaignID(tx)
		if err != nil {
			return err
		}
		campaign.ID = id
		row := campaignModelFromEntity(campaign)
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return insertCandidates(tx, campaign.ID, campaign.Candidates)
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	if campaign.Candidates == nil {
		campaign.Candidates = []entities.Candidate{}
	}
	return campaign, nil
}

func (r *Repository) GetCampaign(ctx context.Context, campaignID int64) (entities.Campaign, error) {
	return loadCampaign(r.db.WithContext(ctx), campaignID, false)
}

func (r *Repository) ListCampaigns(ctx context.Context) ([]entities.Campaign, error) {
	db := r.db.WithContext(ctx)
	var rows []campaignModel
	if err := db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	var candidateRows []candidateModel
	if err := db.Order("campaign_id ASC, position ASC").Find(&candidateRows).Error; err != nil {
		return nil, err
	}

	byCampaign := make(map[int64][]entities.Candidate, len(rows))
	for _, row := range candidateRows {
		byCampaign[row.CampaignID] = append(byCampaign[row.CampaignID], row.toEntity())
	}
	items := make([]entities.Campaign, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity(byCampaign[row.ID]))
	}
	return items, nil
}

func (r *Repository) DeleteCampaign(ctx context.Context, campaignID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", campaignID).Delete(&campaignModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrCampaignNotFound
		}
		if err := tx.Where("campaign_id = ?", campaignID).Delete(&candidateModel{}).Error; err != nil {
			return err
		}
		return tx.Where("campaign_id = ?", campaignID).Delete(&participationModel{}).Error
	})
}

func (r *Repository) SetCampaignStatus(
	ctx context.Context,
	campaignID int64,
	status entities.CampaignStatus,
	updatedAt time.Time,
) (entities.Campaign, error) {
	var campaign entities.Campaign
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadCampaign(tx, campaignID, true); err != nil {
			return err
		}
		if err := updateCampaignRow(tx, campaignID, map[string]any{
			"status":     string(status),
			"updated_at": updatedAt.UTC(),
		}); err != nil {
			return err
		}
		var err error
		campaign, err = loadCampaign(tx, campaignID, false)
		return err
	})
	return campaign, err
}

func (r *Repository) ReplaceCandidates(
	ctx context.Context,
	campaignID int64,
	candidates []entities.Candidate,
	updatedAt time.Time,
) (entities.Campaign, error) {
	var campaign entities.Campaign
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := loadCampaign(tx, campaignID, true)
		if err != nil {
			return err
		}
		if current.Status == entities.CampaignStatusClosed {
			return domainerrors.ErrCampaignClosed
		}
		if err := tx.Where("campaign_id = ?", campaignID).Delete(&candidateModel{}).Error; err != nil {
			return err
		}
		if err := insertCandidates(tx, campaignID, candidates); err != nil {
			return err
		}
		if err := updateCampaignRow(tx, campaignID, map[string]any{"updated_at": updatedAt.UTC()}); err != nil {
			return err
		}
		campaign, err = loadCampaign(tx, campaignID, false)
		return err
	})
	return campaign, err
}

func (r *Repository) RemoveCandidate(
	ctx context.Context,
	campaignID int64,
	candidateID int64,
	updatedAt time.Time,
) (entities.Campaign, error) {
	var campaign entities.Campaign
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := loadCampaign(tx, campaignID, true)
		if err != nil {
			return err
		}
		if current.CandidateIndex(candidateID) < 0 {
			return domainerrors.ErrCandidateNotFound
		}
		if current.Status == entities.CampaignStatusClosed {
			return domainerrors.ErrCampaignClosed
		}
		if err := tx.Where("campaign_id = ? AND candidate_id = ?", campaignID, candidateID).
			Delete(&candidateModel{}).
			Error; err != nil {
			return err
		}
		if err := updateCampaignRow(tx, campaignID, map[string]any{"updated_at": updatedAt.UTC()}); err != nil {
			return err
		}
		campaign, err = loadCampaign(tx, campaignID, false)
		return err
	})
	return campaign, err
}

func (r *Repository) CastBallot(ctx context.Context, ballot entities.Ballot) (entities.Candidate, error) {
	var candidate entities.Candidate
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		campaign, err := loadCampaign(tx, ballot.CampaignID, true)
		if err != nil {
			return err
		}
		if _, err := campaign.AdmitVote(ballot.CandidateID); err != nil {
			return err
		}

		if ballot.VoterID != "" {
			participation := participationModel{
				CampaignID: ballot.CampaignID,
				VoterID:    ballot.VoterID,
				CastAt:     ballot.CastAt.UTC(),
			}
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&participation)
			if result.Error != nil {
				if isUniqueViolation(result.Error) {
					return domainerrors.ErrAlreadyVoted
				}
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerrors.ErrAlreadyVoted
			}
		}

		result := tx.Model(&candidateModel{}).
			Where("campaign_id = ? AND candidate_id = ?", ballot.CampaignID, ballot.CandidateID).
			Update("votes", gorm.Expr("votes + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrCandidateNotFound
		}

		var row candidateModel
		if err := tx.Where("campaign_id = ? AND candidate_id = ?", ballot.CampaignID, ballot.CandidateID).
			First(&row).
			Error; err != nil {
			return err
		}
		candidate = row.toEntity()
		return nil
	})
	return candidate, err
}

func (r *Repository) CloseCampaign(ctx context.Context, campaignID int64, closedAt time.Time) (entities.Campaign, bool, error) {
	var (
		campaign      entities.Campaign
		alreadyClosed bool
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := loadCampaign(tx, campaignID, true)
		if err != nil {
			return err
		}
		alreadyClosed = current.Status == entities.CampaignStatusClosed
		if alreadyClosed {
			campaign = current
			return nil
		}
		if err := updateCampaignRow(tx, campaignID, map[string]any{
			"status":     string(entities.CampaignStatusClosed),
			"updated_at": closedAt.UTC(),
		}); err != nil {
			return err
		}
		campaign, err = loadCampaign(tx, campaignID, false)
		return err
	})
	return campaign, alreadyClosed, err
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxModel{
		OutboxID:     strings.TrimSpace(envelope.EventID),
		EventType:    strings.TrimSpace(envelope.EventType),
		PartitionKey: strings.TrimSpace(envelope.PartitionKey),
		Payload:      payload,
		Status:       outbox.StatusPending,
		CreatedAt:    envelope.OccurredAt.UTC(),
	}
	if row.OutboxID == "" {
		row.OutboxID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "outbox_id"}},
			DoNothing: true,
		}).
		Create(&row).
		Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outbox.StatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outbox.StatusPublished,
			"published_at": publishedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidInput
	}
	return nil
}

// nextCampaignID bumps the persisted counter. The UPDATE takes the row lock
// before the read, so concurrent creates get distinct ids.
func nextCampaignID(tx *gorm.DB) (int64, error) {
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&sequenceModel{Name: campaignSequenceName, Value: 0}).
		Error; err != nil {
		return 0, err
	}
	if err := tx.Model(&sequenceModel{}).
		Where("name = ?", campaignSequenceName).
		Update("value", gorm.Expr("value + 1")).
		Error; err != nil {
		return 0, err
	}
	var seq sequenceModel
	if err := tx.Where("name = ?", campaignSequenceName).First(&seq).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}

func loadCampaign(db *gorm.DB, campaignID int64, lock bool) (entities.Campaign, error) {
	query := db
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var row campaignModel
	if err := query.Where("id = ?", campaignID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}

	var candidateRows []candidateModel
	if err := db.Where("campaign_id = ?", campaignID).
		Order("position ASC").
		Find(&candidateRows).
		Error; err != nil {
		return entities.Campaign{}, err
	}
	candidates := make([]entities.Candidate, 0, len(candidateRows))
	for _, candidateRow := range candidateRows {
		candidates = append(candidates, candidateRow.toEntity())
	}
	return row.toEntity(candidates), nil
}

func insertCandidates(tx *gorm.DB, campaignID int64, candidates []entities.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}
	rows := make([]candidateModel, 0, len(candidates))
	for i, candidate := range candidates {
		rows = append(rows, candidateModel{
			CampaignID:  campaignID,
			CandidateID: candidate.ID,
			Position:    i,
			Name:        candidate.Name,
			Votes:       candidate.Votes,
		})
	}
	return tx.Create(&rows).Error
}

func updateCampaignRow(tx *gorm.DB, campaignID int64, updates map[string]any) error {
	result := tx.Model(&campaignModel{}).Where("id = ?", campaignID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

// isUniqueViolation covers postgres (23505), gorm's translated error and the
// sqlite driver message.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
