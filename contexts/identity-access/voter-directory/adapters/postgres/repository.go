package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/entities"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository stores voters through gorm. Uniqueness is enforced by the
// primary key and the unique indexes on email and identity document.
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
	return r.db.WithContext(ctx).AutoMigrate(&voterModel{})
}

func (r *Repository) CreateVoter(ctx context.Context, voter entities.Voter) error {
	row := voterModelFromEntity(voter)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := identityTaken(tx, row.Email, row.IdentityDocument, row.RegistrationNumber)
		if err != nil {
			return err
		}
		if taken {
			return domainerrors.ErrDuplicateIdentity
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn("voter insert hit unique constraint",
				"event", "voter_repository_unique_violation",
				"module", "identity-access/voter-directory",
				"layer", "adapter",
				"registration_number", row.RegistrationNumber,
			)
			return domainerrors.ErrDuplicateIdentity
		}
		return err
	}
	return nil
}

func (r *Repository) IdentityTaken(
	ctx context.Context,
	email string,
	identityDocument string,
	registrationNumber string,
) (bool, error) {
	return identityTaken(r.db.WithContext(ctx), email, identityDocument, registrationNumber)
}

func (r *Repository) GetVoterByRegistration(ctx context.Context, registrationNumber string) (entities.Voter, error) {
	var row voterModel
	err := r.db.WithContext(ctx).
		Where("registration_number = ?", strings.TrimSpace(registrationNumber)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Voter{}, domainerrors.ErrVoterNotFound
		}
		return entities.Voter{}, err
	}
	return row.toEntity(), nil
}

func identityTaken(db *gorm.DB, email string, identityDocument string, registrationNumber string) (bool, error) {
	var count int64
	err := db.Model(&voterModel{}).
		Where("email = ? OR identity_document = ? OR registration_number = ?", email, identityDocument, registrationNumber).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type voterModel struct {
	RegistrationNumber string    `gorm:"column:registration_number;primaryKey"`
	Name               string    `gorm:"column:name"`
	Email              string    `gorm:"column:email;uniqueIndex:idx_voters_email"`
	IdentityDocument   string    `gorm:"column:identity_document;uniqueIndex:idx_voters_identity_document"`
	BirthDate          string    `gorm:"column:birth_date"`
	CredentialHash     string    `gorm:"column:credential_hash"`
	CreatedAt          time.Time `gorm:"column:created_at"`
}

func (voterModel) TableName() string {
	return "voters"
}

func voterModelFromEntity(voter entities.Voter) voterModel {
	return voterModel{
		RegistrationNumber: voter.RegistrationNumber,
		Name:               voter.Name,
		Email:              voter.Email,
		IdentityDocument:   voter.IdentityDocument,
		BirthDate:          voter.BirthDate,
		CredentialHash:     voter.CredentialHash,
		CreatedAt:          voter.CreatedAt.UTC(),
	}
}

func (m voterModel) toEntity() entities.Voter {
	return entities.Voter{
		RegistrationNumber: m.RegistrationNumber,
		Name:               m.Name,
		Email:              m.Email,
		IdentityDocument:   m.IdentityDocument,
		BirthDate:          m.BirthDate,
		CredentialHash:     m.CredentialHash,
		CreatedAt:          m.CreatedAt.UTC(),
	}
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
