package postgres

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// UpsertSnapshot overwrites the single snapshot row for the user.
// Last-writer-wins: concurrent or out-of-order retries simply replace the row.
func (repo *locationRepository) UpsertSnapshot(ctx context.Context, snapshot *entity.LocationSnapshot) error {
	snapshotM := fromSnapshotDomain(snapshot)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "accuracy_meters", "shared", "created_at", "expires_at"}),
		}).
		Create(snapshotM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert location snapshot")
	}

	return nil
}

// FindByUserID retrieves the raw snapshot for a user regardless of expiry or sharing flag.
func (repo *locationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.LocationSnapshot, error) {
	var snapshotM model.LocationSnapshotModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&snapshotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to find location snapshot by user ID")
	}

	return toSnapshotDomain(&snapshotM), nil
}

// FindActiveByUserIDs is the bulk lookup used for friend-list fan-in.
// One query for the whole friend list; expired or unshared rows never leave the store.
func (repo *locationRepository) FindActiveByUserIDs(ctx context.Context, userIDs []uuid.UUID, now time.Time) (map[uuid.UUID]*entity.LocationSnapshot, error) {
	snapshots := make(map[uuid.UUID]*entity.LocationSnapshot, len(userIDs))
	if len(userIDs) == 0 {
		return snapshots, nil
	}

	var snapshotModels []*model.LocationSnapshotModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND shared = ? AND expires_at > ?", userIDs, true, now).
		Find(&snapshotModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active snapshots by user IDs")
	}

	for _, snapshotM := range snapshotModels {
		snapshots[snapshotM.UserID] = toSnapshotDomain(snapshotM)
	}

	return snapshots, nil
}

// --- Mapper Functions ---

// toSnapshotDomain converts a GORM LocationSnapshotModel to a domain LocationSnapshot entity.
func toSnapshotDomain(data *model.LocationSnapshotModel) *entity.LocationSnapshot {
	if data == nil {
		return nil
	}

	return &entity.LocationSnapshot{
		UserID:         data.UserID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		AccuracyMeters: data.AccuracyMeters,
		Shared:         data.Shared,
		CreatedAt:      data.CreatedAt,
		ExpiresAt:      data.ExpiresAt,
	}
}

// fromSnapshotDomain converts a domain LocationSnapshot entity to a GORM LocationSnapshotModel.
func fromSnapshotDomain(data *entity.LocationSnapshot) *model.LocationSnapshotModel {
	if data == nil {
		return nil
	}

	return &model.LocationSnapshotModel{
		UserID:         data.UserID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		AccuracyMeters: data.AccuracyMeters,
		Shared:         data.Shared,
		CreatedAt:      data.CreatedAt,
		ExpiresAt:      data.ExpiresAt,
	}
}
