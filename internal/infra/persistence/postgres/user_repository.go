package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
// The users table is owned by the external user service; this repository only
// reads directory fields and maintains the denormalized friends counter.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindUserByID retrieves a user with privacy settings by their unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindUsersByIDs retrieves users in bulk, keyed by ID.
func (repo *userRepository) FindUsersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.User, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*entity.User{}, nil
	}

	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by IDs")
	}

	users := make(map[uuid.UUID]*entity.User, len(userModels))
	for _, userM := range userModels {
		users[userM.ID] = toUserDomain(userM)
	}

	return users, nil
}

// AdjustFriendsCount atomically adds delta to the user's friends counter.
func (repo *userRepository) AdjustFriendsCount(ctx context.Context, userID uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("friends_count", gorm.Expr("GREATEST(friends_count + ?, 0)", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to adjust friends count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Suspended:    data.Suspended,
		FriendsCount: data.FriendsCount,
		Privacy: entity.UserPrivacy{
			LocationSharingMode: entity.SharingMode(data.LocationSharingMode),
			PrecisionMeters:     data.PrecisionMeters,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
