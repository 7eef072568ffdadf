package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// friendshipRepository implements the repository.FriendshipRepository interface.
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository is the constructor for friendshipRepository.
func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{
		db: db,
	}
}

// CreateEdge persists a new directional friendship edge.
func (repo *friendshipRepository) CreateEdge(ctx context.Context, edge *entity.FriendshipEdge) error {
	edgeM := fromFriendshipDomain(edge)

	if err := repo.db.WithContext(ctx).Create(edgeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFriendshipEdge
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid owner or peer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create friendship edge")
	}

	// Update the entity with generated values
	edge.ID = edgeM.ID
	edge.CreatedAt = edgeM.CreatedAt
	edge.UpdatedAt = edgeM.UpdatedAt

	return nil
}

// FindEdgeByID retrieves an edge by its unique ID.
func (repo *friendshipRepository) FindEdgeByID(ctx context.Context, id uuid.UUID) (*entity.FriendshipEdge, error) {
	var edgeM model.FriendshipEdgeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&edgeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendshipEdgeNotFound
		}

		return nil, errors.Wrap(err, "failed to find friendship edge by ID")
	}

	return toFriendshipDomain(&edgeM), nil
}

// FindEdge retrieves the single directional edge owner→peer.
func (repo *friendshipRepository) FindEdge(ctx context.Context, ownerID, peerID uuid.UUID) (*entity.FriendshipEdge, error) {
	var edgeM model.FriendshipEdgeModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND peer_id = ?", ownerID, peerID).
		First(&edgeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendshipEdgeNotFound
		}

		return nil, errors.Wrap(err, "failed to find friendship edge by owner and peer")
	}

	return toFriendshipDomain(&edgeM), nil
}

// FindEdgesBetween retrieves every edge between the pair, both directions.
func (repo *friendshipRepository) FindEdgesBetween(ctx context.Context, a, b uuid.UUID) ([]*entity.FriendshipEdge, error) {
	var edgeModels []*model.FriendshipEdgeModel

	if err := repo.db.WithContext(ctx).
		Where("(owner_id = ? AND peer_id = ?) OR (owner_id = ? AND peer_id = ?)", a, b, b, a).
		Find(&edgeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find friendship edges between pair")
	}

	edges := make([]*entity.FriendshipEdge, 0, len(edgeModels))
	for _, edgeM := range edgeModels {
		edges = append(edges, toFriendshipDomain(edgeM))
	}

	return edges, nil
}

// FindAcceptedByOwner retrieves the owner's outgoing accepted edges.
func (repo *friendshipRepository) FindAcceptedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.FriendshipEdge, error) {
	var edgeModels []*model.FriendshipEdgeModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND status = ?", ownerID, string(entity.FriendshipAccepted)).
		Order("created_at DESC").
		Find(&edgeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accepted edges by owner")
	}

	edges := make([]*entity.FriendshipEdge, 0, len(edgeModels))
	for _, edgeM := range edgeModels {
		edges = append(edges, toFriendshipDomain(edgeM))
	}

	return edges, nil
}

// FindAcceptedByPeer retrieves the accepted edges pointing at the peer.
func (repo *friendshipRepository) FindAcceptedByPeer(ctx context.Context, peerID uuid.UUID) ([]*entity.FriendshipEdge, error) {
	var edgeModels []*model.FriendshipEdgeModel

	if err := repo.db.WithContext(ctx).
		Where("peer_id = ? AND status = ?", peerID, string(entity.FriendshipAccepted)).
		Find(&edgeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accepted edges by peer")
	}

	edges := make([]*entity.FriendshipEdge, 0, len(edgeModels))
	for _, edgeM := range edgeModels {
		edges = append(edges, toFriendshipDomain(edgeM))
	}

	return edges, nil
}

// FindPendingByPeer retrieves incoming pending requests for a user.
func (repo *friendshipRepository) FindPendingByPeer(ctx context.Context, peerID uuid.UUID) ([]*entity.FriendshipEdge, error) {
	var edgeModels []*model.FriendshipEdgeModel

	if err := repo.db.WithContext(ctx).
		Where("peer_id = ? AND status = ?", peerID, string(entity.FriendshipPending)).
		Order("created_at DESC").
		Find(&edgeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending edges by peer")
	}

	edges := make([]*entity.FriendshipEdge, 0, len(edgeModels))
	for _, edgeM := range edgeModels {
		edges = append(edges, toFriendshipDomain(edgeM))
	}

	return edges, nil
}

// AcceptedEdgeExists reports whether an accepted edge owner→peer exists.
func (repo *friendshipRepository) AcceptedEdgeExists(ctx context.Context, ownerID, peerID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FriendshipEdgeModel{}).
		Where("owner_id = ? AND peer_id = ? AND status = ?", ownerID, peerID, string(entity.FriendshipAccepted)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check accepted edge existence")
	}

	return count > 0, nil
}

// UpdateEdge persists changes to an existing edge.
func (repo *friendshipRepository) UpdateEdge(ctx context.Context, edge *entity.FriendshipEdge) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FriendshipEdgeModel{}).
		Where("id = ?", edge.ID).
		Updates(map[string]any{
			"status":         string(edge.Status),
			"share_location": edge.ShareLocation,
			"close_friend":   edge.CloseFriend,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update friendship edge")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFriendshipEdgeNotFound
	}

	return nil
}

// DeleteEdge removes a single edge by ID.
func (repo *friendshipRepository) DeleteEdge(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FriendshipEdgeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete friendship edge")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFriendshipEdgeNotFound
	}

	return nil
}

// DeleteEdgesBetween removes every edge between the pair, both directions.
func (repo *friendshipRepository) DeleteEdgesBetween(ctx context.Context, a, b uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("(owner_id = ? AND peer_id = ?) OR (owner_id = ? AND peer_id = ?)", a, b, b, a).
		Delete(&model.FriendshipEdgeModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete friendship edges between pair")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toFriendshipDomain converts a GORM FriendshipEdgeModel to a domain FriendshipEdge entity.
func toFriendshipDomain(data *model.FriendshipEdgeModel) *entity.FriendshipEdge {
	if data == nil {
		return nil
	}

	return &entity.FriendshipEdge{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		PeerID:        data.PeerID,
		Status:        entity.FriendshipStatus(data.Status),
		RequestedBy:   data.RequestedBy,
		ShareLocation: data.ShareLocation,
		CloseFriend:   data.CloseFriend,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromFriendshipDomain converts a domain FriendshipEdge entity to a GORM FriendshipEdgeModel.
func fromFriendshipDomain(data *entity.FriendshipEdge) *model.FriendshipEdgeModel {
	if data == nil {
		return nil
	}

	return &model.FriendshipEdgeModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		PeerID:        data.PeerID,
		Status:        string(data.Status),
		RequestedBy:   data.RequestedBy,
		ShareLocation: data.ShareLocation,
		CloseFriend:   data.CloseFriend,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
