// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// friendshipService implements the FriendshipUsecase interface.
type friendshipService struct {
	txManager      repository.TransactionManager
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	eventPublisher service.EventPublisher
	qrcodeService  service.QRCodeService
	logger         *slog.Logger
}

// FriendshipServiceParams holds dependencies for FriendshipService, injected by Fx.
type FriendshipServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	FriendshipRepo repository.FriendshipRepository
	UserRepo       repository.UserRepository
	EventPublisher service.EventPublisher
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewFriendshipService is the constructor for friendshipService. It receives all dependencies as interfaces.
func NewFriendshipService(params FriendshipServiceParams) usecase.FriendshipUsecase {
	return &friendshipService{
		txManager:      params.TxManager,
		friendshipRepo: params.FriendshipRepo,
		userRepo:       params.UserRepo,
		eventPublisher: params.EventPublisher,
		qrcodeService:  params.QRCodeService,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *friendshipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendRequest creates a new pending friend request from the requester to the peer.
// Stale declined or blocked leftovers between the pair are purged first; a live
// pending or accepted edge in either direction makes the request a conflict.
func (srv *friendshipService) SendRequest(ctx context.Context, requesterID uuid.UUID, input *usecase.SendFriendRequestInput) (*usecase.FriendRequestOutput, error) {
	if requesterID == input.PeerID {
		return nil, errors.Wrap(domainerrors.ErrSelfFriendRequest, "cannot send a friend request to yourself")
	}

	var created *entity.FriendshipEdge
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		friendshipRepo := repoFactory.NewFriendshipRepository()
		userRepo := repoFactory.NewUserRepository()

		peer, err := userRepo.FindUserByID(ctx, input.PeerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "peer does not exist")
			}

			return errors.Wrap(err, "failed to find peer")
		}
		if peer.Suspended {
			return errors.Wrap(domainerrors.ErrUserSuspended, "peer account is suspended")
		}

		edges, err := friendshipRepo.FindEdgesBetween(ctx, requesterID, input.PeerID)
		if err != nil {
			return errors.Wrap(err, "failed to find edges between pair")
		}

		for _, edge := range edges {
			switch edge.Status {
			case entity.FriendshipBlocked:
				return errors.Wrap(domainerrors.ErrFriendRequestBlocked, "a blocked edge exists between the pair")
			case entity.FriendshipAccepted:
				return errors.Wrap(domainerrors.ErrFriendRequestConflict, "users are already friends")
			case entity.FriendshipPending:
				if edge.OwnerID == input.PeerID {
					return errors.Wrap(domainerrors.ErrFriendRequestPending, "peer already sent a request")
				}

				return errors.Wrap(domainerrors.ErrFriendRequestConflict, "request already pending")
			}
		}

		// Only stale declined edges remain at this point; purge them so the
		// fresh request starts clean.
		for _, edge := range edges {
			if err := friendshipRepo.DeleteEdge(ctx, edge.ID); err != nil {
				return errors.Wrap(err, "failed to purge stale edge")
			}
		}

		created = &entity.FriendshipEdge{
			ID:            uuid.New(),
			OwnerID:       requesterID,
			PeerID:        input.PeerID,
			Status:        entity.FriendshipPending,
			RequestedBy:   requesterID,
			ShareLocation: true,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}

		if err := friendshipRepo.CreateEdge(ctx, created); err != nil {
			if errors.Is(err, repository.ErrDuplicateFriendshipEdge) {
				return errors.Wrap(domainerrors.ErrFriendRequestConflict, "request already exists")
			}

			return errors.Wrap(err, "failed to create friendship edge")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Friend request rejected",
			slog.Any("requesterID", requesterID),
			slog.Any("peerID", input.PeerID),
			slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Friend request created",
		slog.Any("requestID", created.ID),
		slog.Any("requesterID", requesterID),
		slog.Any("peerID", input.PeerID))

	return &usecase.FriendRequestOutput{
		RequestID:   created.ID,
		RequesterID: created.OwnerID,
		PeerID:      created.PeerID,
		Status:      string(created.Status),
		CreatedAt:   created.CreatedAt,
	}, nil
}

// AcceptRequest transitions a pending request to accepted. Only the recipient
// may accept. Both directional edges end up accepted and the friends counters
// on both sides are incremented in the same transaction.
func (srv *friendshipService) AcceptRequest(ctx context.Context, actingUserID, requestID uuid.UUID) error {
	var requesterID uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		friendshipRepo := repoFactory.NewFriendshipRepository()
		userRepo := repoFactory.NewUserRepository()

		edge, err := friendshipRepo.FindEdgeByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrFriendshipEdgeNotFound) {
				return errors.Wrap(domainerrors.ErrFriendRequestNotFound, "request does not exist")
			}

			return errors.Wrap(err, "failed to find friendship edge")
		}

		if edge.Status != entity.FriendshipPending {
			return errors.Wrap(domainerrors.ErrFriendRequestNotFound, "request is not pending")
		}
		if edge.PeerID != actingUserID {
			return errors.Wrap(domainerrors.ErrNotRequestRecipient, "only the recipient may accept")
		}

		requesterID = edge.OwnerID

		edge.Status = entity.FriendshipAccepted
		edge.UpdatedAt = time.Now()
		if err := friendshipRepo.UpdateEdge(ctx, edge); err != nil {
			return errors.Wrap(err, "failed to update friendship edge")
		}

		// The reciprocal edge must carry the same status. A leftover row in
		// the opposite direction is resynced rather than duplicated.
		reciprocal, err := friendshipRepo.FindEdge(ctx, edge.PeerID, edge.OwnerID)
		switch {
		case err == nil:
			reciprocal.Status = entity.FriendshipAccepted
			reciprocal.UpdatedAt = time.Now()
			if err := friendshipRepo.UpdateEdge(ctx, reciprocal); err != nil {
				return errors.Wrap(err, "failed to sync reciprocal edge")
			}
		case errors.Is(err, repository.ErrFriendshipEdgeNotFound):
			reciprocal = edge.Reciprocal()
			reciprocal.CreatedAt = time.Now()
			reciprocal.UpdatedAt = time.Now()
			if err := friendshipRepo.CreateEdge(ctx, reciprocal); err != nil {
				return errors.Wrap(err, "failed to create reciprocal edge")
			}
		default:
			return errors.Wrap(err, "failed to find reciprocal edge")
		}

		if err := userRepo.AdjustFriendsCount(ctx, edge.OwnerID, 1); err != nil {
			return errors.Wrap(err, "failed to increment requester friends count")
		}
		if err := userRepo.AdjustFriendsCount(ctx, edge.PeerID, 1); err != nil {
			return errors.Wrap(err, "failed to increment recipient friends count")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Friend request accepted",
		slog.Any("requestID", requestID),
		slog.Any("actingUserID", actingUserID))

	srv.publishFriendEvent(ctx, service.FriendEventAccepted, actingUserID, requesterID)

	return nil
}

// DeclineRequest deletes a pending request outright. Only the recipient may
// decline; a later request between the same pair is then allowed.
func (srv *friendshipService) DeclineRequest(ctx context.Context, actingUserID, requestID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		friendshipRepo := repoFactory.NewFriendshipRepository()

		edge, err := friendshipRepo.FindEdgeByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrFriendshipEdgeNotFound) {
				return errors.Wrap(domainerrors.ErrFriendRequestNotFound, "request does not exist")
			}

			return errors.Wrap(err, "failed to find friendship edge")
		}

		if edge.Status != entity.FriendshipPending {
			return errors.Wrap(domainerrors.ErrFriendRequestNotFound, "request is not pending")
		}
		if edge.PeerID != actingUserID {
			return errors.Wrap(domainerrors.ErrNotRequestRecipient, "only the recipient may decline")
		}

		if err := friendshipRepo.DeleteEdge(ctx, edge.ID); err != nil {
			return errors.Wrap(err, "failed to delete friendship edge")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Friend request declined",
		slog.Any("requestID", requestID),
		slog.Any("actingUserID", actingUserID))

	return nil
}

// RemoveFriend deletes both directional edges of an accepted friendship and
// decrements the friends counters on both sides. Either party may remove.
func (srv *friendshipService) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		friendshipRepo := repoFactory.NewFriendshipRepository()
		userRepo := repoFactory.NewUserRepository()

		edges, err := friendshipRepo.FindEdgesBetween(ctx, userID, friendID)
		if err != nil {
			return errors.Wrap(err, "failed to find edges between pair")
		}

		accepted := 0
		for _, edge := range edges {
			if edge.Status == entity.FriendshipAccepted {
				accepted++
			}
		}
		if accepted != 2 {
			return errors.Wrap(domainerrors.ErrFriendshipNotFound, "users are not friends")
		}

		if _, err := friendshipRepo.DeleteEdgesBetween(ctx, userID, friendID); err != nil {
			return errors.Wrap(err, "failed to delete friendship edges")
		}

		if err := userRepo.AdjustFriendsCount(ctx, userID, -1); err != nil {
			return errors.Wrap(err, "failed to decrement friends count")
		}
		if err := userRepo.AdjustFriendsCount(ctx, friendID, -1); err != nil {
			return errors.Wrap(err, "failed to decrement friend's friends count")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Friendship removed",
		slog.Any("userID", userID),
		slog.Any("friendID", friendID))

	srv.publishFriendEvent(ctx, service.FriendEventRemoved, userID, friendID)

	return nil
}

// ListFriends returns the user's accepted friends with the user's own
// per-friend sharing settings.
func (srv *friendshipService) ListFriends(ctx context.Context, userID uuid.UUID) ([]*usecase.FriendOutput, error) {
	edges, err := srv.friendshipRepo.FindAcceptedByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find accepted edges")
	}

	peerIDs := make([]uuid.UUID, 0, len(edges))
	for _, edge := range edges {
		peerIDs = append(peerIDs, edge.PeerID)
	}

	peers, err := srv.userRepo.FindUsersByIDs(ctx, peerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find friend users")
	}

	friends := make([]*usecase.FriendOutput, 0, len(edges))
	for _, edge := range edges {
		peer, ok := peers[edge.PeerID]
		if !ok {
			// Directory row vanished out from under the edge; skip rather
			// than fail the whole listing.
			srv.log(ctx).Warn("Friend missing from user directory", slog.Any("peerID", edge.PeerID))

			continue
		}

		friends = append(friends, &usecase.FriendOutput{
			FriendID:      edge.PeerID,
			Name:          peer.Name,
			ShareLocation: edge.ShareLocation,
			CloseFriend:   edge.CloseFriend,
			FriendsSince:  edge.UpdatedAt,
		})
	}

	return friends, nil
}

// ListPendingRequests returns incoming requests awaiting the user's decision.
func (srv *friendshipService) ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]*usecase.PendingRequestOutput, error) {
	edges, err := srv.friendshipRepo.FindPendingByPeer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending requests")
	}

	requesterIDs := make([]uuid.UUID, 0, len(edges))
	for _, edge := range edges {
		requesterIDs = append(requesterIDs, edge.OwnerID)
	}

	requesters, err := srv.userRepo.FindUsersByIDs(ctx, requesterIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find requester users")
	}

	requests := make([]*usecase.PendingRequestOutput, 0, len(edges))
	for _, edge := range edges {
		requesterName := ""
		if requester, ok := requesters[edge.OwnerID]; ok {
			requesterName = requester.Name
		}

		requests = append(requests, &usecase.PendingRequestOutput{
			RequestID:     edge.ID,
			RequesterID:   edge.OwnerID,
			RequesterName: requesterName,
			CreatedAt:     edge.CreatedAt,
		})
	}

	return requests, nil
}

// AreFriends reports whether an accepted edge a→b exists. The status-sync
// invariant guarantees the reciprocal edge matches.
func (srv *friendshipService) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	exists, err := srv.friendshipRepo.AcceptedEdgeExists(ctx, a, b)
	if err != nil {
		return false, errors.Wrap(err, "failed to check accepted edge")
	}

	return exists, nil
}

// UpdateShareSettings updates the caller's outgoing edge toward the friend.
// Only the edge owner's own flags are touched; the reciprocal edge is left alone.
func (srv *friendshipService) UpdateShareSettings(ctx context.Context, userID, friendID uuid.UUID, input *usecase.UpdateShareSettingsInput) (*usecase.FriendOutput, error) {
	edge, err := srv.friendshipRepo.FindEdge(ctx, userID, friendID)
	if err != nil {
		if errors.Is(err, repository.ErrFriendshipEdgeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFriendshipNotFound, "no edge toward this user")
		}

		return nil, errors.Wrap(err, "failed to find friendship edge")
	}

	if edge.Status != entity.FriendshipAccepted {
		return nil, errors.Wrap(domainerrors.ErrNotFriends, "pair is not an accepted friendship")
	}

	if input.ShareLocation != nil {
		edge.ShareLocation = *input.ShareLocation
	}
	if input.CloseFriend != nil {
		edge.CloseFriend = *input.CloseFriend
	}
	edge.UpdatedAt = time.Now()

	if err := srv.friendshipRepo.UpdateEdge(ctx, edge); err != nil {
		return nil, errors.Wrap(err, "failed to update friendship edge")
	}

	peerName := ""
	if peer, err := srv.userRepo.FindUserByID(ctx, friendID); err == nil {
		peerName = peer.Name
	}

	return &usecase.FriendOutput{
		FriendID:      edge.PeerID,
		Name:          peerName,
		ShareLocation: edge.ShareLocation,
		CloseFriend:   edge.CloseFriend,
		FriendsSince:  edge.UpdatedAt,
	}, nil
}

// GenerateInviteQR returns a PNG QR code other users can scan to send this
// user a friend request.
func (srv *friendshipService) GenerateInviteQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if _, err := srv.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user does not exist")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	png, err := srv.qrcodeService.GenerateInviteQR(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite QR code")
	}

	return png, nil
}

// publishFriendEvent emits a friendship transition for the push worker.
// Publishing is best-effort: a broker failure never rolls back the transition.
func (srv *friendshipService) publishFriendEvent(ctx context.Context, eventType string, actorID, recipientID uuid.UUID) {
	actorName := ""
	if actor, err := srv.userRepo.FindUserByID(ctx, actorID); err == nil {
		actorName = actor.Name
	}

	event := &service.FriendEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		ActorID:     actorID.String(),
		RecipientID: recipientID.String(),
		ActorName:   actorName,
	}

	if err := srv.eventPublisher.PublishFriendEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish friend event",
			slog.String("type", eventType),
			slog.Any("error", err))
	}
}
