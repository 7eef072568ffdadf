package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	mockRepo "beacon/internal/mocks/repository"
	mockSvc "beacon/internal/mocks/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type friendshipServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	friendshipRepo *mockRepo.MockFriendshipRepository
	userRepo       *mockRepo.MockUserRepository
	eventPublisher *mockSvc.MockEventPublisher
	qrcodeService  *mockSvc.MockQRCodeService
}

func newFriendshipService(t *testing.T) (usecase.FriendshipUsecase, *friendshipServiceMocks) {
	t.Helper()

	mocks := &friendshipServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		friendshipRepo: mockRepo.NewMockFriendshipRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
		qrcodeService:  mockSvc.NewMockQRCodeService(t),
	}

	svc := NewFriendshipService(FriendshipServiceParams{
		TxManager:      mocks.txManager,
		FriendshipRepo: mocks.friendshipRepo,
		UserRepo:       mocks.userRepo,
		EventPublisher: mocks.eventPublisher,
		QRCodeService:  mocks.qrcodeService,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, mocks
}

// expectTransaction makes the transaction manager run the callback against the
// mocked repository factory, standing in for a real database transaction.
func (m *friendshipServiceMocks) expectTransaction() {
	m.factory.EXPECT().NewFriendshipRepository().Return(m.friendshipRepo).Maybe()
	m.factory.EXPECT().NewUserRepository().Return(m.userRepo).Maybe()
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func activeUser(id uuid.UUID, name string) *entity.User {
	return &entity.User{
		ID:   id,
		Name: name,
		Privacy: entity.UserPrivacy{
			LocationSharingMode: entity.SharingModeLive,
		},
	}
}

func TestFriendshipService_SendRequest_CreatesPendingEdge(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	peerID := uuid.New()

	mocks.expectTransaction()
	mocks.userRepo.EXPECT().FindUserByID(ctx, peerID).Return(activeUser(peerID, "Peer"), nil)
	mocks.friendshipRepo.EXPECT().FindEdgesBetween(ctx, requesterID, peerID).Return(nil, nil)
	mocks.friendshipRepo.EXPECT().
		CreateEdge(ctx, mock.AnythingOfType("*entity.FriendshipEdge")).
		RunAndReturn(func(_ context.Context, edge *entity.FriendshipEdge) error {
			assert.Equal(t, requesterID, edge.OwnerID)
			assert.Equal(t, peerID, edge.PeerID)
			assert.Equal(t, entity.FriendshipPending, edge.Status)
			assert.Equal(t, requesterID, edge.RequestedBy)
			assert.True(t, edge.ShareLocation)
			return nil
		})

	output, err := svc.SendRequest(ctx, requesterID, &usecase.SendFriendRequestInput{PeerID: peerID})
	require.NoError(t, err)
	assert.Equal(t, requesterID, output.RequesterID)
	assert.Equal(t, peerID, output.PeerID)
	assert.Equal(t, string(entity.FriendshipPending), output.Status)
}

func TestFriendshipService_SendRequest_ToSelf(t *testing.T) {
	svc, _ := newFriendshipService(t)

	userID := uuid.New()
	_, err := svc.SendRequest(context.Background(), userID, &usecase.SendFriendRequestInput{PeerID: userID})
	assert.ErrorIs(t, err, domainerrors.ErrSelfFriendRequest)
}

func TestFriendshipService_SendRequest_PeerNotFound(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	peerID := uuid.New()

	mocks.expectTransaction()
	mocks.userRepo.EXPECT().FindUserByID(ctx, peerID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.SendRequest(ctx, requesterID, &usecase.SendFriendRequestInput{PeerID: peerID})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestFriendshipService_SendRequest_AlreadyFriends(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	peerID := uuid.New()

	mocks.expectTransaction()
	mocks.userRepo.EXPECT().FindUserByID(ctx, peerID).Return(activeUser(peerID, "Peer"), nil)
	mocks.friendshipRepo.EXPECT().FindEdgesBetween(ctx, requesterID, peerID).Return([]*entity.FriendshipEdge{
		{ID: uuid.New(), OwnerID: requesterID, PeerID: peerID, Status: entity.FriendshipAccepted},
		{ID: uuid.New(), OwnerID: peerID, PeerID: requesterID, Status: entity.FriendshipAccepted},
	}, nil)

	_, err := svc.SendRequest(ctx, requesterID, &usecase.SendFriendRequestInput{PeerID: peerID})
	assert.ErrorIs(t, err, domainerrors.ErrFriendRequestConflict)
}

func TestFriendshipService_SendRequest_ReversePending(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	peerID := uuid.New()

	mocks.expectTransaction()
	mocks.userRepo.EXPECT().FindUserByID(ctx, peerID).Return(activeUser(peerID, "Peer"), nil)
	mocks.friendshipRepo.EXPECT().FindEdgesBetween(ctx, requesterID, peerID).Return([]*entity.FriendshipEdge{
		{ID: uuid.New(), OwnerID: peerID, PeerID: requesterID, Status: entity.FriendshipPending, RequestedBy: peerID},
	}, nil)

	_, err := svc.SendRequest(ctx, requesterID, &usecase.SendFriendRequestInput{PeerID: peerID})
	assert.ErrorIs(t, err, domainerrors.ErrFriendRequestPending)
}

func TestFriendshipService_SendRequest_BlockedPair(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	peerID := uuid.New()

	mocks.expectTransaction()
	mocks.userRepo.EXPECT().FindUserByID(ctx, peerID).Return(activeUser(peerID, "Peer"), nil)
	mocks.friendshipRepo.EXPECT().FindEdgesBetween(ctx, requesterID, peerID).Return([]*entity.FriendshipEdge{
		{ID: uuid.New(), OwnerID: peerID, PeerID: requesterID, Status: entity.FriendshipBlocked},
	}, nil)

	_, err := svc.SendRequest(ctx, requesterID, &usecase.SendFriendRequestInput{PeerID: peerID})
	assert.ErrorIs(t, err, domainerrors.ErrFriendRequestBlocked)
}

func TestFriendshipService_SendRequest_PurgesStaleDeclinedEdge(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	peerID := uuid.New()
	staleID := uuid.New()

	mocks.expectTransaction()
	mocks.userRepo.EXPECT().FindUserByID(ctx, peerID).Return(activeUser(peerID, "Peer"), nil)
	mocks.friendshipRepo.EXPECT().FindEdgesBetween(ctx, requesterID, peerID).Return([]*entity.FriendshipEdge{
		{ID: staleID, OwnerID: peerID, PeerID: requesterID, Status: entity.FriendshipDeclined},
	}, nil)
	mocks.friendshipRepo.EXPECT().DeleteEdge(ctx, staleID).Return(nil)
	mocks.friendshipRepo.EXPECT().CreateEdge(ctx, mock.AnythingOfType("*entity.FriendshipEdge")).Return(nil)

	_, err := svc.SendRequest(ctx, requesterID, &usecase.SendFriendRequestInput{PeerID: peerID})
	require.NoError(t, err)
}

func TestFriendshipService_AcceptRequest_SyncsBothEdgesAndCounters(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()
	requestID := uuid.New()

	pending := &entity.FriendshipEdge{
		ID:          requestID,
		OwnerID:     requesterID,
		PeerID:      recipientID,
		Status:      entity.FriendshipPending,
		RequestedBy: requesterID,
	}

	mocks.expectTransaction()
	mocks.friendshipRepo.EXPECT().FindEdgeByID(ctx, requestID).Return(pending, nil)
	mocks.friendshipRepo.EXPECT().
		UpdateEdge(ctx, mock.AnythingOfType("*entity.FriendshipEdge")).
		RunAndReturn(func(_ context.Context, edge *entity.FriendshipEdge) error {
			assert.Equal(t, entity.FriendshipAccepted, edge.Status)
			return nil
		}).
		Once()
	mocks.friendshipRepo.EXPECT().
		FindEdge(ctx, recipientID, requesterID).
		Return(nil, repository.ErrFriendshipEdgeNotFound)
	mocks.friendshipRepo.EXPECT().
		CreateEdge(ctx, mock.AnythingOfType("*entity.FriendshipEdge")).
		RunAndReturn(func(_ context.Context, edge *entity.FriendshipEdge) error {
			assert.Equal(t, recipientID, edge.OwnerID)
			assert.Equal(t, requesterID, edge.PeerID)
			assert.Equal(t, entity.FriendshipAccepted, edge.Status)
			assert.True(t, edge.ShareLocation)
			return nil
		})
	mocks.userRepo.EXPECT().AdjustFriendsCount(ctx, requesterID, 1).Return(nil)
	mocks.userRepo.EXPECT().AdjustFriendsCount(ctx, recipientID, 1).Return(nil)

	// publish path, outside the transaction
	mocks.userRepo.EXPECT().FindUserByID(ctx, recipientID).Return(activeUser(recipientID, "Bob"), nil)
	mocks.eventPublisher.EXPECT().
		PublishFriendEvent(ctx, mock.AnythingOfType("*service.FriendEvent")).
		RunAndReturn(func(_ context.Context, event *service.FriendEvent) error {
			assert.Equal(t, service.FriendEventAccepted, event.Type)
			assert.Equal(t, recipientID.String(), event.ActorID)
			assert.Equal(t, requesterID.String(), event.RecipientID)
			return nil
		})

	require.NoError(t, svc.AcceptRequest(ctx, recipientID, requestID))
}

func TestFriendshipService_AcceptRequest_ResyncsExistingReciprocal(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()
	requestID := uuid.New()

	pending := &entity.FriendshipEdge{
		ID:      requestID,
		OwnerID: requesterID,
		PeerID:  recipientID,
		Status:  entity.FriendshipPending,
	}
	reciprocal := &entity.FriendshipEdge{
		ID:      uuid.New(),
		OwnerID: recipientID,
		PeerID:  requesterID,
		Status:  entity.FriendshipPending,
	}

	mocks.expectTransaction()
	mocks.friendshipRepo.EXPECT().FindEdgeByID(ctx, requestID).Return(pending, nil)
	mocks.friendshipRepo.EXPECT().UpdateEdge(ctx, pending).Return(nil).Once()
	mocks.friendshipRepo.EXPECT().FindEdge(ctx, recipientID, requesterID).Return(reciprocal, nil)
	mocks.friendshipRepo.EXPECT().UpdateEdge(ctx, reciprocal).Return(nil).Once()
	mocks.userRepo.EXPECT().AdjustFriendsCount(ctx, requesterID, 1).Return(nil)
	mocks.userRepo.EXPECT().AdjustFriendsCount(ctx, recipientID, 1).Return(nil)
	mocks.userRepo.EXPECT().FindUserByID(ctx, recipientID).Return(activeUser(recipientID, "Bob"), nil)
	mocks.eventPublisher.EXPECT().PublishFriendEvent(ctx, mock.Anything).Return(nil)

	require.NoError(t, svc.AcceptRequest(ctx, recipientID, requestID))
	assert.Equal(t, entity.FriendshipAccepted, reciprocal.Status)
}

func TestFriendshipService_AcceptRequest_ByRequesterForbidden(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	requestID := uuid.New()

	pending := &entity.FriendshipEdge{
		ID:      requestID,
		OwnerID: requesterID,
		PeerID:  uuid.New(),
		Status:  entity.FriendshipPending,
	}

	mocks.expectTransaction()
	mocks.friendshipRepo.EXPECT().FindEdgeByID(ctx, requestID).Return(pending, nil)

	err := svc.AcceptRequest(ctx, requesterID, requestID)
	assert.ErrorIs(t, err, domainerrors.ErrNotRequestRecipient)
}

func TestFriendshipService_AcceptRequest_NotFound(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	requestID := uuid.New()

	mocks.expectTransaction()
	mocks.friendshipRepo.EXPECT().FindEdgeByID(ctx, requestID).Return(nil, repository.ErrFriendshipEdgeNotFound)

	err := svc.AcceptRequest(ctx, uuid.New(), requestID)
	assert.ErrorIs(t, err, domainerrors.ErrFriendRequestNotFound)
}

func TestFriendshipService_DeclineRequest_DeletesEdge(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	recipientID := uuid.New()
	requestID := uuid.New()

	pending := &entity.FriendshipEdge{
		ID:      requestID,
		OwnerID: uuid.New(),
		PeerID:  recipientID,
		Status:  entity.FriendshipPending,
	}

	mocks.expectTransaction()
	mocks.friendshipRepo.EXPECT().FindEdgeByID(ctx, requestID).Return(pending, nil)
	mocks.friendshipRepo.EXPECT().DeleteEdge(ctx, requestID).Return(nil)

	require.NoError(t, svc.DeclineRequest(ctx, recipientID, requestID))
}

func TestFriendshipService_DeclineRequest_ByRequesterForbidden(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	requestID := uuid.New()

	pending := &entity.FriendshipEdge{
		ID:      requestID,
		OwnerID: requesterID,
		PeerID:  uuid.New(),
		Status:  entity.FriendshipPending,
	}

	mocks.expectTransaction()
	mocks.friendshipRepo.EXPECT().FindEdgeByID(ctx, requestID).Return(pending, nil)

	err := svc.DeclineRequest(ctx, requesterID, requestID)
	assert.ErrorIs(t, err, domainerrors.ErrNotRequestRecipient)
}

func TestFriendshipService_RemoveFriend_DeletesBothEdges(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	userID := uuid.New()
	friendID := uuid.New()

	mocks.expectTransaction()
	mocks.friendshipRepo.EXPECT().FindEdgesBetween(ctx, userID, friendID).Return([]*entity.FriendshipEdge{
		{ID: uuid.New(), OwnerID: userID, PeerID: friendID, Status: entity.FriendshipAccepted},
		{ID: uuid.New(), OwnerID: friendID, PeerID: userID, Status: entity.FriendshipAccepted},
	}, nil)
	mocks.friendshipRepo.EXPECT().DeleteEdgesBetween(ctx, userID, friendID).Return(2, nil)
	mocks.userRepo.EXPECT().AdjustFriendsCount(ctx, userID, -1).Return(nil)
	mocks.userRepo.EXPECT().AdjustFriendsCount(ctx, friendID, -1).Return(nil)
	mocks.userRepo.EXPECT().FindUserByID(ctx, userID).Return(activeUser(userID, "Alice"), nil)
	mocks.eventPublisher.EXPECT().
		PublishFriendEvent(ctx, mock.AnythingOfType("*service.FriendEvent")).
		RunAndReturn(func(_ context.Context, event *service.FriendEvent) error {
			assert.Equal(t, service.FriendEventRemoved, event.Type)
			return nil
		})

	require.NoError(t, svc.RemoveFriend(ctx, userID, friendID))
}

func TestFriendshipService_RemoveFriend_NotFriends(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	userID := uuid.New()
	friendID := uuid.New()

	mocks.expectTransaction()
	mocks.friendshipRepo.EXPECT().FindEdgesBetween(ctx, userID, friendID).Return([]*entity.FriendshipEdge{
		{ID: uuid.New(), OwnerID: userID, PeerID: friendID, Status: entity.FriendshipPending},
	}, nil)

	err := svc.RemoveFriend(ctx, userID, friendID)
	assert.ErrorIs(t, err, domainerrors.ErrFriendshipNotFound)
}

func TestFriendshipService_ListFriends(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	userID := uuid.New()
	friendID := uuid.New()
	since := time.Now().Add(-24 * time.Hour)

	mocks.friendshipRepo.EXPECT().FindAcceptedByOwner(ctx, userID).Return([]*entity.FriendshipEdge{
		{ID: uuid.New(), OwnerID: userID, PeerID: friendID, Status: entity.FriendshipAccepted, ShareLocation: true, CloseFriend: true, UpdatedAt: since},
	}, nil)
	mocks.userRepo.EXPECT().FindUsersByIDs(ctx, []uuid.UUID{friendID}).Return(map[uuid.UUID]*entity.User{
		friendID: activeUser(friendID, "Bob"),
	}, nil)

	friends, err := svc.ListFriends(ctx, userID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, friendID, friends[0].FriendID)
	assert.Equal(t, "Bob", friends[0].Name)
	assert.True(t, friends[0].ShareLocation)
	assert.True(t, friends[0].CloseFriend)
}

func TestFriendshipService_ListFriends_SkipsMissingDirectoryRows(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	userID := uuid.New()
	ghostID := uuid.New()

	mocks.friendshipRepo.EXPECT().FindAcceptedByOwner(ctx, userID).Return([]*entity.FriendshipEdge{
		{ID: uuid.New(), OwnerID: userID, PeerID: ghostID, Status: entity.FriendshipAccepted},
	}, nil)
	mocks.userRepo.EXPECT().FindUsersByIDs(ctx, []uuid.UUID{ghostID}).Return(map[uuid.UUID]*entity.User{}, nil)

	friends, err := svc.ListFriends(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestFriendshipService_ListPendingRequests(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	userID := uuid.New()
	requesterID := uuid.New()
	ghostID := uuid.New()

	mocks.friendshipRepo.EXPECT().FindPendingByPeer(ctx, userID).Return([]*entity.FriendshipEdge{
		{ID: uuid.New(), OwnerID: requesterID, PeerID: userID, Status: entity.FriendshipPending},
		{ID: uuid.New(), OwnerID: ghostID, PeerID: userID, Status: entity.FriendshipPending},
	}, nil)
	mocks.userRepo.EXPECT().FindUsersByIDs(ctx, []uuid.UUID{requesterID, ghostID}).Return(map[uuid.UUID]*entity.User{
		requesterID: activeUser(requesterID, "Alice"),
	}, nil)

	requests, err := svc.ListPendingRequests(ctx, userID)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "Alice", requests[0].RequesterName)
	// A requester missing from the directory still shows up, just nameless.
	assert.Empty(t, requests[1].RequesterName)
}

func TestFriendshipService_AreFriends(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	a := uuid.New()
	b := uuid.New()

	mocks.friendshipRepo.EXPECT().AcceptedEdgeExists(ctx, a, b).Return(true, nil)

	ok, err := svc.AreFriends(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFriendshipService_UpdateShareSettings_TogglesShareLocation(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	userID := uuid.New()
	friendID := uuid.New()

	edge := &entity.FriendshipEdge{
		ID:            uuid.New(),
		OwnerID:       userID,
		PeerID:        friendID,
		Status:        entity.FriendshipAccepted,
		ShareLocation: true,
	}

	mocks.friendshipRepo.EXPECT().FindEdge(ctx, userID, friendID).Return(edge, nil)
	mocks.friendshipRepo.EXPECT().UpdateEdge(ctx, edge).Return(nil)
	mocks.userRepo.EXPECT().FindUserByID(ctx, friendID).Return(activeUser(friendID, "Bob"), nil)

	off := false
	output, err := svc.UpdateShareSettings(ctx, userID, friendID, &usecase.UpdateShareSettingsInput{ShareLocation: &off})
	require.NoError(t, err)
	assert.False(t, output.ShareLocation)
	assert.False(t, edge.ShareLocation)
}

func TestFriendshipService_UpdateShareSettings_NotAccepted(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	userID := uuid.New()
	friendID := uuid.New()

	edge := &entity.FriendshipEdge{
		ID:      uuid.New(),
		OwnerID: userID,
		PeerID:  friendID,
		Status:  entity.FriendshipPending,
	}

	mocks.friendshipRepo.EXPECT().FindEdge(ctx, userID, friendID).Return(edge, nil)

	on := true
	_, err := svc.UpdateShareSettings(ctx, userID, friendID, &usecase.UpdateShareSettingsInput{ShareLocation: &on})
	assert.ErrorIs(t, err, domainerrors.ErrNotFriends)
}

func TestFriendshipService_GenerateInviteQR(t *testing.T) {
	svc, mocks := newFriendshipService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().FindUserByID(ctx, userID).Return(activeUser(userID, "Alice"), nil)
	mocks.qrcodeService.EXPECT().GenerateInviteQR(userID).Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := svc.GenerateInviteQR(ctx, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
