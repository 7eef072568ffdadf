package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	domainerrors "beacon/internal/domain/errors"
	mocksusecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gatewayMocks struct {
	friendshipUC *mocksusecase.MockFriendshipUsecase
	locationUC   *mocksusecase.MockLocationUsecase
}

func newTestGateway(t *testing.T) (*Gateway, *gatewayMocks) {
	t.Helper()

	m := &gatewayMocks{
		friendshipUC: mocksusecase.NewMockFriendshipUsecase(t),
		locationUC:   mocksusecase.NewMockLocationUsecase(t),
	}

	gateway := &Gateway{
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		friendshipUC:     m.friendshipUC,
		locationUC:       m.locationUC,
		hub:              NewHub(),
		registry:         NewTrackRegistry(),
		trackMaxDuration: 15 * time.Minute,
	}

	return gateway, m
}

func newTestClient(gateway *Gateway, userID uuid.UUID) *Client {
	client := &Client{
		id:      uuid.New().String(),
		userID:  userID,
		gateway: gateway,
		send:    make(chan []byte, 16),
	}
	gateway.hub.Register(client)

	return client
}

func readFrame(t *testing.T, client *Client) *Message {
	t.Helper()

	select {
	case data := <-client.send:
		msg := new(Message)
		require.NoError(t, json.Unmarshal(data, msg))

		return msg
	default:
		t.Fatal("expected a queued frame")

		return nil
	}
}

func decodeData(t *testing.T, msg *Message, target any) {
	t.Helper()

	raw, err := json.Marshal(msg.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, target))
}

func assertNoFrame(t *testing.T, client *Client) {
	t.Helper()

	select {
	case data := <-client.send:
		t.Fatalf("unexpected frame: %s", data)
	default:
	}
}

func trackFrame(friendID uuid.UUID, durationSec int) []byte {
	raw, _ := json.Marshal(map[string]any{
		"event": "track",
		"data":  map[string]any{"friend_id": friendID, "duration_sec": durationSec},
	})

	return raw
}

func pingFrame(lat, lng, accuracy float64) []byte {
	raw, _ := json.Marshal(map[string]any{
		"event": "ping",
		"data":  map[string]any{"lat": lat, "lng": lng, "accuracy_m": accuracy},
	})

	return raw
}

func TestClient_Track_AcksAndPushesInitialUpdate(t *testing.T) {
	gateway, m := newTestGateway(t)
	viewerID := uuid.New()
	friendID := uuid.New()
	client := newTestClient(gateway, viewerID)

	m.friendshipUC.EXPECT().
		AreFriends(mock.Anything, viewerID, friendID).
		Return(true, nil)
	m.locationUC.EXPECT().
		GetFriendLocation(mock.Anything, viewerID, friendID).
		Return(&usecase.FriendLocationOutput{
			UserID:         friendID,
			Latitude:       25.0330,
			Longitude:      121.5654,
			AccuracyMeters: 30,
			Timestamp:      time.Now(),
		}, nil)

	before := time.Now()
	client.handleMessage(context.Background(), trackFrame(friendID, 60))

	ack := readFrame(t, client)
	assert.Equal(t, eventTrackAck, ack.Event)

	var ackData trackAck
	decodeData(t, ack, &ackData)
	assert.True(t, ackData.OK)
	assert.Empty(t, ackData.Error)
	require.NotNil(t, ackData.ExpiresAt)
	assert.WithinDuration(t, before.Add(time.Minute), *ackData.ExpiresAt, 2*time.Second)

	update := readFrame(t, client)
	assert.Equal(t, eventUpdate, update.Event)

	var updateData usecase.FriendLocationOutput
	decodeData(t, update, &updateData)
	assert.Equal(t, friendID, updateData.UserID)

	subs := gateway.registry.Subscribers(friendID, time.Now())
	require.Len(t, subs, 1)
	assert.Equal(t, viewerID, subs[0].ViewerID)
}

func TestClient_Track_CapsLeaseAtConfiguredCeiling(t *testing.T) {
	tests := []struct {
		name        string
		durationSec int
	}{
		{name: "day long request", durationSec: 86400},
		{name: "request far beyond duration range", durationSec: 1 << 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway, m := newTestGateway(t)
			viewerID := uuid.New()
			friendID := uuid.New()
			client := newTestClient(gateway, viewerID)

			m.friendshipUC.EXPECT().
				AreFriends(mock.Anything, viewerID, friendID).
				Return(true, nil)
			m.locationUC.EXPECT().
				GetFriendLocation(mock.Anything, viewerID, friendID).
				Return(&usecase.FriendLocationOutput{UserID: friendID, Timestamp: time.Now()}, nil)

			before := time.Now()
			client.handleMessage(context.Background(), trackFrame(friendID, tt.durationSec))

			ack := readFrame(t, client)
			var ackData trackAck
			decodeData(t, ack, &ackData)
			assert.True(t, ackData.OK)
			require.NotNil(t, ackData.ExpiresAt)
			assert.WithinDuration(t, before.Add(15*time.Minute), *ackData.ExpiresAt, 2*time.Second)

			update := readFrame(t, client)
			assert.Equal(t, eventUpdate, update.Event)
		})
	}
}

func TestClient_Track_NotVisibleCreatesNoLease(t *testing.T) {
	gateway, m := newTestGateway(t)
	viewerID := uuid.New()
	friendID := uuid.New()
	client := newTestClient(gateway, viewerID)

	m.friendshipUC.EXPECT().
		AreFriends(mock.Anything, viewerID, friendID).
		Return(true, nil)
	m.locationUC.EXPECT().
		GetFriendLocation(mock.Anything, viewerID, friendID).
		Return(nil, domainerrors.ErrLocationNotVisible)

	client.handleMessage(context.Background(), trackFrame(friendID, 60))

	ack := readFrame(t, client)
	assert.Equal(t, eventTrackAck, ack.Event)

	var ackData trackAck
	decodeData(t, ack, &ackData)
	assert.False(t, ackData.OK)
	assert.Equal(t, "LOCATION_NOT_VISIBLE", ackData.Error)
	assert.Nil(t, ackData.ExpiresAt)

	assert.Empty(t, gateway.registry.Subscribers(friendID, time.Now()))
	assertNoFrame(t, client)
}

func TestClient_Track_NotFriends(t *testing.T) {
	gateway, m := newTestGateway(t)
	viewerID := uuid.New()
	friendID := uuid.New()
	client := newTestClient(gateway, viewerID)

	m.friendshipUC.EXPECT().
		AreFriends(mock.Anything, viewerID, friendID).
		Return(false, nil)

	client.handleMessage(context.Background(), trackFrame(friendID, 60))

	ack := readFrame(t, client)
	assert.Equal(t, eventTrackAck, ack.Event)

	var ackData trackAck
	decodeData(t, ack, &ackData)
	assert.False(t, ackData.OK)
	assert.Equal(t, "NOT_FRIENDS", ackData.Error)
	assert.Nil(t, ackData.ExpiresAt)

	assert.Empty(t, gateway.registry.Subscribers(friendID, time.Now()))
}

func TestClient_Track_RejectsNonPositiveDuration(t *testing.T) {
	gateway, _ := newTestGateway(t)
	client := newTestClient(gateway, uuid.New())

	client.handleMessage(context.Background(), trackFrame(uuid.New(), 0))

	ack := readFrame(t, client)
	var ackData trackAck
	decodeData(t, ack, &ackData)
	assert.False(t, ackData.OK)
	assert.Equal(t, "INVALID_TRACK_DURATION", ackData.Error)
}

func TestClient_Ping_AcksAndFansOutToSubscribers(t *testing.T) {
	gateway, m := newTestGateway(t)
	sharerID := uuid.New()
	sharer := newTestClient(gateway, sharerID)

	visibleViewer := newTestClient(gateway, uuid.New())
	hiddenViewer := newTestClient(gateway, uuid.New())
	gateway.registry.Track(visibleViewer.id, visibleViewer.userID, sharerID, time.Now().Add(time.Hour))
	gateway.registry.Track(hiddenViewer.id, hiddenViewer.userID, sharerID, time.Now().Add(time.Hour))

	expiresAt := time.Now().Add(5 * time.Minute)
	m.locationUC.EXPECT().
		ReportLocation(mock.Anything, sharerID, mock.MatchedBy(func(input *usecase.ReportLocationInput) bool {
			return input.Latitude == 25.0330 && input.Longitude == 121.5654 && input.AccuracyMeters == 20
		})).
		Return(&usecase.ReportLocationOutput{Shared: true, ExpiresAt: expiresAt}, nil)
	m.locationUC.EXPECT().
		GetFriendLocation(mock.Anything, visibleViewer.userID, sharerID).
		Return(&usecase.FriendLocationOutput{UserID: sharerID, Latitude: 25.0330, Longitude: 121.5654, AccuracyMeters: 30, Timestamp: time.Now()}, nil)
	m.locationUC.EXPECT().
		GetFriendLocation(mock.Anything, hiddenViewer.userID, sharerID).
		Return(nil, domainerrors.ErrLocationNotVisible)

	sharer.handleMessage(context.Background(), pingFrame(25.0330, 121.5654, 20))

	ack := readFrame(t, sharer)
	assert.Equal(t, eventPingAck, ack.Event)

	var ackData pingAck
	decodeData(t, ack, &ackData)
	assert.True(t, ackData.OK)
	assert.True(t, ackData.Shared)
	require.NotNil(t, ackData.ExpiresAt)
	assert.WithinDuration(t, expiresAt, *ackData.ExpiresAt, time.Second)

	update := readFrame(t, visibleViewer)
	assert.Equal(t, eventUpdate, update.Event)

	var updateData usecase.FriendLocationOutput
	decodeData(t, update, &updateData)
	assert.Equal(t, sharerID, updateData.UserID)

	// The viewer that lost visibility gets nothing.
	assertNoFrame(t, hiddenViewer)
}

func TestClient_Ping_UnsharedSnapshotSkipsFanout(t *testing.T) {
	gateway, m := newTestGateway(t)
	sharerID := uuid.New()
	sharer := newTestClient(gateway, sharerID)

	viewer := newTestClient(gateway, uuid.New())
	gateway.registry.Track(viewer.id, viewer.userID, sharerID, time.Now().Add(time.Hour))

	m.locationUC.EXPECT().
		ReportLocation(mock.Anything, sharerID, mock.Anything).
		Return(&usecase.ReportLocationOutput{Shared: false, ExpiresAt: time.Now().Add(5 * time.Minute)}, nil)

	sharer.handleMessage(context.Background(), pingFrame(25.0330, 121.5654, 20))

	ack := readFrame(t, sharer)
	var ackData pingAck
	decodeData(t, ack, &ackData)
	assert.True(t, ackData.OK)
	assert.False(t, ackData.Shared)

	assertNoFrame(t, viewer)
}

func TestClient_Ping_InvalidCoordinates(t *testing.T) {
	gateway, m := newTestGateway(t)
	sharerID := uuid.New()
	sharer := newTestClient(gateway, sharerID)

	m.locationUC.EXPECT().
		ReportLocation(mock.Anything, sharerID, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCoordinates)

	sharer.handleMessage(context.Background(), pingFrame(123, 456, -1))

	ack := readFrame(t, sharer)
	var ackData pingAck
	decodeData(t, ack, &ackData)
	assert.False(t, ackData.OK)
	assert.Equal(t, "INVALID_COORDINATES", ackData.Error)
}

func TestClient_HandleMessage_IgnoresUnknownEvents(t *testing.T) {
	gateway, _ := newTestGateway(t)
	client := newTestClient(gateway, uuid.New())

	client.handleMessage(context.Background(), []byte(`{"event":"subscribe","data":{}}`))
	client.handleMessage(context.Background(), []byte(`not json`))

	assertNoFrame(t, client)
}
