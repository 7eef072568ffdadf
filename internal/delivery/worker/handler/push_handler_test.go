package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	mocksrepository "beacon/internal/mocks/repository"
	mocksservice "beacon/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T) (*PushHandler, *mocksservice.MockNotificationService, *mocksrepository.MockUserRepository) {
	t.Helper()

	notificationSvc := mocksservice.NewMockNotificationService(t)
	userRepo := mocksrepository.NewMockUserRepository(t)
	handler := &PushHandler{
		verifyPushAuth:  false,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationSvc: notificationSvc,
		userRepo:        userRepo,
	}

	return handler, notificationSvc, userRepo
}

func pushRequest(t *testing.T, event *service.FriendEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString(payload),
			"messageId": "m-1",
		},
		"subscription": "projects/test/subscriptions/friend-events",
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_AcceptedEventNotifiesRecipient(t *testing.T) {
	handler, notificationSvc, _ := newPushHandler(t)
	recipientID := uuid.New()

	notificationSvc.EXPECT().
		SendToUser(mock.Anything, recipientID, mock.Anything, mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "Mei-Ling")
		}), mock.Anything).
		Return(nil)

	c, rec := pushRequest(t, &service.FriendEvent{
		Type:        service.FriendEventAccepted,
		ActorID:     uuid.New().String(),
		RecipientID: recipientID.String(),
		ActorName:   "Mei-Ling",
	})

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ResolvesActorNameFromDirectory(t *testing.T) {
	handler, notificationSvc, userRepo := newPushHandler(t)
	recipientID := uuid.New()
	actorID := uuid.New()

	userRepo.EXPECT().
		FindUserByID(mock.Anything, actorID).
		Return(&entity.User{ID: actorID, Name: "Chih-Hao"}, nil)
	notificationSvc.EXPECT().
		SendToUser(mock.Anything, recipientID, mock.Anything, mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "Chih-Hao")
		}), mock.Anything).
		Return(nil)

	c, rec := pushRequest(t, &service.FriendEvent{
		Type:        service.FriendEventAccepted,
		ActorID:     actorID.String(),
		RecipientID: recipientID.String(),
	})

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RemovedEventIsSilent(t *testing.T) {
	handler, _, _ := newPushHandler(t)

	c, rec := pushRequest(t, &service.FriendEvent{
		Type:        service.FriendEventRemoved,
		ActorID:     uuid.New().String(),
		RecipientID: uuid.New().String(),
	})

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_SendFailureTriggersRetry(t *testing.T) {
	handler, notificationSvc, _ := newPushHandler(t)
	recipientID := uuid.New()

	notificationSvc.EXPECT().
		SendToUser(mock.Anything, recipientID, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	c, rec := pushRequest(t, &service.FriendEvent{
		Type:        service.FriendEventAccepted,
		ActorID:     uuid.New().String(),
		RecipientID: recipientID.String(),
		ActorName:   "Mei-Ling",
	})

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_InvalidPayloadIsNotRedelivered(t *testing.T) {
	handler, _, _ := newPushHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push",
		strings.NewReader(`{"message":{"data":"not base64!!","messageId":"m-1"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
