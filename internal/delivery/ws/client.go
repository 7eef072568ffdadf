package ws

import (
	"context"
	"encoding/json"
	"time"

	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// Wire event names. The client-to-server events are acked with the
// corresponding ":ack" event; "update" is push-only.
const (
	eventTrack    = "track"
	eventTrackAck = "track:ack"
	eventPing     = "ping"
	eventPingAck  = "ping:ack"
	eventUpdate   = "update"
)

// trackData is the payload of a "track" frame.
type trackData struct {
	FriendID    uuid.UUID `json:"friend_id"`
	DurationSec int       `json:"duration_sec"`
}

// trackAck is the payload of a "track:ack" frame.
type trackAck struct {
	OK        bool       `json:"ok"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// pingData is the payload of a "ping" frame.
type pingData struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	AccuracyM float64 `json:"accuracy_m"`
}

// pingAck is the payload of a "ping:ack" frame.
type pingAck struct {
	OK        bool       `json:"ok"`
	Shared    bool       `json:"shared"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Client is one authenticated websocket connection.
type Client struct {
	id      string
	userID  uuid.UUID
	gateway *Gateway
	conn    *websocket.Conn
	send    chan []byte
}

func newClient(gateway *Gateway, conn *websocket.Conn, userID uuid.UUID) *Client {
	return &Client{
		id:      uuid.New().String(),
		userID:  userID,
		gateway: gateway,
		conn:    conn,
		send:    make(chan []byte, 64),
	}
}

// readPump reads frames until the connection dies, then cancels every track
// lease owned by the connection.
func (c *Client) readPump() {
	defer func() {
		c.gateway.registry.RemoveConn(c.id)
		c.gateway.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))

		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.gateway.logger.Warn("websocket read failed",
					"error", err.Error(),
					"user_id", c.userID.String(),
				)
			}

			break
		}

		c.handleMessage(context.Background(), message)
	}
}

// writePump drains the send channel and keeps the connection alive with
// protocol-level pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage dispatches one inbound frame. Unknown events are ignored.
func (c *Client) handleMessage(ctx context.Context, message []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		return
	}

	switch msg.Event {
	case eventTrack:
		c.handleTrack(ctx, msg.Data)
	case eventPing:
		c.handlePing(ctx, msg.Data)
	}
}

// handleTrack inserts or refreshes a track lease on a friend. The lease
// requires an established friendship and current visibility; a failed check
// acks failure and registers nothing. On success the resolved position is
// pushed immediately so the tracker does not wait for the next ping.
func (c *Client) handleTrack(ctx context.Context, raw json.RawMessage) {
	var data trackData
	if err := json.Unmarshal(raw, &data); err != nil || data.FriendID == uuid.Nil {
		c.sendEvent(eventTrackAck, trackAck{OK: false, Error: domainerrors.ErrValidationFailed.ErrorCode()})

		return
	}

	if data.DurationSec <= 0 {
		c.sendEvent(eventTrackAck, trackAck{OK: false, Error: domainerrors.ErrInvalidTrackDuration.ErrorCode()})

		return
	}

	// Clamp before converting; a huge second count would overflow Duration.
	duration := c.gateway.trackMaxDuration
	if int64(data.DurationSec) < int64(duration/time.Second) {
		duration = time.Duration(data.DurationSec) * time.Second
	}

	friends, err := c.gateway.friendshipUC.AreFriends(ctx, c.userID, data.FriendID)
	if err != nil {
		c.sendEvent(eventTrackAck, trackAck{OK: false, Error: errorCode(err)})

		return
	}
	if !friends {
		c.sendEvent(eventTrackAck, trackAck{OK: false, Error: domainerrors.ErrNotFriends.ErrorCode()})

		return
	}

	location, err := c.gateway.locationUC.GetFriendLocation(ctx, c.userID, data.FriendID)
	if err != nil {
		c.sendEvent(eventTrackAck, trackAck{OK: false, Error: errorCode(err)})

		return
	}

	expiresAt := time.Now().Add(duration)
	c.gateway.registry.Track(c.id, c.userID, data.FriendID, expiresAt)
	c.sendEvent(eventTrackAck, trackAck{OK: true, ExpiresAt: &expiresAt})
	c.sendEvent(eventUpdate, location)
}

// handlePing stores the caller's position and, when the write left a shared
// snapshot, fans the presented position out to every live subscriber.
// Visibility is re-resolved per subscriber; nothing from the lease is trusted.
func (c *Client) handlePing(ctx context.Context, raw json.RawMessage) {
	var data pingData
	if err := json.Unmarshal(raw, &data); err != nil {
		c.sendEvent(eventPingAck, pingAck{OK: false, Error: domainerrors.ErrValidationFailed.ErrorCode()})

		return
	}

	result, err := c.gateway.locationUC.ReportLocation(ctx, c.userID, &usecase.ReportLocationInput{
		Latitude:       data.Lat,
		Longitude:      data.Lng,
		AccuracyMeters: data.AccuracyM,
	})
	if err != nil {
		c.sendEvent(eventPingAck, pingAck{OK: false, Error: errorCode(err)})

		return
	}

	c.sendEvent(eventPingAck, pingAck{OK: true, Shared: result.Shared, ExpiresAt: &result.ExpiresAt})

	if !result.Shared {
		return
	}

	for _, sub := range c.gateway.registry.Subscribers(c.userID, time.Now()) {
		location, err := c.gateway.locationUC.GetFriendLocation(ctx, sub.ViewerID, c.userID)
		if err != nil {
			// The subscriber lost visibility since tracking; skip silently.
			continue
		}

		c.gateway.hub.SendToConn(sub.ConnID, &Message{Event: eventUpdate, Data: location})
	}
}

// sendEvent queues a frame on this connection without blocking.
func (c *Client) sendEvent(event string, data any) {
	payload, err := json.Marshal(&Message{Event: event, Data: data})
	if err != nil {
		return
	}

	select {
	case c.send <- payload:
	default:
	}
}

// errorCode maps a usecase error to the business code carried by failure acks.
func errorCode(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return domainerrors.ErrInternalError.ErrorCode()
}
