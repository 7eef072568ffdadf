package ws

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"beacon/config"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultTrackMaxDuration = 15 * time.Minute

// GatewayParams holds dependencies for the realtime gateway, injected by Fx.
type GatewayParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	TokenSvc     service.TokenService
	UserRepo     repository.UserRepository
	FriendshipUC usecase.FriendshipUsecase
	LocationUC   usecase.LocationUsecase
}

// Gateway upgrades authenticated requests to websocket connections and owns
// the hub and the track registry shared by all of them.
type Gateway struct {
	logger           *slog.Logger
	tokenSvc         service.TokenService
	userRepo         repository.UserRepository
	friendshipUC     usecase.FriendshipUsecase
	locationUC       usecase.LocationUsecase
	hub              *Hub
	registry         *TrackRegistry
	upgrader         websocket.Upgrader
	trackMaxDuration time.Duration
}

// NewGateway is the constructor for Gateway.
func NewGateway(params GatewayParams) *Gateway {
	trackMax := defaultTrackMaxDuration
	if params.Config != nil && params.Config.Realtime != nil && params.Config.Realtime.TrackMaxDuration > 0 {
		trackMax = params.Config.Realtime.TrackMaxDuration
	}

	return &Gateway{
		logger:       params.Logger,
		tokenSvc:     params.TokenSvc,
		userRepo:     params.UserRepo,
		friendshipUC: params.FriendshipUC,
		locationUC:   params.LocationUC,
		hub:          NewHub(),
		registry:     NewTrackRegistry(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		trackMaxDuration: trackMax,
	}
}

// HandleConnection authenticates and upgrades a websocket request. Websocket
// clients cannot always set headers, so the access token is accepted from the
// "token" query parameter as well as the Authorization header.
func (g *Gateway) HandleConnection(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		authHeader := c.Request().Header.Get("Authorization")
		token = strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			token = ""
		}
	}
	if token == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Access token is missing"})
	}

	userID, err := g.tokenSvc.VerifyAccessToken(token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
	}

	user, err := g.userRepo.FindUserByID(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unknown user"})
	}
	if user.Suspended {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Account is suspended"})
	}

	conn, err := g.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed",
			"error", err.Error(),
			"user_id", userID.String(),
		)

		return nil
	}

	client := newClient(g, conn, userID)
	g.hub.Register(client)

	g.logger.Info("websocket connected",
		"user_id", userID.String(),
		"conn_id", client.id,
	)

	go client.writePump()
	go client.readPump()

	return nil
}
