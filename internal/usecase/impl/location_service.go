package impl

import (
	"context"
	"log/slog"
	"time"

	"beacon/config"
	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/geo"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface. It combines the
// perishable snapshot store with the friendship graph to resolve what each
// viewer may see, applying obfuscation per the sharer's privacy mode.
type locationService struct {
	friendshipRepo   repository.FriendshipRepository
	locationRepo     repository.LocationRepository
	userRepo         repository.UserRepository
	snapshotTTL      time.Duration
	defaultPrecision float64
	logger           *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	FriendshipRepo repository.FriendshipRepository
	LocationRepo   repository.LocationRepository
	UserRepo       repository.UserRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	locationCfg := params.Config.Location
	if locationCfg == nil {
		locationCfg = &config.LocationConfig{}
	}

	snapshotTTL := locationCfg.SnapshotTTL
	if snapshotTTL <= 0 {
		snapshotTTL = 5 * time.Minute
	}
	defaultPrecision := locationCfg.DefaultPrecisionMeters
	if defaultPrecision <= 0 {
		defaultPrecision = 300
	}

	return &locationService{
		friendshipRepo:   params.FriendshipRepo,
		locationRepo:     params.LocationRepo,
		userRepo:         params.UserRepo,
		snapshotTTL:      snapshotTTL,
		defaultPrecision: defaultPrecision,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReportLocation validates and stores the caller's latest position. The
// snapshot's shared flag is derived from the caller's privacy mode at write
// time; writes are last-writer-wins with no ordering guarantee across retries.
func (srv *locationService) ReportLocation(ctx context.Context, userID uuid.UUID, input *usecase.ReportLocationInput) (*usecase.ReportLocationOutput, error) {
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return nil, errors.Wrap(domainerrors.ErrInvalidCoordinates, "latitude or longitude out of range")
	}
	if input.AccuracyMeters < 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidCoordinates, "accuracy must be non-negative")
	}

	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "reporting user does not exist")
		}

		return nil, errors.Wrap(err, "failed to find reporting user")
	}
	if user.Suspended {
		return nil, errors.Wrap(domainerrors.ErrUserSuspended, "suspended users cannot report locations")
	}

	now := time.Now()
	snapshot := &entity.LocationSnapshot{
		UserID:         userID,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		AccuracyMeters: input.AccuracyMeters,
		Shared:         user.Privacy.LocationSharingMode.Sharing(),
		CreatedAt:      now,
		ExpiresAt:      now.Add(srv.snapshotTTL),
	}

	if err := srv.locationRepo.UpsertSnapshot(ctx, snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to upsert location snapshot")
	}

	return &usecase.ReportLocationOutput{
		Shared:    snapshot.Shared,
		ExpiresAt: snapshot.ExpiresAt,
	}, nil
}

// GetFriendsLocations resolves all friend positions currently visible to the
// viewer. Snapshots are fetched in one bulk query; each friend appears at most
// once, and obfuscation is freshly randomized per call.
func (srv *locationService) GetFriendsLocations(ctx context.Context, viewerID uuid.UUID) ([]*usecase.FriendLocationOutput, error) {
	// Incoming accepted edges carry each friend's own share flag toward the viewer.
	edges, err := srv.friendshipRepo.FindAcceptedByPeer(ctx, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find accepted edges toward viewer")
	}

	candidateIDs := make([]uuid.UUID, 0, len(edges))
	for _, edge := range edges {
		if edge.ShareLocation {
			candidateIDs = append(candidateIDs, edge.OwnerID)
		}
	}
	if len(candidateIDs) == 0 {
		return []*usecase.FriendLocationOutput{}, nil
	}

	now := time.Now()
	snapshots, err := srv.locationRepo.FindActiveByUserIDs(ctx, candidateIDs, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active snapshots")
	}
	if len(snapshots) == 0 {
		return []*usecase.FriendLocationOutput{}, nil
	}

	sharerIDs := make([]uuid.UUID, 0, len(snapshots))
	for id := range snapshots {
		sharerIDs = append(sharerIDs, id)
	}
	sharers, err := srv.userRepo.FindUsersByIDs(ctx, sharerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sharing users")
	}

	results := make([]*usecase.FriendLocationOutput, 0, len(snapshots))
	for _, id := range candidateIDs {
		snapshot, ok := snapshots[id]
		if !ok {
			continue
		}
		sharer, ok := sharers[id]
		if !ok || !sharer.Privacy.LocationSharingMode.Sharing() {
			continue
		}

		results = append(results, srv.present(sharer, snapshot))
	}

	return results, nil
}

// GetFriendLocation resolves one friend's presented position for the viewer.
func (srv *locationService) GetFriendLocation(ctx context.Context, viewerID, targetID uuid.UUID) (*usecase.FriendLocationOutput, error) {
	edge, err := srv.friendshipRepo.FindEdge(ctx, targetID, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrFriendshipEdgeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFriends, "no friendship toward viewer")
		}

		return nil, errors.Wrap(err, "failed to find friendship edge")
	}
	if edge.Status != entity.FriendshipAccepted {
		return nil, errors.Wrap(domainerrors.ErrNotFriends, "friendship is not accepted")
	}
	if !edge.ShareLocation {
		return nil, errors.Wrap(domainerrors.ErrLocationNotVisible, "friend disabled sharing toward viewer")
	}

	target, err := srv.userRepo.FindUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "target does not exist")
		}

		return nil, errors.Wrap(err, "failed to find target user")
	}
	if !target.Privacy.LocationSharingMode.Sharing() {
		return nil, errors.Wrap(domainerrors.ErrLocationNotVisible, "target's sharing mode is off")
	}

	snapshot, err := srv.locationRepo.FindByUserID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLocationNotVisible, "no location snapshot")
		}

		return nil, errors.Wrap(err, "failed to find location snapshot")
	}
	if !snapshot.Active(time.Now()) {
		return nil, errors.Wrap(domainerrors.ErrLocationNotVisible, "snapshot expired or not shared")
	}

	return srv.present(target, snapshot), nil
}

// CanView reports whether the viewer may currently see the target's location.
// Authorization is re-verified per call, never cached.
func (srv *locationService) CanView(ctx context.Context, viewerID, targetID uuid.UUID) (bool, error) {
	_, err := srv.GetFriendLocation(ctx, viewerID, targetID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFriends) ||
			errors.Is(err, domainerrors.ErrLocationNotVisible) ||
			errors.Is(err, domainerrors.ErrUserNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// present applies the sharer's privacy mode to a raw snapshot. Live mode
// returns the exact coordinate; approximate mode jitters it within the
// sharer's precision radius and reports an accuracy no smaller than that
// radius, so the stated uncertainty truthfully covers the obfuscation.
func (srv *locationService) present(sharer *entity.User, snapshot *entity.LocationSnapshot) *usecase.FriendLocationOutput {
	out := &usecase.FriendLocationOutput{
		UserID:         snapshot.UserID,
		Latitude:       snapshot.Latitude,
		Longitude:      snapshot.Longitude,
		AccuracyMeters: snapshot.AccuracyMeters,
		Timestamp:      snapshot.CreatedAt,
	}

	if sharer.Privacy.LocationSharingMode != entity.SharingModeApproximate {
		return out
	}

	precision := sharer.Privacy.PrecisionMeters
	if precision <= 0 {
		precision = srv.defaultPrecision
	}

	jittered := geo.Offset(orb.Point{snapshot.Longitude, snapshot.Latitude}, precision)
	out.Latitude = jittered.Lat()
	out.Longitude = jittered.Lon()
	out.AccuracyMeters = max(precision, snapshot.AccuracyMeters)

	return out
}
