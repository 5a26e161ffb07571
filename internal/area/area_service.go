package area

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-salary/internal/shared/contextutil"
	"go-salary/internal/validation"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsCacheKey = "areas:options"

//go:generate mockgen -source=area_service.go -destination=mock/area_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAreaRequest) (AreaResponse, error)
	GetAll(ctx context.Context) ([]AreaResponse, error)
	GetOptions(ctx context.Context) ([]AreaResponse, error)
	GetByID(ctx context.Context, id uint) (AreaResponse, error)
	Update(ctx context.Context, id uint, req UpdateAreaRequest) (AreaResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("area.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("area.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateAreaRequest,
) (AreaResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create area requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	name, err := validation.Name(req.Name)
	if err != nil {
		s.logger.Warn("create area invalid name", zap.String("request_id", rid), zap.Error(err))
		return AreaResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create area begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AreaResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	area := &Area{
		Name: name,
	}

	if err := qtx.Create(ctx, area); err != nil {
		s.logger.Error("create area persist failed", zap.Error(err))
		return AreaResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create area commit failed", zap.String("request_id", rid), zap.Error(err))
		return AreaResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create area success",
		zap.String("request_id", rid),
		zap.Uint("area_id", area.ID),
	)

	return mapToResponse(*area), nil
}

func (s *service) GetAll(ctx context.Context) ([]AreaResponse, error) {
	s.logger.Debug("get all areas requested")
	areas, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all areas failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(areas), nil
}

// GetOptions serves the id+name pairs selection UIs need. This is the
// only cached read path; every mutation drops the key.
func (s *service) GetOptions(ctx context.Context) ([]AreaResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []AreaResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses a stampede when the form opens on a cold
	// cache.
	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		areas, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(areas)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]AreaResponse), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (AreaResponse, error) {
	s.logger.Debug("get area by id requested", zap.Uint("area_id", id))
	area, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get area by id failed", zap.Error(err))
		return AreaResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*area), nil
}

func (s *service) Update(
	ctx context.Context,
	id uint,
	req UpdateAreaRequest,
) (AreaResponse, error) {
	s.logger.Debug("update area requested",
		zap.Uint("area_id", id),
		zap.String("name", req.Name),
	)

	name, err := validation.Name(req.Name)
	if err != nil {
		s.logger.Warn("update area invalid name", zap.Error(err))
		return AreaResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update area begin tx failed", zap.Error(err))
		return AreaResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	area, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update area fetch existing failed", zap.Error(err))
		return AreaResponse{}, mapRepositoryError(err)
	}

	area.Name = name

	if err := qtx.Update(ctx, area); err != nil {
		s.logger.Error("update area persist failed", zap.Error(err))
		return AreaResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update area commit failed", zap.Error(err))
		return AreaResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update area success", zap.Uint("area_id", id))

	return mapToResponse(*area), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	s.logger.Debug("delete area requested", zap.Uint("area_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete area begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete area failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete area commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete area success", zap.Uint("area_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate area options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func mapToResponse(area Area) AreaResponse {
	resp := AreaResponse{
		ID:   area.ID,
		Name: area.Name,
	}
	if !area.CreatedAt.IsZero() {
		resp.CreatedAt = area.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(areas []Area) []AreaResponse {
	res := make([]AreaResponse, len(areas))
	for i, e := range areas {
		res[i] = mapToResponse(e)
	}
	return res
}
