package stats

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/redis"
	"github.com/folio-space/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dedupTTL      = 30 * time.Minute
	summaryTTL    = 60 * time.Second
	summaryKey    = "stats:summary"
	dedupKeyBase  = "stats:viewed:"
	recordTimeout = 5 * time.Second
)

// Summary is the public view counter payload.
type Summary struct {
	TotalViews     int64 `json:"total_views"`
	UniqueVisitors int64 `json:"unique_visitors"`
}

// Service records page views and aggregates them. Deduplication and the
// summary cache live in Redis when available, otherwise in-process.
type Service struct {
	db     *gorm.DB
	rdb    *redis.Client
	local  *gocache.Cache
	salt   string
	logger *zap.Logger
}

func NewService(db *gorm.DB, rdb *redis.Client, salt string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		rdb:    rdb,
		local:  gocache.New(dedupTTL, 10*time.Minute),
		salt:   salt,
		logger: logger,
	}
}

// HashIP derives the stored visitor identifier. The raw address is never
// persisted.
func (s *Service) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])
}

// Record stores one page view unless the same visitor hit the same path
// within the dedup window.
func (s *Service) Record(ctx context.Context, ip, path string) {
	ipHash := s.HashIP(ip)
	if !s.firstSeen(ctx, ipHash, path) {
		return
	}

	row := models.AnalyzeModel{
		IPHash:    ipHash,
		Path:      path,
		Timestamp: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		s.logger.Warn("record page view", zap.String("path", path), zap.Error(err))
	}
}

func (s *Service) firstSeen(ctx context.Context, ipHash, path string) bool {
	key := dedupKeyBase + ipHash + ":" + path
	if s.rdb != nil {
		set, err := s.rdb.SetNX(ctx, key, 1, dedupTTL)
		if err == nil {
			return set
		}
		s.logger.Warn("analytics dedup via redis", zap.Error(err))
	}
	return s.local.Add(key, struct{}{}, dedupTTL) == nil
}

// Summary returns the aggregated counters, cached for a minute.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	if cached, ok := s.cachedSummary(ctx); ok {
		return cached, nil
	}

	var out Summary
	err := s.db.WithContext(ctx).Model(&models.AnalyzeModel{}).
		Count(&out.TotalViews).Error
	if err != nil {
		return Summary{}, err
	}
	err = s.db.WithContext(ctx).Model(&models.AnalyzeModel{}).
		Distinct("ip_hash").Count(&out.UniqueVisitors).Error
	if err != nil {
		return Summary{}, err
	}

	s.storeSummary(ctx, out)
	return out, nil
}

func (s *Service) cachedSummary(ctx context.Context) (Summary, bool) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, summaryKey)
		if err == nil && raw != "" {
			var out Summary
			if json.Unmarshal([]byte(raw), &out) == nil {
				return out, true
			}
		}
		return Summary{}, false
	}
	if v, ok := s.local.Get(summaryKey); ok {
		if out, ok := v.(Summary); ok {
			return out, true
		}
	}
	return Summary{}, false
}

func (s *Service) storeSummary(ctx context.Context, out Summary) {
	if s.rdb != nil {
		raw, _ := json.Marshal(out)
		if err := s.rdb.Set(ctx, summaryKey, raw, summaryTTL); err != nil {
			s.logger.Warn("cache stats summary", zap.Error(err))
		}
		return
	}
	s.local.Set(summaryKey, out, summaryTTL)
}

// List returns raw analytics rows, newest first, for the admin panel.
func (s *Service) List(q pagination.Query) ([]models.AnalyzeModel, response.Pagination, error) {
	var rows []models.AnalyzeModel
	page, err := pagination.Paginate(
		s.db.Model(&models.AnalyzeModel{}).Order("timestamp DESC, id DESC"), q, &rows)
	return rows, page, err
}
