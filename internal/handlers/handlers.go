package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fightpicks/picks-api/internal/logic"
	"github.com/fightpicks/picks-api/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// ResolveQueue defines the interface for the fight-result worker pool
type ResolveQueue interface {
	Enqueue(fightID string, result *models.FightResult) bool
	QueueDepth() int
}

type Config struct {
	Resolver ResolveQueue
	Postgres *pgxpool.Pool
	Redis    *redis.Client
	Logger   *zap.Logger
	// Services
	Stats       logic.StatsService
	Predictions logic.PredictionService
	Events      logic.EventService
}

type Handler struct {
	resolver    ResolveQueue
	pg          *pgxpool.Pool
	redis       *redis.Client
	logger      *zap.SugaredLogger
	validator   *validator.Validate
	stats       logic.StatsService
	predictions logic.PredictionService
	events      logic.EventService
}

func New(cfg Config) *Handler {
	return &Handler{
		resolver:    cfg.Resolver,
		pg:          cfg.Postgres,
		redis:       cfg.Redis,
		logger:      cfg.Logger.Sugar(),
		validator:   validator.New(),
		stats:       cfg.Stats,
		predictions: cfg.Predictions,
		events:      cfg.Events,
	}
}
