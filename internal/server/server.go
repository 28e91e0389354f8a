package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/harshitcn/cn-chatbot-sub000/internal/cache"
	"github.com/harshitcn/cn-chatbot-sub000/internal/config"
	"github.com/harshitcn/cn-chatbot-sub000/internal/core"
	"github.com/harshitcn/cn-chatbot-sub000/internal/dataapi"
	"github.com/harshitcn/cn-chatbot-sub000/internal/fallback"
	"github.com/harshitcn/cn-chatbot-sub000/internal/faq"
	"github.com/harshitcn/cn-chatbot-sub000/internal/llm"
	"github.com/harshitcn/cn-chatbot-sub000/internal/location"
	"github.com/harshitcn/cn-chatbot-sub000/internal/logging"
	"github.com/harshitcn/cn-chatbot-sub000/internal/semantic"
	"github.com/harshitcn/cn-chatbot-sub000/internal/structured"
	"github.com/harshitcn/cn-chatbot-sub000/internal/vector"
)

type Server struct {
	Pipeline *core.Pipeline
	Logger   zerolog.Logger
	Port     int

	store *vector.Store
	cache cache.Client
}

// locationEntrySource adapts the location client to the semantic tier: a
// location hint becomes flattened center entries for the merged index.
type locationEntrySource struct {
	client *location.Client
}

func (s *locationEntrySource) Entries(ctx context.Context, nameOrSlug, _ string) ([]vector.Entry, error) {
	name := nameOrSlug
	slug := ""
	if looksLikeSlug(nameOrSlug) {
		slug = nameOrSlug
		name = location.FormatDisplay(nameOrSlug)
	}

	var (
		data map[string]any
		err  error
	)
	if slug != "" {
		data, err = s.client.GetData(ctx, slug)
	} else {
		_, data, err = s.client.Resolve(ctx, name)
	}
	if err != nil || data == nil {
		return nil, err
	}
	return location.FlattenToEntries(data, name), nil
}

func looksLikeSlug(s string) bool {
	for _, r := range s {
		if r == ' ' || (r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// NewServer loads configuration and wires every tier of the pipeline.
func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		bootLogger := logging.New("info", false)
		if !errors.Is(err, os.ErrNotExist) {
			bootLogger.Fatal().Err(err).Str("path", cfgPath).Msg("failed to load configuration")
		}
		bootLogger.Warn().Str("path", cfgPath).Msg("config file not found, using defaults")
		cfg = config.Default()
	}
	applyEnvOverrides(cfg)

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Pretty)

	llmClient, embedder, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize llm client")
	}
	if embedder == nil {
		logger.Fatal().Str("provider", cfg.LLM.Provider).Msg("provider has no embedding support; semantic tier requires one")
	}

	store, err := vector.OpenStore(cfg.Vector.IndexDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open embedding store")
	}

	corpus := make([]vector.Entry, 0, len(faq.FranchiseBank.Entries))
	for _, e := range faq.FranchiseBank.Entries {
		corpus = append(corpus, vector.Entry{Question: e.Question, Answer: e.Payload.Prose})
	}
	index, err := store.LoadOrBuild(context.Background(), embedder, corpus)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build embedding index")
	}
	logger.Info().Int("entries", index.Len()).Msg("embedding index ready")

	var cacheClient cache.Client
	if cfg.Cache.Enabled {
		cacheClient, err = cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, falling back to in-process cache")
			cacheClient = cache.NewMemoryClient()
		}
	}

	locClient := location.NewClient(
		cfg.Location.SlugAPIURL,
		cfg.Location.DataAPIURL,
		"",
		time.Duration(cfg.Location.TimeoutSeconds)*time.Second,
		logger,
	)

	dataClient := dataapi.NewClient(
		cfg.DataAPI.BaseURL,
		cfg.DataAPI.APIKey,
		time.Duration(cfg.DataAPI.TimeoutSeconds)*time.Second,
		cacheClient,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		logger,
	)

	var search fallback.SearchService
	if cfg.LLM.WebSearch {
		search = fallback.NewDuckDuckGoClient(0)
	}

	pipeline := &core.Pipeline{
		Matcher: faq.NewMatcher(),
		Semantic: semantic.NewResolver(
			index,
			&locationEntrySource{client: locClient},
			cfg.Vector.SimilarityThreshold,
			cfg.Vector.TopK,
			logger,
		),
		Structured: structured.NewResolver(dataClient, logger),
		Generative: fallback.NewResolver(
			llmClient,
			cfg.LLM.Model,
			cfg.LLM.FallbackModels,
			cfg.LLM.MaxRetries,
			time.Duration(cfg.LLM.TimeoutSeconds)*time.Second,
			search,
			fallback.Templates{
				Franchise: cfg.Prompts.Franchise,
				Parent:    cfg.Prompts.Parent,
				General:   cfg.Prompts.General,
			},
			logger,
		),
		Logger: logger,
	}

	return &Server{
		Pipeline: pipeline,
		Logger:   logger,
		Port:     cfg.Server.Port,
		store:    store,
		cache:    cacheClient,
	}
}

func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		cfg.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataAPI.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.Addr = v
		cfg.Cache.Enabled = true
	}
}

// Close releases the embedding store and cache connections.
func (s *Server) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.Logger.Warn().Err(err).Msg("failed to close embedding store")
		}
	}
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.Logger.Warn().Err(err).Msg("failed to close cache")
		}
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(requestID())

	r.GET("/", s.Welcome)
	r.GET("/health", s.Health)
	r.POST("/faq", s.FAQ)

	return r
}

// requestID tags every request with an X-Request-ID, generating one when the
// caller did not supply it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

type FAQRequest struct {
	Question     string `json:"question" binding:"required"`
	LocationSlug string `json:"location_slug"`
}

type FAQResponse struct {
	Answer string `json:"answer"`
}

func (s *Server) FAQ(c *gin.Context) {
	var req FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := s.Pipeline.Resolve(c.Request.Context(), req.Question, req.LocationSlug)
	s.Logger.Info().
		Str("request_id", c.GetString("request_id")).
		Str("tier", string(result.Tier)).
		Msg("faq answered")
	c.JSON(http.StatusOK, FAQResponse{Answer: result.Answer})
}

func (s *Server) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Codeninjas!"})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
