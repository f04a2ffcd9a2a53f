// Package server implements the attribution signing service. It holds one
// set of builder API credentials and signs request metadata for callers
// presenting a known bearer token, so those callers can attribute orders to
// the builder without ever holding its credentials.
package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/samber/mo"

	"github.com/dicedhq/go-polymarket/signer"
)

// Config for the attribution service
type Config struct {
	// Credentials are the builder's API credentials used for signing
	Credentials signer.Credentials
	// Tokens is the allow-list of bearer tokens accepted on /api/sign
	Tokens []string
	// Logger for request-level events. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Server signs attribution requests for authorized callers
type Server struct {
	signer *signer.Signer
	tokens map[string]struct{}
	logger zerolog.Logger
	engine *gin.Engine
}

func New(cfg Config) *Server {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	tokens := make(map[string]struct{}, len(cfg.Tokens))
	for _, token := range cfg.Tokens {
		tokens[token] = struct{}{}
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		signer: signer.New(cfg.Credentials),
		tokens: tokens,
		logger: logger,
		engine: engine,
	}

	engine.GET("/api/health", s.handleHealth)

	api := engine.Group("/api", s.requireBearerToken)
	api.POST("/sign", s.handleSign)

	return s
}

// Handler returns the HTTP handler to mount or serve
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().Unix()})
}

// requireBearerToken rejects requests whose Authorization header is not
// exactly "Bearer <token>" with a token on the allow-list
func (s *Server) requireBearerToken(c *gin.Context) {
	header := c.GetHeader("Authorization")

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		s.logger.Warn().Str("remote", c.ClientIP()).Msg("missing or malformed bearer token")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if _, ok := s.tokens[parts[1]]; !ok {
		s.logger.Warn().Str("remote", c.ClientIP()).Msg("unknown bearer token")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.Next()
}

type signRequest struct {
	Path      string  `json:"path" binding:"required"`
	Method    string  `json:"method" binding:"required,oneof=GET POST DELETE"`
	Body      *string `json:"body"`
	Timestamp *int64  `json:"timestamp"`
}

// handleSign signs the described request with the builder credentials and
// returns the header payload the caller should attach
func (s *Server) handleSign(c *gin.Context) {
	var req signRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug().Err(err).Msg("rejected malformed sign request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	payload, err := s.signer.CreateHeaderPayload(
		signer.Method(req.Method),
		req.Path,
		mo.PointerToOption(req.Body),
		mo.PointerToOption(req.Timestamp),
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.logger.Info().
		Str("method", req.Method).
		Str("path", req.Path).
		Msg("signed attribution request")

	c.JSON(http.StatusOK, payload)
}
