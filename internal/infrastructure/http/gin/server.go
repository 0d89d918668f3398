package gin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	ginlib "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"weblarek/internal/config"
	"weblarek/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

type Server struct {
	engine *ginlib.Engine
	srv    *http.Server
	log logger.Logger
}

// NewEngine returns a gin engine with panic recovery and request logging.
func NewEngine(env string, log logger.Logger) *ginlib.Engine {
	if env == "prod" || env == "production" {
		ginlib.SetMode(ginlib.ReleaseMode)
	}
	r := ginlib.New()
	r.Use(ginlib.Recovery(), RequestLogger(log))
	return r
}

// RequestLogger tags each request with an id and logs its outcome.
func RequestLogger(log logger.Logger) ginlib.HandlerFunc {
	if log == nil {
		log = logger.NewNop()
	}
	return func(c *ginlib.Context) {
		start := time.Now()

		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))

		c.Next()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Int64("latency_ms", time.Since(start).Milliseconds()),
		}
		l := log.WithContext(c.Request.Context())
		if c.Writer.Status() >= http.StatusInternalServerError {
			l.Error("request failed", fields...)
			return
		}
		l.Info("request", fields...)
	}
}

func NewServer(cfg config.ServerConfig, engine *ginlib.Engine, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &Server{
		engine: engine,
		srv:    srv,
		log:    log,
	}
}

// Run serves until Shutdown is called.
func (s *Server) Run() error {
	if s.engine == nil {
		return fmt.Errorf("gin engine is nil")
	}
	s.log.Info("http server listening", logger.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
