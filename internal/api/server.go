package api

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	ginlogrus "github.com/toorop/gin-logrus"

	"remoji/internal/config"
	"remoji/internal/version"
)

// KeyResolver resolves bearer tokens back to the user that owns them.
type KeyResolver interface {
	UserForKey(ctx context.Context, key string) (string, bool, error)
}

// Server exposes a small health and status HTTP API alongside the bot.
type Server struct {
	cfg     *config.Config
	keys    KeyResolver
	session *discordgo.Session
	engine  *gin.Engine
	started time.Time
}

// NewServer builds the router. The session is only read through its state,
// so the server can run before the gateway connection is up.
func NewServer(cfg *config.Config, keys KeyResolver, session *discordgo.Session) *Server {
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		keys:    keys,
		session: session,
		engine:  gin.New(),
		started: time.Now(),
	}

	s.engine.Use(ginlogrus.Logger(log.StandardLogger()), gin.Recovery())
	s.engine.Use(commonHeaders())
	s.engine.Use(requestTimeout(cfg.APITimeout))

	s.engine.GET("/ping", s.handlePing)
	s.engine.GET("/status", s.requireAuth, s.handleStatus)

	return s
}

// Handler returns the underlying router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.cfg.APIHost, s.cfg.APIPort),
		Handler: s.engine,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("status API listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

func commonHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET")
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Next()
	}
}

// requestTimeout puts a deadline on the request context. Handlers observe it
// through their downstream calls; when one gives up without writing anything,
// the reply is 408. Runs on the handler goroutine so the ResponseWriter is
// never touched concurrently.
func requestTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			c.AbortWithStatus(http.StatusRequestTimeout)
		}
	}
}

func (s *Server) requireAuth(c *gin.Context) {
	const prefix = "Bearer "

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, prefix) {
		s.unauthorized(c)
		return
	}

	key := strings.TrimPrefix(header, prefix)
	userID, found, err := s.keys.UserForKey(c.Request.Context(), key)
	if err != nil {
		log.WithError(err).Error("API key lookup failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if !found || !s.cfg.IsDeveloper(userID) {
		s.unauthorized(c)
		return
	}

	c.Set("userID", userID)
	c.Next()
}

func (s *Server) unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

func (s *Server) handlePing(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (s *Server) handleStatus(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	s.session.State.RLock()
	guilds := len(s.session.State.Guilds)
	botID := ""
	if s.session.State.User != nil {
		botID = s.session.State.User.ID
	}
	s.session.State.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"version":        version.Version,
		"commit":         version.Commit,
		"uptime_seconds": int64(time.Since(s.started).Seconds()),
		"guilds":         guilds,
		"bot_user_id":    botID,
		"goroutines":     runtime.NumGoroutine(),
		"heap_bytes":     mem.HeapAlloc,
		"sys_bytes":      mem.Sys,
	})
}
