package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RaulLeite2/AbyssConect/internal/accounts"
	"github.com/RaulLeite2/AbyssConect/internal/adapters/signal"
	"github.com/RaulLeite2/AbyssConect/internal/app"
	"github.com/RaulLeite2/AbyssConect/internal/config"
)

// ClientTokenMiddleware assigns each browser a stable opaque connection
// identity via cookie. The token doubles as the connection id for the
// signaling socket.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("ct")
		if token == "" {
			token = uuid.NewString()
			c.SetCookie("ct", token, 3600*24*7, "/", "", false, true)
		}
		c.Set("client_token", token)
		c.Next()
	}
}

// SetupRouter wires the WS signaling endpoint, the discovery REST surface
// and the optional account endpoints. auth may be nil for pure-relay
// deployments without a database.
func SetupRouter(ctx context.Context, cfg *config.Config, orch *app.Orchestrator, auth *accounts.Service) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("AbyssSessions", store))
	r.Use(ClientTokenMiddleware())

	r.Static("/static", cfg.StaticPath)
	r.GET("/", func(c *gin.Context) {
		c.File(cfg.StaticPath + "/index.html")
	})

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Msg("router setup")

	ctl := signal.NewController(orch, cfg.ReadLimit)

	api := r.Group("/api")

	api.GET("/ws/signal", func(c *gin.Context) {
		log.Info().Str("module", "adapters.http").Str("sid", c.GetString("client_token")).Msg("ws signal endpoint hit")
		ctl.HandleSignal(ctx, c)
	})

	// Discovery / diagnostics snapshots.
	api.GET("/rooms", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": orch.Rooms.List()})
	})
	api.GET("/streams", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"streams": orch.StreamInfos()})
	})
	api.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, orch.Stats())
	})

	if auth != nil {
		registerAuthRoutes(api, auth)
	}

	return r
}

func registerAuthRoutes(api *gin.RouterGroup, auth *accounts.Service) {
	api.POST("/auth/register", func(c *gin.Context) {
		var req struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		acc, err := auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, accounts.ErrEmailTaken):
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			case errors.Is(err, accounts.ErrInvalidCredentials):
				c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
			}
			return
		}
		c.JSON(http.StatusCreated, acc)
	})

	api.POST("/auth/login", func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		token, acc, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, accounts.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "account": acc})
	})

	protected := api.Group("", accounts.Middleware(auth.Tokens()))
	protected.GET("/auth/me", func(c *gin.Context) {
		id, err := uuid.Parse(c.GetString("account_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		acc, err := auth.Get(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		c.JSON(http.StatusOK, acc)
	})
}
