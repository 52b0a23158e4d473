package http

import (
	"jewelbot-srv/internal/dialogue"
	"jewelbot-srv/internal/renderer"
	"jewelbot-srv/pkg/discord"
	"jewelbot-srv/pkg/log"
	pkgRedis "jewelbot-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the webhook HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l           log.Logger
	uc          dialogue.UseCase
	renderer    renderer.Renderer
	redis       pkgRedis.IRedis // optional duplicate-delivery guard, may be nil
	discord     discord.IDiscord
	verifyToken string
}

// Config groups the handler dependencies.
type Config struct {
	Logger      log.Logger
	UseCase     dialogue.UseCase
	Renderer    renderer.Renderer
	Redis       pkgRedis.IRedis
	Discord     discord.IDiscord
	VerifyToken string
}

// New - Factory
func New(cfg Config) Handler {
	return &handler{
		l:           cfg.Logger,
		uc:          cfg.UseCase,
		renderer:    cfg.Renderer,
		redis:       cfg.Redis,
		discord:     cfg.Discord,
		verifyToken: cfg.VerifyToken,
	}
}
