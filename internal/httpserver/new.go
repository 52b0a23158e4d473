package httpserver

import (
	"errors"

	"jewelbot-srv/config"
	"jewelbot-srv/internal/catalog"
	"jewelbot-srv/internal/dialogue"
	dialogueRepo "jewelbot-srv/internal/dialogue/repository"
	"jewelbot-srv/pkg/discord"
	"jewelbot-srv/pkg/gemini"
	"jewelbot-srv/pkg/log"
	pkgRedis "jewelbot-srv/pkg/redis"
	"jewelbot-srv/pkg/whatsapp"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Service Configuration
	config *config.Config

	// Domain Configuration
	catalogUC    catalog.UseCase
	dialogueRepo dialogueRepo.Repository

	// External Clients
	geminiClient   gemini.IGemini
	whatsappClient whatsapp.IWhatsApp
	redisClient    pkgRedis.IRedis   // optional, may be nil
	eventProducer  dialogue.Producer // optional, may be nil

	// Monitoring & Notification Configuration
	discord discord.IDiscord // optional, may be nil
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Service Configuration
	Config *config.Config

	// Domain Configuration
	CatalogUC    catalog.UseCase
	DialogueRepo dialogueRepo.Repository

	// External Clients
	GeminiClient   gemini.IGemini
	WhatsAppClient whatsapp.IWhatsApp
	RedisClient    pkgRedis.IRedis
	EventProducer  dialogue.Producer

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Service Configuration
		config: cfg.Config,

		// Domain Configuration
		catalogUC:    cfg.CatalogUC,
		dialogueRepo: cfg.DialogueRepo,

		// External Clients
		geminiClient:   cfg.GeminiClient,
		whatsappClient: cfg.WhatsAppClient,
		redisClient:    cfg.RedisClient,
		eventProducer:  cfg.EventProducer,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Service Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Domain Configuration
	if srv.catalogUC == nil {
		return errors.New("catalog usecase is required")
	}
	if srv.dialogueRepo == nil {
		return errors.New("dialogue repository is required")
	}

	// External Clients (redis, eventProducer and discord are optional)
	if srv.geminiClient == nil {
		return errors.New("gemini client is required")
	}
	if srv.whatsappClient == nil {
		return errors.New("whatsapp client is required")
	}

	return nil
}
