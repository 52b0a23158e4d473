package main

import (
	"context"
	"fmt"
	"time"

	"jewelbot-srv/config"
	configKafka "jewelbot-srv/config/kafka"
	configRedis "jewelbot-srv/config/redis"
	catalogExcel "jewelbot-srv/internal/catalog/repository/excel"
	catalogUsecase "jewelbot-srv/internal/catalog/usecase"
	"jewelbot-srv/internal/dialogue"
	eventProducer "jewelbot-srv/internal/dialogue/delivery/kafka/producer"
	"jewelbot-srv/internal/dialogue/repository"
	dialogueMemory "jewelbot-srv/internal/dialogue/repository/memory"
	"jewelbot-srv/internal/httpserver"
	"jewelbot-srv/pkg/discord"
	"jewelbot-srv/pkg/gemini"
	"jewelbot-srv/pkg/log"
	pkgRedis "jewelbot-srv/pkg/redis"
	"jewelbot-srv/pkg/whatsapp"
)

func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Load the product catalog
	catalogRepo := catalogExcel.New(logger, cfg.Catalog.FilePath, cfg.Catalog.Sheet)
	products, err := catalogRepo.Load(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to load product catalog: ", err)
		return
	}
	catalogUC := catalogUsecase.New(logger, products)
	logger.Infof(ctx, "Catalog loaded: %d products from %s", len(products), cfg.Catalog.FilePath)

	// 4. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 5. Initialize Redis (optional, webhook deduplication)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Host != "" {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	} else {
		logger.Infof(ctx, "Redis not configured, webhook deduplication disabled")
	}

	// 6. Initialize Kafka producer (optional, turn analytics events)
	var producer dialogue.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer, err := configKafka.Connect(cfg.Kafka)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Kafka: ", err)
			return
		}
		defer configKafka.Disconnect()
		producer = eventProducer.New(logger, kafkaProducer)
		logger.Infof(ctx, "Kafka producer connected, publishing turn events to %s", cfg.Kafka.Topic)
	} else {
		logger.Infof(ctx, "Kafka not configured, turn events disabled")
	}

	// 7. Initialize Gemini client
	geminiClient, err := gemini.NewGemini(gemini.GeminiConfig{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}

	// 8. Initialize WhatsApp client
	whatsappClient, err := whatsapp.NewWhatsApp(whatsapp.WhatsAppConfig{
		AccessToken:   cfg.WhatsApp.AccessToken,
		PhoneNumberID: cfg.WhatsApp.PhoneNumberID,
		BaseURL:       cfg.WhatsApp.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize WhatsApp client: ", err)
		return
	}

	// 9. Initialize conversation store and its eviction sweeper
	dialogueRepo := dialogueMemory.New(logger)
	go runEvictionLoop(ctx, logger, dialogueRepo, cfg.Session)

	// 10. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Service Configuration
		Config: cfg,

		// Domain Configuration
		CatalogUC:    catalogUC,
		DialogueRepo: dialogueRepo,

		// External Clients
		GeminiClient:   geminiClient,
		WhatsAppClient: whatsappClient,
		RedisClient:    redisClient,
		EventProducer:  producer,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// runEvictionLoop periodically drops conversations idle past the session TTL.
func runEvictionLoop(ctx context.Context, logger log.Logger, repo repository.Repository, cfg config.SessionConfig) {
	ttl := time.Duration(cfg.TTL) * time.Second
	interval := time.Duration(cfg.EvictionInterval) * time.Second

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if n := repo.Evict(ttl); n > 0 {
			logger.Infof(ctx, "Evicted %d idle conversations", n)
		}
	}
}
