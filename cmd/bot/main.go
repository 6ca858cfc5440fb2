package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/debatebot/internal/coin"
	"github.com/KirkDiggler/debatebot/internal/common/clock"
	"github.com/KirkDiggler/debatebot/internal/common/uuid"
	"github.com/KirkDiggler/debatebot/internal/config"
	"github.com/KirkDiggler/debatebot/internal/handlers/discord"
	"github.com/KirkDiggler/debatebot/internal/models"
	argumentRepo "github.com/KirkDiggler/debatebot/internal/repositories/argument"
	tournamentRepo "github.com/KirkDiggler/debatebot/internal/repositories/tournament"
	"github.com/KirkDiggler/debatebot/internal/scrape"
	"github.com/KirkDiggler/debatebot/internal/server"
	argumentService "github.com/KirkDiggler/debatebot/internal/services/argument"
	pairingService "github.com/KirkDiggler/debatebot/internal/services/pairing"
	timerService "github.com/KirkDiggler/debatebot/internal/services/timer"
	wikiService "github.com/KirkDiggler/debatebot/internal/services/wiki"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	argRepo, err := argumentRepo.NewRedis(&argumentRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create argument repository: %v", err)
	}

	tournRepo, err := tournamentRepo.NewMemory(&tournamentRepo.Config{
		DefaultURL: cfg.TournamentURL,
		Clock:      clock.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create tournament repository: %v", err)
	}

	fetcher := scrape.NewClient(&scrape.ClientConfig{
		Timeout:  cfg.FetchTimeout,
		CacheTTL: cfg.PageCacheTTL,
	})

	// Initialize services
	defaultTypes := make([]models.ArgumentType, 0, len(cfg.ArgumentTypes))
	for _, t := range cfg.ArgumentTypes {
		defaultTypes = append(defaultTypes, models.ArgumentType(t))
	}

	argSvc, err := argumentService.New(&argumentService.Config{
		Repository:   argRepo,
		DefaultTypes: defaultTypes,
	})
	if err != nil {
		log.Fatalf("Failed to create argument service: %v", err)
	}

	pairingSvc, err := pairingService.New(&pairingService.Config{
		Fetcher:        fetcher,
		TournamentRepo: tournRepo,
		SchoolCode:     cfg.SchoolCode,
		BaseURL:        cfg.TabroomURL,
	})
	if err != nil {
		log.Fatalf("Failed to create pairing service: %v", err)
	}

	wikiSvc, err := wikiService.New(&wikiService.Config{
		Fetcher: fetcher,
		BaseURL: cfg.WikiURL,
	})
	if err != nil {
		log.Fatalf("Failed to create wiki service: %v", err)
	}

	// The timer posts through the same session the bot runs on
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	messenger := discord.NewSessionMessenger(session)

	timerSvc, err := timerService.New(&timerService.Config{
		Notifier:     discord.NewTimerNotifier(messenger),
		UUID:         uuid.New(),
		TickInterval: cfg.TimerInterval,
		MaxDuration:  cfg.TimerMax,
	})
	if err != nil {
		log.Fatalf("Failed to create timer service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:         session,
		Messenger:       messenger,
		ApplicationID:   cfg.ApplicationID,
		GuildID:         cfg.GuildID,
		ArgumentService: argSvc,
		PairingService:  pairingSvc,
		WikiService:     wikiSvc,
		TimerService:    timerSvc,
		Flipper:         coin.New(&coin.Config{}),
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	serverCfg := &server.Config{Addr: cfg.HTTPAddr}
	if cfg.DiscordPublicKey != "" {
		interactions, err := discord.NewInteractionsHandler(&discord.InteractionsConfig{
			PublicKey:  cfg.DiscordPublicKey,
			Dispatcher: bot,
			Messenger:  messenger,
		})
		if err != nil {
			log.Fatalf("Failed to create interactions endpoint: %v", err)
		}
		serverCfg.Interactions = interactions
	}

	httpServer, err := server.New(serverCfg)
	if err != nil {
		log.Fatalf("Failed to create HTTP server: %v", err)
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	timerSvc.StopAll()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		log.Printf("Error stopping HTTP server: %v", err)
	}

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Bot has been shut down")
}
