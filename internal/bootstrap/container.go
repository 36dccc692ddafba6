package bootstrap

import (
	"context"
	"log"

	"nolij-demo-be/internal/config"
	"nolij-demo-be/internal/constant"
	"nolij-demo-be/internal/controller"
	"nolij-demo-be/internal/handler"
	"nolij-demo-be/internal/pkg/logger"
	"nolij-demo-be/internal/repository/contract"
	"nolij-demo-be/internal/repository/implementation"
	"nolij-demo-be/internal/repository/memory"
	"nolij-demo-be/internal/service"
	"nolij-demo-be/internal/websocket"
	"nolij-demo-be/pkg/playback"
	"nolij-demo-be/pkg/reply"

	pktNats "nolij-demo-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController         controller.IChatController
	ConversationController controller.IConversationController
	CatalogController      controller.ICatalogController
	PreferenceController   controller.IPreferenceController
	AdminController        controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub
}

// NewContainer wires the whole application. Passing a nil db runs the
// service fully in memory, which is how the demo ships by default.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Repositories
	sessionRepo := memory.NewSessionRepository()

	var conversationRepo contract.ConversationRepository
	var preferenceRepo contract.PreferenceRepository
	if db != nil {
		conversationRepo = implementation.NewConversationRepository(db)
		preferenceRepo = implementation.NewPreferenceRepository(db)
	} else {
		log.Printf("[INFO] No database configured, conversations are kept in memory")
		conversationRepo = memory.NewConversationRepository()
		preferenceRepo = memory.NewPreferenceRepository()
	}

	// 4. Services
	composer, err := reply.NewComposer()
	if err != nil {
		log.Fatalf("[FATAL] Failed to build reply composer: %v", err)
	}

	publisherService := service.NewPublisherService(constant.ChatEventsTopic, pubSub)
	conversationService := service.NewConversationService(sessionRepo, conversationRepo, publisherService, sysLogger)
	chatService := service.NewChatService(
		sessionRepo,
		preferenceRepo,
		composer,
		playback.RealDelayer{},
		publisherService,
		conversationService,
		sysLogger,
		cfg.Chat.MaxAttachmentBytes,
	)
	preferenceService := service.NewPreferenceService(preferenceRepo)
	adminService := service.NewAdminService(
		conversationRepo,
		sysLogger,
		cfg.Admin.Username,
		cfg.Admin.Password,
		cfg.Admin.JwtSecret,
	)
	consumerService := service.NewConsumerService(pubSub, constant.ChatEventsTopic, wsHub, natsPub, sysLogger)

	// 5. Handlers & Controllers
	streamHandler := handler.NewStreamHandler(sessionRepo, wsHub, wsLogger)

	return &Container{
		ChatController:         controller.NewChatController(chatService),
		ConversationController: controller.NewConversationController(conversationService),
		CatalogController:      controller.NewCatalogController(),
		PreferenceController:   controller.NewPreferenceController(preferenceService),
		AdminController:        controller.NewAdminController(adminService),

		ConsumerService: consumerService,

		StreamHandler: streamHandler,
		WebSocketHub:  wsHub,
	}
}
