package bootstrap

import (
	"context"
	"log"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/config"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/controller"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/pkg/logger"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/memory"
	redisRepo "github.com/kangsm1989-hue/ai-counsel-web/internal/repository/redis"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/unitofwork"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/service"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/llm/factory"
	pktNats "github.com/kangsm1989-hue/ai-counsel-web/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	DiaryController    controller.IDiaryController
	GoalController     controller.IGoalController
	InsightController  controller.IInsightController
	GuidanceController controller.IGuidanceController
	CounselController  controller.ICounselController

	// Background services, exposed for main.go to run
	ConsumerService service.IConsumerService
	ActivityService *service.ActivityService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event buses
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// 3. Redis
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

	// 4. LLM provider
	llmProvider, err := factory.NewLLMProvider(factory.ProviderConfig{
		Type:      cfg.Ai.LLMProvider,
		ModelName: cfg.Ai.LLMModel,
		BaseURL:   cfg.Ai.OllamaBaseURL,
		APIKey:    cfg.Ai.GeminiApiKey,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 5. Repositories outside the unit of work
	snapshotRepo := memory.NewSnapshotRepository()
	promptCounterRepo := redisRepo.NewPromptCounterRepository(rdb)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.App.EntrySavedTopic, pubSub)
	insightService := service.NewInsightService(uowFactory, snapshotRepo)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EntrySavedTopic, insightService)

	authService := service.NewAuthService(uowFactory, natsPub)
	diaryService := service.NewDiaryService(uowFactory, publisherService, natsPub)
	goalService := service.NewGoalService(uowFactory, natsPub)
	guidanceService := service.NewGuidanceService(promptCounterRepo)
	counselService := service.NewCounselService(uowFactory, llmProvider, cfg.Features.Medication)

	activityLogger := logger.NewIsolatedLogger("logs/activity.log")
	var activityService *service.ActivityService
	if natsSub != nil {
		activityService = service.NewActivityService(natsSub, activityLogger)
	} else {
		sysLogger.Warn("Bootstrap", "NATS unavailable, activity audit log disabled", nil)
	}

	// 7. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		DiaryController:    controller.NewDiaryController(diaryService),
		GoalController:     controller.NewGoalController(goalService),
		InsightController:  controller.NewInsightController(insightService),
		GuidanceController: controller.NewGuidanceController(guidanceService),
		CounselController:  controller.NewCounselController(counselService),
		ConsumerService:    consumerService,
		ActivityService:    activityService,
	}
}
