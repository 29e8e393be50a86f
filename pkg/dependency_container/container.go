package dependency_container

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/app/classification"
	"github.com/teatime-labs/moodgate/pkg/app/escalation"
	"github.com/teatime-labs/moodgate/pkg/common"
	"github.com/teatime-labs/moodgate/pkg/config"
	"github.com/teatime-labs/moodgate/pkg/domain/draft"
	"github.com/teatime-labs/moodgate/pkg/domain/emergency"
	"github.com/teatime-labs/moodgate/pkg/domain/post"
	handlers "github.com/teatime-labs/moodgate/pkg/handlers/http"
	"github.com/teatime-labs/moodgate/pkg/infra/auth/jwt"
	"github.com/teatime-labs/moodgate/pkg/infra/cache"
	"github.com/teatime-labs/moodgate/pkg/infra/crisis"
	"github.com/teatime-labs/moodgate/pkg/infra/database"
	"github.com/teatime-labs/moodgate/pkg/infra/events/kafka"
	"github.com/teatime-labs/moodgate/pkg/infra/gatewayclient"
	"github.com/teatime-labs/moodgate/pkg/infra/httpx"
	providersFactory "github.com/teatime-labs/moodgate/pkg/infra/providers/factory"
	"github.com/teatime-labs/moodgate/pkg/infra/repository"
	"github.com/teatime-labs/moodgate/pkg/middleware"
	"github.com/teatime-labs/moodgate/pkg/version"
)

type Container struct {
	Cache               cache.Client
	JWTManager          jwt.Manager
	Classifier          classification.Classifier
	Composer            escalation.Composer
	DraftRepository     draft.Repository
	PostRepository      post.Repository
	MiddlewareTransport *middleware.Transport
	HandlerTransport    handlers.HandlerTransport

	kafkaPublisher *kafka.Publisher
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	DB     *database.DB
	// Cache is optional. When nil a client is built from Cfg.Redis.
	Cache cache.Client
}

func NewContainer(di ContainerDI) (*Container, error) {
	cacheInstance := di.Cache
	if cacheInstance == nil {
		var err error
		cacheInstance, err = cache.NewClient(di.Cfg.Redis, di.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cache: %w", err)
		}
	}

	// classification gateway
	providerLocator := providersFactory.NewProviderLocator()
	providerClient, err := providerLocator.Get(di.Cfg.Classifier.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize classifier provider: %w", err)
	}
	crisisDetector, err := crisis.NewKeywordDetector(di.Cfg.Crisis.Keywords)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize crisis detector: %w", err)
	}
	classifier := classification.NewClassifier(
		di.Logger,
		providerClient,
		providersFactory.NewProviderConfig(di.Cfg.Classifier),
		crisisDetector,
		classification.Options{
			ProviderName:           di.Cfg.Classifier.Provider,
			CrisisMessage:          di.Cfg.Crisis.Message,
			DegradeOnUpstreamError: di.Cfg.Classifier.DegradeOnUpstreamError,
		},
	)

	// repository
	draftRepository := repository.NewRedisDraftRepository(cacheInstance.RedisClient(), repository.DraftRepositoryOpts{
		DraftTTL: di.Cfg.Detection.DraftTTL,
		LockTTL:  di.Cfg.Detection.LockTTL,
	})
	postRepository := repository.NewPostRepository(di.DB.DB)

	// risk escalation
	gatewayClient := gatewayclient.NewClient(
		di.Logger,
		di.Cfg.Detection,
		httpx.NewFastHTTPClient(
			httpx.WithTimeout(httpx.DefaultTimeout),
			httpx.WithUserAgent(fmt.Sprintf("%s/%s", version.AppName, version.Version)),
		),
	)
	var composerOpts []escalation.ComposerOption
	var kafkaPublisher *kafka.Publisher
	switch di.Cfg.Events.Publisher {
	case "":
		di.Logger.Info("flagged post events are disabled")
	case kafka.PublisherName:
		kafkaPublisher, err = kafka.NewPublisher(di.Logger, di.Cfg.Events.Settings)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize event publisher: %w", err)
		}
		composerOpts = append(composerOpts, escalation.WithEventPublisher(kafkaPublisher))
	default:
		return nil, fmt.Errorf("unsupported event publisher: %s", di.Cfg.Events.Publisher)
	}
	composer := escalation.NewComposer(
		di.Logger,
		draftRepository,
		postRepository,
		gatewayClient,
		emergency.NewDirectory(di.Cfg.Emergency),
		composerOpts...,
	)

	jwtManager := jwt.NewJwtManager(di.Cfg.Auth)

	middlewareTransport := middleware.NewTransport(
		middleware.NewAuthMiddleware(di.Logger, jwtManager),
		middleware.NewPanicRecoverMiddleware(di.Logger),
		middleware.NewCORSGlobalMiddleware(
			di.Cfg.Server.AllowOrigins,
			common.CORSAllowHeaders,
			[]string{"GET", "POST", "PATCH", "OPTIONS"},
			"86400",
		),
	)
	if di.Cfg.Metrics.Enabled {
		middlewareTransport.RegisterMiddleware(middleware.NewMetricsMiddleware(di.Logger))
	}

	handlerTransport := handlers.HandlerTransport{
		AnalyzeEmotionHandler: handlers.NewAnalyzeEmotionHandler(di.Logger, classifier),

		CreateDraftHandler:      handlers.NewCreateDraftHandler(di.Logger, composer),
		GetDraftHandler:         handlers.NewGetDraftHandler(di.Logger, composer),
		UpdateDraftHandler:      handlers.NewUpdateDraftHandler(di.Logger, composer),
		DetectEmotionHandler:    handlers.NewDetectEmotionHandler(di.Logger, composer),
		DismissEmergencyHandler: handlers.NewDismissEmergencyHandler(di.Logger, composer),
		SubmitDraftHandler:      handlers.NewSubmitDraftHandler(di.Logger, composer),

		GetPostSupportHandler: handlers.NewGetPostSupportHandler(di.Logger, postRepository),

		GetVersionHandler: handlers.NewGetVersionHandler(di.Logger),
	}

	return &Container{
		Cache:               cacheInstance,
		JWTManager:          jwtManager,
		Classifier:          classifier,
		Composer:            composer,
		DraftRepository:     draftRepository,
		PostRepository:      postRepository,
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		kafkaPublisher:      kafkaPublisher,
	}, nil
}

// Close flushes pending events and releases the redis connection.
func (c *Container) Close() error {
	if c.kafkaPublisher != nil {
		c.kafkaPublisher.Close()
	}
	return c.Cache.Close()
}
