// Package bootstrap wires configuration, repositories, services and the HTTP router.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/alumniconnect/internal/app/auth"
	appControllers "github.com/yigit/alumniconnect/internal/app/controllers"
	"github.com/yigit/alumniconnect/internal/app/dashboard"
	"github.com/yigit/alumniconnect/internal/app/gateway"
	appRepos "github.com/yigit/alumniconnect/internal/app/repositories"
	appRoutes "github.com/yigit/alumniconnect/internal/app/routes"
	appServices "github.com/yigit/alumniconnect/internal/app/services"
	"github.com/yigit/alumniconnect/internal/config"
	appMiddleware "github.com/yigit/alumniconnect/internal/middleware"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
	pkgAuth "github.com/yigit/alumniconnect/internal/pkg/auth"
	"github.com/yigit/alumniconnect/internal/pkg/email"
	"github.com/yigit/alumniconnect/internal/pkg/helpers"
	"github.com/yigit/alumniconnect/internal/pkg/latency"
	"github.com/yigit/alumniconnect/internal/pkg/logger"
	"github.com/yigit/alumniconnect/internal/pkg/websocket"
	"github.com/yigit/alumniconnect/internal/seed"
)

// DefaultConfigPath is read when no other path is given
const DefaultConfigPath = "configs/config.yaml"

// Core is the domain layer shared by the API server and the terminal client
type Core struct {
	Repos      *appRepos.Repositories
	JWTService *pkgAuth.JWTService
	Services   *appServices.Services
	Publisher  activity.Publisher
	Logger     zerolog.Logger
}

// Close releases the activity publisher.
func (c *Core) Close() error {
	return c.Publisher.Close()
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	*Core
	AuthzService   *appAuth.AuthorizationService
	Composer       *dashboard.Composer
	Hub            *websocket.Hub
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
}

// LoadConfigAndSetupLogger loads .env files and the configuration, then configures the logger.
// Log output goes to out, or stdout when out is nil.
func LoadConfigAndSetupLogger(configPath string, out io.Writer) (*config.Config, zerolog.Logger, error) {
	if err := config.LoadEnvFiles(); err != nil {
		logger.Warn().Err(err).Msg("Failed to load .env files")
	}

	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	if out == nil {
		out = os.Stdout
	}
	lgr := logger.Configure(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: out,
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// NewPublisher fans activity events out to Kafka and the email notifier when enabled.
// With neither enabled events are dropped.
func NewPublisher(cfg *config.Config, users email.Directory, lgr zerolog.Logger) activity.Publisher {
	var pubs activity.Fanout
	if cfg.Kafka.Enabled {
		lgr.Info().Strs("brokers", cfg.KafkaBrokers()).Str("topic", cfg.Kafka.Topic).Msg("Publishing activity events to Kafka")
		pubs = append(pubs, activity.NewKafkaPublisher(cfg.KafkaBrokers(), cfg.Kafka.Topic, lgr))
	}
	if cfg.Email.Enabled {
		sender := email.NewSMTPSender(email.SMTPConfig{
			Host:      cfg.Email.Host,
			Port:      cfg.Email.Port,
			Username:  cfg.Email.Username,
			Password:  cfg.Email.Password,
			FromName:  cfg.Email.FromName,
			FromEmail: cfg.Email.FromEmail,
			UseTLS:    cfg.Email.UseTLS,
		}, lgr)
		lgr.Info().Str("host", cfg.Email.Host).Msg("Email notifications enabled")
		pubs = append(pubs, email.NewNotifier(sender, users, lgr))
	}

	switch len(pubs) {
	case 0:
		return activity.Noop{}
	case 1:
		return pubs[0]
	default:
		return pubs
	}
}

// BuildCore creates the repositories, loads the fixture data and wires the services.
func BuildCore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Core, error) {
	core := &Core{Logger: lgr}

	core.Repos = appRepos.NewRepositories()
	if err := seed.CreateDefaultData(ctx, core.Repos, lgr, seed.Options{BcryptCost: cfg.Security.BcryptCost}); err != nil {
		return nil, fmt.Errorf("failed to create default data: %w", err)
	}

	core.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	core.Services = appServices.NewServices(core.Repos, core.JWTService, appServices.Settings{
		StrictTransitions: cfg.Mentorship.StrictTransitions,
		BcryptCost:        cfg.Security.BcryptCost,
	}, lgr)
	core.Publisher = NewPublisher(cfg, core.Repos.UserRepository, lgr)
	return core, nil
}

// NewGateway builds a gateway over core with the configured latency.
func NewGateway(core *Core, cfg *config.Config, opts ...gateway.Option) *gateway.Gateway {
	base := []gateway.Option{
		gateway.WithLatencyConfig(cfg.Gateway.Latency),
		gateway.WithPublisher(core.Publisher),
	}
	return gateway.New(core.Services, core.Logger, append(base, opts...)...)
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	core, err := BuildCore(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}
	deps := &Dependencies{Core: core}
	svcs := core.Services

	deps.AuthzService = appAuth.NewAuthorizationService(core.Repos.MentorshipRepository, core.Repos.ConversationRepository)

	// Server-side dashboards skip the simulated latency.
	dashboardSource := NewGateway(core, cfg, gateway.WithSleeper(latency.None{}))
	deps.Composer = dashboard.NewComposer(dashboardSource, cfg.Dashboard.FundraisingTarget, lgr)

	deps.Hub = websocket.NewHub(lgr)
	messages := websocket.NewMessageHandler(svcs.Message, deps.Hub, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(svcs.Auth)

	deps.Controllers = appRoutes.Controllers{
		Health:       appControllers.NewHealthController(),
		Auth:         appControllers.NewAuthController(svcs.Auth, core.Publisher, lgr),
		Alumni:       appControllers.NewAlumniController(svcs.Alumni, core.Publisher, lgr),
		Event:        appControllers.NewEventController(svcs.Event, core.Publisher, lgr),
		Mentorship:   appControllers.NewMentorshipController(svcs.Mentorship, deps.AuthzService, core.Publisher, lgr),
		Donation:     appControllers.NewDonationController(svcs.Donation, svcs.Alumni, deps.Composer, core.Publisher, lgr),
		Dashboard:    appControllers.NewDashboardController(svcs.Alumni, deps.Composer, lgr),
		Catalog:      appControllers.NewCatalogController(svcs.Catalog),
		Conversation: appControllers.NewConversationController(svcs.Message, messages, core.Publisher, lgr),
		WebSocket:    websocket.NewHandler(deps.Hub, messages, lgr),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	appMiddleware.RegisterValidation()

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)
	return router
}
