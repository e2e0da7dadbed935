// @title VideoTube API
// @version 1.0
// @description Video sharing backend: videos, comments, likes, subscriptions, tweets and playlists.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/NiraJ01010101/chaiBackend/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	"github.com/NiraJ01010101/chaiBackend/bootstrap"
	"github.com/NiraJ01010101/chaiBackend/config"
	"github.com/NiraJ01010101/chaiBackend/database"
	"github.com/NiraJ01010101/chaiBackend/internal/controllers"
	"github.com/NiraJ01010101/chaiBackend/internal/mailer"
	"github.com/NiraJ01010101/chaiBackend/internal/middleware"
	"github.com/NiraJ01010101/chaiBackend/internal/repository"
	"github.com/NiraJ01010101/chaiBackend/internal/resetstore"
	"github.com/NiraJ01010101/chaiBackend/internal/routes"
	"github.com/NiraJ01010101/chaiBackend/internal/services"
	"github.com/NiraJ01010101/chaiBackend/internal/storage"
	"github.com/NiraJ01010101/chaiBackend/internal/tokens"
)

func main() {
	cfg := config.LoadConfig()
	config.SetupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	startCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	client, db, err := database.ConnectMongo(startCtx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		cancel()
		logrus.Fatalf("mongo: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logrus.WithError(err).Warn("mongo disconnect")
		}
	}()

	// Unique indexes back the like and subscription toggles
	if err := bootstrap.EnsureIndexes(startCtx, db); err != nil {
		cancel()
		logrus.Fatalf("ensure indexes failed: %v", err)
	}

	assets, err := storage.NewMinio(startCtx, cfg.Minio)
	cancel()
	if err != nil {
		logrus.Fatalf("object storage: %v", err)
	}

	rdb := resetstore.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer rdb.Close()

	tm := tokens.NewManager(cfg)

	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	userRepo := repository.NewUserRepository(db)

	opts := controllers.NewOptions(cfg)
	handlers := routes.Handlers{
		Videos: &controllers.VideoHandler{
			Svc: services.NewVideoService(videoRepo, userRepo, assets), Opts: opts,
		},
		Comments: &controllers.CommentHandler{
			Svc: services.NewCommentService(commentRepo, videoRepo), Opts: opts,
		},
		Likes: &controllers.LikeHandler{
			Svc: services.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo), Opts: opts,
		},
		Subscriptions: &controllers.SubscriptionHandler{
			Svc: services.NewSubscriptionService(subRepo, userRepo), Opts: opts,
		},
		Tweets: &controllers.TweetHandler{
			Svc: services.NewTweetService(tweetRepo, userRepo), Opts: opts,
		},
		Playlists: &controllers.PlaylistHandler{
			Svc: services.NewPlaylistService(playlistRepo, videoRepo), Opts: opts,
		},
		Users: &controllers.UserHandler{
			Svc: services.NewUserService(userRepo, assets, tm, resetstore.New(rdb),
				mailer.NewSMTP(cfg.SMTP), cfg.ClientURL),
			Opts: opts,
		},
		Dashboard: &controllers.DashboardHandler{
			Svc: services.NewDashboardService(videoRepo, subRepo), Opts: opts,
		},
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    512 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: cfg.CORSOrigin != "*",
	}))

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// Routes
	routes.Setup(app, handlers, middleware.JWTAuth(tm, userRepo, cfg.RequestTimeout))

	go func() {
		<-ctx.Done()
		logrus.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logrus.WithError(err).Warn("shutdown")
		}
	}()

	logrus.Infof("listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.WithError(err).Error("server stopped")
	}
}
