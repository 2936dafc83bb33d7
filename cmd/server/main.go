package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"luxride/internal/changes"
	"luxride/internal/config"
	"luxride/internal/controllers"
	"luxride/internal/events"
	"luxride/internal/geo"
	"luxride/internal/logger"
	"luxride/internal/middleware"
	"luxride/internal/repository"
	"luxride/internal/routes"
	"luxride/internal/services"
	"luxride/internal/tracking"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	rotator := logger.Setup(cfg.LogFile, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB(cfg, logger.GormLogger())
	if err != nil {
		logrus.WithError(err).Fatal("Database setup failed")
	}
	store := repository.New(db)

	var popular repository.PopularityCounter = store
	if cfg.RedisURL != "" {
		rdb, err := config.InitRedis(ctx, cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Fatal("Redis setup failed")
		}
		defer rdb.Close()
		popular = repository.NewRedisPopularity(rdb)
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.AMQPURL != "" {
		mq, err := events.DialRabbitMQ(cfg.AMQPURL)
		if err != nil {
			logrus.WithError(err).Fatal("RabbitMQ setup failed")
		}
		publisher = mq
	}
	defer publisher.Close()

	hub := changes.NewHub()
	go hub.Run(ctx)

	var notifier changes.Notifier = changes.NewLocal(hub)
	if cfg.DBDriver == "postgres" {
		notifier = changes.NewPostgres(db)
		go func() {
			if err := changes.Listen(ctx, cfg.DSN(), hub); err != nil {
				logrus.WithError(err).Error("Change listener stopped")
			}
		}()
	}

	auth := middleware.NewAuth(cfg.JWTSecret, cfg.TokenTTL)
	feed := tracking.NewSimulator(cfg.TrackingPeriod, cfg.TrackingSpeed, time.Now().UnixNano())
	resolver := geo.NewResolver(cfg.GeocoderURL, 5*time.Second)

	schedules := services.NewSchedules(store, notifier)
	ratings := services.NewRatings(store, store)

	ctl := routes.Controllers{
		Auth:     controllers.NewAuthController(services.NewAccounts(store), auth),
		Booking:  controllers.NewBookingController(services.NewBookings(store, popular, notifier, publisher)),
		Inbox:    controllers.NewInboxController(services.NewInbox(store, notifier)),
		Place:    controllers.NewPlaceController(services.NewPlaces(store, popular, notifier)),
		Schedule: controllers.NewScheduleController(schedules, ratings),
		Location: controllers.NewLocationController(resolver),
		Socket:   controllers.NewSocketController(auth, feed, hub),
	}

	r := gin.New()
	r.Use(
		ginlog.SetLogger(
			ginlog.WithWriter(rotator),
			ginlog.WithUTC(true),
			ginlog.WithSkipPath([]string{"/healthz"}),
		),
		gin.Recovery(),
		middleware.CORS(),
	)
	routes.SetupRouter(r, ctl, auth)

	srv := &http.Server{Addr: cfg.Addr, Handler: r}
	go func() {
		log.Printf("Server running at %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
}
