package main

import (
	"context"
	"os"
	"os/signal"
	"storefront/api"
	"storefront/config"
	"storefront/db"
	"storefront/message"
	"storefront/observability"
	"storefront/service"
	"storefront/ws"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}
	logrus.SetLevel(logrus.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	if cfg.JaegerEndpoint != "" {
		tp := observability.ConfigureTraceProvider(cfg.JaegerEndpoint)
		defer func() {
			_ = tp.Shutdown(context.Background())
		}()
	}

	conn, err := db.NewDBConn(cfg.PostgresURL)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to postgres")
	}
	defer conn.Close()
	conn.MigrateSchema()

	redisClient := message.NewRedisClient(cfg.RedisAddr)
	defer redisClient.Close()

	topicService := api.NewTopicServiceClient(cfg.PubSubProviderURL, cfg.TopicRef)
	emailService := api.NewEmailServiceClient(cfg.EmailProviderURL)
	hub := ws.NewHub(cfg.WSAllowedOrigin)

	svc := service.New(cfg, redisClient, conn, topicService, emailService, hub)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logrus.Info("Server starting...")

	if err := svc.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("service stopped")
	}
}
