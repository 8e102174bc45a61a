package service

import (
	"context"
	"net/http"
	"storefront/api"
	"storefront/config"
	"storefront/db"
	"storefront/fulfillment"
	storefrontHttp "storefront/http"
	"storefront/message"
	"storefront/message/event"
	"storefront/observability"
	"storefront/ws"

	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type TopicService interface {
	event.TopicService
	storefrontHttp.TopicConfirmer
}

type Service struct {
	httpAddr        string
	watermillRouter *watermillMessage.Router
	echoRouter      *echo.Echo
}

func New(
	cfg config.Config,
	redisClient *redis.Client,
	conn db.DB,
	topicService TopicService,
	emailService storefrontHttp.EmailSender,
	hub *ws.Hub,
) Service {
	watermillLogger := observability.NewWatermillLogger(logrus.NewEntry(logrus.StandardLogger()))

	redisPublisher := message.NewRedisPublisher(redisClient, watermillLogger)
	eventBus := event.NewBus(redisPublisher)

	productRepo := db.NewProductRepository(&conn)
	cartRepo := db.NewCartRepository(&conn)
	orderRepo := db.NewOrderRepository(&conn)
	waitlistRepo := db.NewWaitlistRepository(&conn)

	allocator := fulfillment.NewAllocator(productRepo, productRepo)
	fulfillmentSvc := fulfillment.NewService(allocator, cartRepo, orderRepo, waitlistRepo, eventBus)

	eventsHandler := event.NewHandler(orderRepo, topicService, hub)
	eventProcessorConfig := event.NewProcessorConfig(redisClient, watermillLogger)

	watermillRouter := message.NewWatermillRouter(
		eventProcessorConfig,
		eventsHandler,
		watermillLogger,
	)

	subscriptions := api.NewSubscriptionRegistry()

	echoRouter := storefrontHttp.NewHttpRouter(
		fulfillmentSvc,
		productRepo,
		cartRepo,
		orderRepo,
		waitlistRepo,
		topicService,
		subscriptions,
		emailService,
		hub,
		cfg.EmailFrom,
		cfg.EmailTo,
	)

	return Service{
		httpAddr:        cfg.HTTPAddr,
		watermillRouter: watermillRouter,
		echoRouter:      echoRouter,
	}
}

func (s Service) Run(
	ctx context.Context,
) error {
	errgrp, ctx := errgroup.WithContext(ctx)

	errgrp.Go(func() error {
		return s.watermillRouter.Run(ctx)
	})

	errgrp.Go(func() error {
		// the HTTP server must not report healthy before the message router is ready
		<-s.watermillRouter.Running()

		err := s.echoRouter.Start(s.httpAddr)
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	errgrp.Go(func() error {
		<-ctx.Done()
		return s.echoRouter.Shutdown(context.Background())
	})

	return errgrp.Wait()
}
