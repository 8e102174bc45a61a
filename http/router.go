package http

import (
	"net/http"
	"storefront/api"
	"storefront/ws"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func NewHttpRouter(
	fulfillmentSvc FulfillmentService,
	productRepo ProductRepository,
	cartRepo CartRepository,
	orderRepo OrderRepository,
	waitlistRepo WaitlistRepository,
	topicSvc TopicConfirmer,
	subscriptions *api.SubscriptionRegistry,
	emailSvc EmailSender,
	hub *ws.Hub,
	emailFrom string,
	emailTo string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(otelecho.Middleware("storefront"))

	// the pub/sub provider pushes JSON with a text/plain content type;
	// rewrite it so Bind works
	e.Pre(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-Pubsub-Message-Type") != "" {
				c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			}
			return next(c)
		}
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler := Handler{
		fulfillmentSvc: fulfillmentSvc,
		productRepo:    productRepo,
		cartRepo:       cartRepo,
		orderRepo:      orderRepo,
		waitlistRepo:   waitlistRepo,
		topicSvc:       topicSvc,
		subscriptions:  subscriptions,
		emailSvc:       emailSvc,
		broadcaster:    hub,
		emailFrom:      emailFrom,
		emailTo:        emailTo,
	}

	e.GET("/products", handler.GetProducts)
	e.GET("/products/:product_id", handler.GetProductByID)
	e.POST("/products", handler.PostProduct)
	e.PUT("/products/:product_id", handler.PutProduct)
	e.DELETE("/products/:product_id", handler.DeleteProduct)

	e.POST("/carts", handler.PostCart)
	e.GET("/carts/:cart_id", handler.GetCartByID)

	e.POST("/orders/:cart_id", handler.PostPlaceOrder)
	e.GET("/orders", handler.GetOrders)
	e.GET("/orders/:order_id", handler.GetOrderByID)

	e.GET("/waitlist", handler.GetWaitlist)

	e.POST("/pubsub/events", handler.PostPubSubEvent)

	e.GET("/ws", hub.HandleWS)

	return e
}
