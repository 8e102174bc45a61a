package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"storefront/api"
	"storefront/db"
	"storefront/entities"
	"storefront/fulfillment"
	"storefront/ws"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventPublisherStub struct{}

func (eventPublisherStub) Publish(ctx context.Context, event any) error { return nil }

type routerFixture struct {
	e            *echo.Echo
	productRepo  *db.ProductRepositoryMock
	cartRepo     *db.CartRepositoryMock
	orderRepo    *db.OrderRepositoryMock
	waitlistRepo *db.WaitlistRepositoryMock
	emailSvc     *api.EmailServiceMock
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()

	f := routerFixture{
		productRepo:  db.NewProductRepositoryMock(),
		cartRepo:     db.NewCartRepositoryMock(),
		orderRepo:    db.NewOrderRepositoryMock(),
		waitlistRepo: db.NewWaitlistRepositoryMock(),
		emailSvc:     &api.EmailServiceMock{},
	}

	allocator := fulfillment.NewAllocator(f.productRepo, f.productRepo)
	svc := fulfillment.NewService(allocator, f.cartRepo, f.orderRepo, f.waitlistRepo, eventPublisherStub{})

	f.e = NewHttpRouter(
		svc,
		f.productRepo,
		f.cartRepo,
		f.orderRepo,
		f.waitlistRepo,
		&api.TopicServiceMock{},
		api.NewSubscriptionRegistry(),
		f.emailSvc,
		ws.NewHub("*"),
		"orders@storefront.local",
		"customer@example.com",
	)
	return f
}

func (f routerFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestPlaceOrderEndpoint(t *testing.T) {
	f := newRouterFixture(t)

	product := entities.Product{
		ProductID: uuid.New(),
		Name:      "gadget",
		Price:     entities.NewMoney(10000, "PHP"),
		Stock:     4,
	}
	require.NoError(t, f.productRepo.Create(context.Background(), product))

	cart := entities.Cart{
		CartID: uuid.New(),
		Lines:  []entities.CartLine{{ProductID: product.ProductID, Quantity: 10}},
	}
	require.NoError(t, f.cartRepo.Create(context.Background(), cart))

	rec := f.do(t, http.MethodPost, "/orders/"+cart.CartID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result fulfillment.PlaceOrderResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.OrderedLines, 1)
	assert.Equal(t, 4, result.OrderedLines[0].Quantity)
	require.Len(t, result.WaitlistLines, 1)
	assert.Equal(t, 6, result.WaitlistLines[0].Quantity)

	// the cart is consumed by the order
	rec = f.do(t, http.MethodGet, "/carts/"+cart.CartID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlaceOrderEndpointCartNotFound(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodPost, "/orders/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlaceOrderEndpointProductNotFound(t *testing.T) {
	f := newRouterFixture(t)

	cart := entities.Cart{
		CartID: uuid.New(),
		Lines:  []entities.CartLine{{ProductID: uuid.New(), Quantity: 1}},
	}
	require.NoError(t, f.cartRepo.Create(context.Background(), cart))

	rec := f.do(t, http.MethodPost, "/orders/"+cart.CartID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductCRUD(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodPost, "/products", productRequest{
		Name:        "keyboard",
		Description: "mechanical",
		Price:       entities.NewMoney(12550, "PHP"),
		Stock:       5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entities.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = f.do(t, http.MethodGet, "/products/"+created.ProductID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPut, "/products/"+created.ProductID.String(), productRequest{
		Name:  "keyboard v2",
		Price: entities.NewMoney(13000, "PHP"),
		Stock: 7,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodDelete, "/products/"+created.ProductID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/products/"+created.ProductID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCartValidation(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodPost, "/carts", cartRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/carts", cartRequest{
		Lines: []entities.CartLine{{ProductID: uuid.New(), Quantity: 0}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetWaitlistEndpoint(t *testing.T) {
	f := newRouterFixture(t)

	require.NoError(t, f.waitlistRepo.Create(context.Background(), entities.WaitlistEntry{
		EntryID:   uuid.New(),
		ProductID: uuid.New(),
		Name:      "gadget",
		Quantity:  3,
		Price:     entities.NewMoney(1000, "PHP"),
	}))

	rec := f.do(t, http.MethodGet, "/waitlist", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []entities.WaitlistEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Quantity)
}
