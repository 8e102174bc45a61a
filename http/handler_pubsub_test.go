package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"storefront/api"
	"storefront/entities"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPubSubHandler() (Handler, *api.TopicServiceMock, *api.EmailServiceMock) {
	topicSvc := &api.TopicServiceMock{}
	emailSvc := &api.EmailServiceMock{}
	handler := Handler{
		topicSvc:      topicSvc,
		subscriptions: api.NewSubscriptionRegistry(),
		emailSvc:      emailSvc,
		emailFrom:     "orders@storefront.local",
		emailTo:       "customer@example.com",
	}
	return handler, topicSvc, emailSvc
}

func postPubSubEvent(t *testing.T, handler Handler, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/pubsub/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, handler.PostPubSubEvent(c)
}

func TestSubscriptionConfirmation(t *testing.T) {
	handler, topicSvc, emailSvc := newPubSubHandler()

	body := `{"type":"SubscriptionConfirmation","topic_ref":"orders-topic","token":"tok-123"}`
	rec, err := postPubSubEvent(t, handler, body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, topicSvc.ConfirmedTopics, 1)
	assert.Equal(t, "orders-topic", topicSvc.ConfirmedTopics[0])
	assert.Equal(t, api.SubscriptionConfirmed, handler.subscriptions.State("orders-topic"))

	// a handshake challenge never triggers an email
	assert.Empty(t, emailSvc.SentEmails)
}

func TestSubscriptionConfirmationIsIdempotent(t *testing.T) {
	handler, topicSvc, _ := newPubSubHandler()

	body := `{"type":"SubscriptionConfirmation","topic_ref":"orders-topic","token":"tok-123"}`
	for i := 0; i < 3; i++ {
		rec, err := postPubSubEvent(t, handler, body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Len(t, topicSvc.ConfirmedTopics, 3)
	assert.Equal(t, api.SubscriptionConfirmed, handler.subscriptions.State("orders-topic"))
}

func TestSubscriptionConfirmationFailure(t *testing.T) {
	handler, topicSvc, _ := newPubSubHandler()
	topicSvc.ConfirmErr = assert.AnError

	body := `{"type":"SubscriptionConfirmation","topic_ref":"orders-topic","token":"tok-123"}`
	_, err := postPubSubEvent(t, handler, body)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	assert.Equal(t, api.SubscriptionUnconfirmed, handler.subscriptions.State("orders-topic"))
}

func deliveredNotification(t *testing.T, order entities.Order) string {
	t.Helper()

	payload, err := json.Marshal(entities.TopicMessage{
		Kind:  entities.TopicMessageKindOrderPlaced,
		Order: order,
	})
	require.NoError(t, err)

	envelope, err := json.Marshal(entities.ProviderMessage{
		Type:    entities.ProviderMessageNotification,
		Message: string(payload),
	})
	require.NoError(t, err)

	return string(envelope)
}

func TestNotificationTriggersExactlyOneEmail(t *testing.T) {
	handler, _, emailSvc := newPubSubHandler()

	order := entities.Order{
		OrderID: uuid.New(),
		Lines: []entities.OrderLine{{
			ProductID: uuid.New(),
			Name:      "keyboard",
			Quantity:  2,
			Price:     entities.NewMoney(10000, "PHP"),
		}},
		TotalAmount: entities.NewMoney(20000, "PHP"),
		PlacedAt:    time.Now().UTC(),
	}

	rec, err := postPubSubEvent(t, handler, deliveredNotification(t, order))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, emailSvc.SentEmails, 1)
	sent := emailSvc.SentEmails[0]
	assert.Equal(t, "orders@storefront.local", sent.From)
	assert.Equal(t, "customer@example.com", sent.To)
	assert.Contains(t, sent.HTMLBody, order.OrderID.String())
	assert.Contains(t, sent.HTMLBody, "keyboard")
}

func TestNotificationAcksEvenWhenEmailFails(t *testing.T) {
	handler, _, emailSvc := newPubSubHandler()
	emailSvc.SendErr = assert.AnError

	order := entities.Order{OrderID: uuid.New()}
	rec, err := postPubSubEvent(t, handler, deliveredNotification(t, order))
	require.NoError(t, err)

	// at most one attempt: a send failure must not make the provider re-deliver
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, emailSvc.SentEmails)
}

func TestProviderPushWithTextContentType(t *testing.T) {
	f := newRouterFixture(t)

	order := entities.Order{OrderID: uuid.New()}
	req := httptest.NewRequest(http.MethodPost, "/pubsub/events", strings.NewReader(deliveredNotification(t, order)))
	req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	req.Header.Set("X-Pubsub-Message-Type", "Notification")
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	// the provider pushes JSON as text/plain; the router rewrites it
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, f.emailSvc.SentEmails, 1)
}

func TestNotificationMalformedPayload(t *testing.T) {
	handler, _, emailSvc := newPubSubHandler()

	body := `{"type":"Notification","message":"not json"}`
	_, err := postPubSubEvent(t, handler, body)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Empty(t, emailSvc.SentEmails)
}
