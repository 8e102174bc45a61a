package entities

// Message classes pushed by the pub/sub provider to the callback endpoint.
const (
	ProviderMessageSubscriptionConfirmation = "SubscriptionConfirmation"
	ProviderMessageNotification             = "Notification"
)

// ProviderMessage is the envelope the pub/sub provider POSTs to us. For a
// SubscriptionConfirmation only TopicRef and Token are set; for a delivered
// Notification the Message field holds the serialized TopicMessage.
type ProviderMessage struct {
	Type     string `json:"type"`
	TopicRef string `json:"topic_ref"`
	Token    string `json:"token"`
	Message  string `json:"message"`
}

const TopicMessageKindOrderPlaced = "OrderPlaced"

// TopicMessage is the payload published to the external topic and delivered
// back to us inside a Notification. Best effort: not persisted, not retried
// by this service.
type TopicMessage struct {
	Kind  string `json:"kind"`
	Order Order  `json:"order"`
}
