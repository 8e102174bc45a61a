package api

import (
	"context"
	"storefront/entities"
	"sync"
)

type TopicServiceMock struct {
	lock sync.Mutex

	PublishedMessages []entities.TopicMessage
	ConfirmedTopics   []string

	PublishErr error
	ConfirmErr error
}

func (m *TopicServiceMock) Publish(ctx context.Context, msg entities.TopicMessage) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.PublishErr != nil {
		return m.PublishErr
	}
	m.PublishedMessages = append(m.PublishedMessages, msg)
	return nil
}

func (m *TopicServiceMock) ConfirmSubscription(ctx context.Context, topicRef string, token string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.ConfirmErr != nil {
		return m.ConfirmErr
	}
	m.ConfirmedTopics = append(m.ConfirmedTopics, topicRef)
	return nil
}
