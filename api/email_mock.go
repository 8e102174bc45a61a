package api

import (
	"context"
	"sync"
)

type SentEmail struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

type EmailServiceMock struct {
	lock sync.Mutex

	SentEmails []SentEmail
	SendErr    error
}

func (m *EmailServiceMock) SendEmail(ctx context.Context, from string, to string, subject string, htmlBody string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.SendErr != nil {
		return m.SendErr
	}
	m.SentEmails = append(m.SentEmails, SentEmail{
		From:     from,
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
	return nil
}
