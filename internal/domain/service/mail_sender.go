package service

import "context"

// MailSender delivers a transactional email through the external mail function.
type MailSender interface {
	Send(ctx context.Context, template, to string, data map[string]string) error
}
