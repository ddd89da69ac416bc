package service

import (
	"context"
	"time"
)

// AuthEventType names an audit-worthy change in the credential lifecycle.
type AuthEventType string

const (
	AuthEventAccountBootstrapped AuthEventType = "account.bootstrapped"
	AuthEventAccountRegistered   AuthEventType = "account.registered"
	AuthEventSessionRevoked      AuthEventType = "session.revoked"
	AuthEventRecoveryCodeIssued  AuthEventType = "recovery.code_issued"
	AuthEventPasswordReset       AuthEventType = "password.reset"
)

// AuthEvent is published for downstream consumers such as the mail worker.
type AuthEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Type       AuthEventType     `json:"type"`
	AccountID  string            `json:"account_id"`
	Email      string            `json:"email,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuthEvent publishes an auth event for async processing
	PublishAuthEvent(ctx context.Context, event *AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
