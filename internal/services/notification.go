package services

import (
	"context"
	"log/slog"
)

// NotificationService delivers a message over one channel.
type NotificationService interface {
	Send(ctx context.Context, message string) error
}

type EmailNotificationService struct{}

func (EmailNotificationService) Send(_ context.Context, message string) error {
	slog.Info("email notification sent", "message", message)
	return nil
}

type SMSNotificationService struct{}

func (SMSNotificationService) Send(_ context.Context, message string) error {
	slog.Info("sms notification sent", "message", message)
	return nil
}

// NotificationHandler fans one message out to every channel.
type NotificationHandler struct {
	email NotificationService
	sms   NotificationService
}

func NewNotificationHandler(email, sms NotificationService) *NotificationHandler {
	return &NotificationHandler{email: email, sms: sms}
}

func (h *NotificationHandler) Handle(ctx context.Context, message string) error {
	if err := h.email.Send(ctx, message); err != nil {
		return err
	}
	return h.sms.Send(ctx, message)
}
