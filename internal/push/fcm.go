// Package push delivers device notifications for the fan-out dispatcher.
package push

import (
	"context"

	"murmur/config"
	"murmur/pkg/logger"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// FCM rejects multicast batches above this size.
const maxMulticastTokens = 500

type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type FCMNotifier struct {
	client multicastSender
	logger logger.Logger
}

func NewFCMNotifier(ctx context.Context, cfg config.Push, logger logger.Logger) (*FCMNotifier, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "push.NewFCMNotifier.NewApp")
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "push.NewFCMNotifier.Messaging")
	}
	return newFCMNotifier(client, logger), nil
}

func newFCMNotifier(client multicastSender, logger logger.Logger) *FCMNotifier {
	return &FCMNotifier{client: client, logger: logger.With("component", "push")}
}

// SendMulticast sends one notification to every token. Per-token failures
// are logged; only transport failures are returned.
func (n *FCMNotifier) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	for start := 0; start < len(tokens); start += maxMulticastTokens {
		end := min(start+maxMulticastTokens, len(tokens))
		batch := tokens[start:end]

		resp, err := n.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       batch,
			Notification: &messaging.Notification{Title: title, Body: body},
			Data:         data,
		})
		if err != nil {
			return errors.Wrap(err, "push.FCMNotifier.SendMulticast")
		}
		n.logFailures(batch, resp)
	}
	return nil
}

func (n *FCMNotifier) logFailures(batch []string, resp *messaging.BatchResponse) {
	if resp == nil || resp.FailureCount == 0 {
		return
	}
	for i, r := range resp.Responses {
		if r == nil || r.Success || i >= len(batch) {
			continue
		}
		if messaging.IsRegistrationTokenNotRegistered(r.Error) {
			n.logger.Info("push token no longer registered", "token", batch[i])
			continue
		}
		n.logger.Warn("push to device failed", "token", batch[i], "err", r.Error)
	}
}
