package usecase

import (
	"context"

	"murmur/internal/notification"
	"murmur/internal/notification/model"
	"murmur/internal/user"
	userModel "murmur/internal/user/model"
	"murmur/pkg/errors"
	"murmur/pkg/logger"

	"github.com/google/uuid"
)

// Dispatcher delivers an Intent through realtime, the database and push, in that order.
// Push runs last and its failures are only logged.
type Dispatcher struct {
	users    user.Directory
	repo     notification.NotificationRepository
	realtime notification.RealtimeChannel
	push     notification.PushNotifier
	logger   logger.Logger
}

func NewDispatcher(
	users user.Directory,
	repo notification.NotificationRepository,
	realtime notification.RealtimeChannel,
	push notification.PushNotifier,
	logger logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		users:    users,
		repo:     repo,
		realtime: realtime,
		push:     push,
		logger:   logger,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, intent notification.Intent) error {
	if intent.IsGrouped {
		return d.notifyGroup(ctx, intent)
	}
	return d.notifyUser(ctx, intent)
}

func (d *Dispatcher) notifyUser(ctx context.Context, intent notification.Intent) error {
	if (intent.UseRealtime || intent.UsePush) && intent.TargetUser == nil {
		return errors.ErrMissingTarget
	}

	if intent.UseRealtime {
		d.realtime.SendToUser(*intent.TargetUser, intent.ChannelEvent, intent.ChannelPayload)
	}

	if intent.UseDatabase {
		if intent.Record == nil {
			d.logger.Warn("notification record missing, skipping persistence", "event", intent.ChannelEvent)
		} else {
			record := *intent.Record
			if intent.TargetUser != nil && record.UserID == uuid.Nil {
				record.UserID = *intent.TargetUser
			}
			if record.UserID == uuid.Nil {
				return errors.ErrMissingTarget
			}
			if err := d.repo.Create(ctx, &record); err != nil {
				d.logger.Error("failed to persist notification", "user_id", record.UserID, "err", err)
				return errors.Wrap(errors.CodeInternal, "failed to persist notification", err)
			}
		}
	}

	if intent.UsePush {
		u, err := d.users.GetUserByID(ctx, *intent.TargetUser)
		if err != nil {
			d.logger.Warn("push skipped, recipient lookup failed", "user_id", *intent.TargetUser, "err", err)
			return nil
		}
		d.sendPush(ctx, intent, u.PushTokens())
	}
	return nil
}

func (d *Dispatcher) notifyGroup(ctx context.Context, intent notification.Intent) error {
	if intent.GroupQuery == nil {
		return errors.ErrMissingTarget
	}

	query := *intent.GroupQuery
	query.Limit = 0
	recipients, err := d.users.FindUsers(ctx, query)
	if err != nil {
		d.logger.Error("failed to resolve notification group", "err", err)
		return errors.Wrap(errors.CodeInternal, "failed to resolve recipients", err)
	}

	if intent.UseRealtime {
		d.realtime.Broadcast(intent.ChannelEvent, intent.ChannelPayload)
	}

	if intent.UseDatabase {
		if intent.Record == nil {
			d.logger.Warn("notification record missing, skipping persistence", "event", intent.ChannelEvent)
		} else if len(recipients) > 0 {
			records := make([]*model.Notification, 0, len(recipients))
			for _, u := range recipients {
				records = append(records, intent.Record.For(u.ID))
			}
			if err := d.repo.CreateMany(ctx, records); err != nil {
				d.logger.Error("failed to persist group notifications", "count", len(records), "err", err)
				return errors.Wrap(errors.CodeInternal, "failed to persist notification", err)
			}
		}
	}

	if intent.UsePush {
		d.sendPush(ctx, intent, collectTokens(recipients))
	}
	return nil
}

func (d *Dispatcher) sendPush(ctx context.Context, intent notification.Intent, tokens []string) {
	if len(tokens) == 0 {
		return
	}
	if err := d.push.SendMulticast(ctx, tokens, intent.PushTitle, intent.PushBody, intent.PushData); err != nil {
		d.logger.Warn("push delivery failed", "tokens", len(tokens), "err", err)
	}
}

func collectTokens(users []*userModel.User) []string {
	seen := make(map[string]struct{})
	tokens := make([]string, 0)
	for _, u := range users {
		for _, token := range u.PushTokens() {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	return tokens
}
