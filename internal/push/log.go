package push

import (
	"context"

	"murmur/pkg/logger"
)

// LogNotifier stands in for FCM when push is disabled.
type LogNotifier struct {
	logger logger.Logger
}

func NewLogNotifier(logger logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "push")}
}

func (n *LogNotifier) SendMulticast(_ context.Context, tokens []string, title, body string, data map[string]string) error {
	if len(tokens) == 0 {
		return nil
	}
	n.logger.Info("push disabled, dropping notification",
		"devices", len(tokens), "title", title, "body", body, "data", data)
	return nil
}
