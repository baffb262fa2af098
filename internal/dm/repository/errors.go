package repository

import "github.com/pkg/errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrDuplicatePair        = errors.New("conversation for this pair already exists")
)
