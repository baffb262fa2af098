package model

import "github.com/pkg/errors"

var (
	ErrRejected      = errors.New("conversation is rejected")
	ErrNotRejectable = errors.New("conversation cannot be rejected")
)
