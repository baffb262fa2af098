package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotification_For(t *testing.T) {
	messenger := uuid.New()
	tmpl := Notification{Type: TypeAnnouncement, Title: "hello", MessengerID: &messenger, Status: StatusRead}

	a, b := uuid.New(), uuid.New()
	na, nb := tmpl.For(a), tmpl.For(b)

	assert.Equal(t, a, na.UserID)
	assert.Equal(t, b, nb.UserID)
	assert.NotEqual(t, na.ID, nb.ID)
	assert.Equal(t, StatusUnread, na.Status)
	assert.Equal(t, "hello", nb.Title)
	assert.Equal(t, uuid.Nil, tmpl.UserID)
}
