package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_SetPushToken(t *testing.T) {
	u := &User{}

	assert.True(t, u.SetPushToken("phone", "t1"))
	assert.True(t, u.SetPushToken("tablet", "t2"))
	assert.False(t, u.SetPushToken("phone", "t1"))
	assert.True(t, u.SetPushToken("phone", "t3"))

	assert.Equal(t, []PushRegistration{
		{DeviceID: "phone", Token: "t3"},
		{DeviceID: "tablet", Token: "t2"},
	}, u.PushRegistrations)
}

func TestUser_RemoveDevice(t *testing.T) {
	u := &User{PushRegistrations: []PushRegistration{{"a", "1"}, {"b", "2"}}}

	assert.True(t, u.RemoveDevice("a"))
	assert.False(t, u.RemoveDevice("a"))
	assert.Equal(t, []PushRegistration{{"b", "2"}}, u.PushRegistrations)
}

func TestUser_PushTokens(t *testing.T) {
	u := &User{PushRegistrations: []PushRegistration{{"a", "x"}, {"b", "x"}, {"c", ""}, {"d", "y"}}}
	assert.Equal(t, []string{"x", "y"}, u.PushTokens())
}

func TestUserQuery_EffectiveStatus(t *testing.T) {
	assert.Equal(t, StatusActive, UserQuery{}.EffectiveStatus())
	assert.Equal(t, StatusDeleted, UserQuery{Status: StatusDeleted}.EffectiveStatus())
}
