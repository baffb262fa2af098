package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()" bson:"_id"`

	// Username = unique @handle (used for login and identity)
	Username string `bun:",unique,notnull" bson:"username"`

	// Name = display name shown in chats (can be changed freely)
	Name  string `bun:",notnull" bson:"name"`
	Image string `bun:",nullzero" bson:"image,omitempty"`

	PasswordHash string `bun:",notnull" bson:"passwordHash"`
	Role         Role   `bun:",notnull,default:'user'" bson:"role"`
	Status       Status `bun:",notnull,default:'active'" bson:"status"`

	PushRegistrations []PushRegistration `bun:",type:jsonb,nullzero" bson:"pushRegistrations,omitempty"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" bson:"createdAt"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" bson:"updatedAt"`
}

// PushRegistration binds one device to its current push token.
type PushRegistration struct {
	DeviceID string `json:"deviceId" bson:"deviceId"`
	Token    string `json:"token" bson:"token"`
}

func (u *User) IsActive() bool { return u.Status == StatusActive }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// SetPushToken registers token for deviceID, replacing the device's previous token.
// It reports whether anything changed.
func (u *User) SetPushToken(deviceID, token string) bool {
	for i, reg := range u.PushRegistrations {
		if reg.DeviceID == deviceID {
			if reg.Token == token {
				return false
			}
			u.PushRegistrations[i].Token = token
			return true
		}
	}
	u.PushRegistrations = append(u.PushRegistrations, PushRegistration{DeviceID: deviceID, Token: token})
	return true
}

// RemoveDevice drops the registration of deviceID and reports whether it existed.
func (u *User) RemoveDevice(deviceID string) bool {
	for i, reg := range u.PushRegistrations {
		if reg.DeviceID == deviceID {
			u.PushRegistrations = append(u.PushRegistrations[:i], u.PushRegistrations[i+1:]...)
			return true
		}
	}
	return false
}

// PushTokens returns the distinct tokens registered across all devices.
func (u *User) PushTokens() []string {
	tokens := make([]string, 0, len(u.PushRegistrations))
	seen := make(map[string]struct{}, len(u.PushRegistrations))
	for _, reg := range u.PushRegistrations {
		if reg.Token == "" {
			continue
		}
		if _, ok := seen[reg.Token]; ok {
			continue
		}
		seen[reg.Token] = struct{}{}
		tokens = append(tokens, reg.Token)
	}
	return tokens
}

// UserQuery selects users from the directory. Zero fields do not filter, except Status which
// defaults to active. Limit 0 means unbounded.
type UserQuery struct {
	IDs      []uuid.UUID
	Username string
	Role     Role
	Status   Status
	Keyword  string
	Limit    int
}

func (q UserQuery) EffectiveStatus() Status {
	if q.Status == "" {
		return StatusActive
	}
	return q.Status
}

// UserPatch enumerates the profile fields a user may change. Nil fields are left untouched.
type UserPatch struct {
	Name  *string
	Image *string
}

func (p UserPatch) IsEmpty() bool { return p.Name == nil && p.Image == nil }
