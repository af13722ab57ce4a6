// Package session wraps gin-contrib/sessions with a typed identity so a
// request is always exactly one of: anonymous, an instructor, or a
// player. Login codes are the product's credential; there are no
// passwords anywhere.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	keyRole    = "role"
	keyID      = "uid"
	keyMessage = "create_success"

	roleInstructor = "instructor"
	rolePlayer     = "player"
)

type Kind int

const (
	Anonymous Kind = iota
	KindInstructor
	KindPlayer
)

type Identity struct {
	Kind Kind
	ID   uint
}

// Current resolves the caller's identity from the session cookie.
// A malformed or partial session reads as Anonymous.
func Current(c *gin.Context) Identity {
	s := sessions.Default(c)
	role, _ := s.Get(keyRole).(string)
	id, ok := s.Get(keyID).(int)
	if !ok || id <= 0 {
		return Identity{Kind: Anonymous}
	}
	switch role {
	case roleInstructor:
		return Identity{Kind: KindInstructor, ID: uint(id)}
	case rolePlayer:
		return Identity{Kind: KindPlayer, ID: uint(id)}
	}
	return Identity{Kind: Anonymous}
}

// SetInstructor signs the session in as an instructor, replacing any
// player identity. The single role/uid pair makes "both logged in"
// unrepresentable.
func SetInstructor(c *gin.Context, id uint) error {
	return setRole(c, roleInstructor, id)
}

func SetPlayer(c *gin.Context, id uint) error {
	return setRole(c, rolePlayer, id)
}

func setRole(c *gin.Context, role string, id uint) error {
	s := sessions.Default(c)
	s.Set(keyRole, role)
	s.Set(keyID, int(id))
	return s.Save()
}

// Clear drops all session state, whichever role was logged in.
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// SetMessage stashes the create-player banner. It stays in the session
// until overwritten by the next create.
func SetMessage(c *gin.Context, msg string) error {
	s := sessions.Default(c)
	s.Set(keyMessage, msg)
	return s.Save()
}

func Message(c *gin.Context) string {
	s := sessions.Default(c)
	msg, _ := s.Get(keyMessage).(string)
	return msg
}
