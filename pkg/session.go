package pkg

import (
	"fmt"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
)

// Session is one SSH visitor.
type Session struct {
	Name    string
	User    string
	Remote  string
	Started time.Time
}

// NewSession names a session with a random two word pet name.
func NewSession(user, remote string) *Session {
	return &Session{
		Name:    petname.Generate(2, "-"),
		User:    user,
		Remote:  remote,
		Started: time.Now(),
	}
}

func (s *Session) String() string {
	return fmt.Sprintf("%s (%s@%s)", s.Name, s.User, s.Remote)
}

// Title is shown in the browser border of the session.
func (s *Session) Title() string {
	return fmt.Sprintf("polyterm - %s", s.Name)
}
