//go:build windows
// +build windows

package pkg

import (
	"context"
	"errors"
	"net"
)

// SSH server is unsupported on Windows

var ErrServerClosed = errors.New("ssh: server closed")

var errUnsupported = errors.New("ssh: server is not supported on windows")

type SSHServer struct {
	ListenAddress string
}

func NewSSHServer(config Config, args ...string) (*SSHServer, error) {
	return nil, errUnsupported
}

func (s *SSHServer) ListenAndServe() error { return errUnsupported }
func (s *SSHServer) Serve(l net.Listener) error { return errUnsupported }
func (s *SSHServer) Shutdown(ctx context.Context) error { return nil }
func (s *SSHServer) Sessions() int { return 0 }
