//go:build !windows
// +build !windows

package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

// ErrServerClosed is returned by Serve after Shutdown.
var ErrServerClosed = ssh.ErrServerClosed

// SSHServer starts one browser process per SSH session, attached to the
// session through a pseudo-terminal.
type SSHServer struct {
	ListenAddress string
	HostKeyFile   string
	Binary        string
	Args          []string
	IdleTimeout   time.Duration

	server   *ssh.Server
	sessions map[*Session]struct{}
	sync.Mutex
}

// NewSSHServer configures a server from config. args are passed to the
// browser binary of every session, before its --title.
func NewSSHServer(config Config, args ...string) (*SSHServer, error) {
	idle, err := config.SSH.Idle()
	if err != nil {
		return nil, err
	}

	s := &SSHServer{
		ListenAddress: config.SSH.Address,
		HostKeyFile:   config.SSH.HostKeyFile,
		Binary:        config.SSH.Binary,
		Args:          args,
		IdleTimeout:   idle,
		sessions:      make(map[*Session]struct{}),
	}
	if s.ListenAddress == "" {
		s.ListenAddress = SshPort
	}
	if s.Binary == "" {
		s.Binary = DefaultBinary
	}

	s.server = &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: s.IdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if s.HostKeyFile != "" {
		if err = s.server.SetOption(ssh.HostKeyFile(s.HostKeyFile)); err != nil {
			return nil, fmt.Errorf("ssh: host key: %w", err)
		}
	}

	return s, nil
}

func (s *SSHServer) ListenAndServe() error {
	log.Printf("Listening at %s", s.ListenAddress)
	return s.server.ListenAndServe()
}

func (s *SSHServer) Serve(l net.Listener) error {
	log.Printf("Listening at %s", l.Addr())
	return s.server.Serve(l)
}

func (s *SSHServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Sessions returns the number of connected sessions.
func (s *SSHServer) Sessions() int {
	s.Lock()
	defer s.Unlock()

	return len(s.sessions)
}

func (s *SSHServer) track(sess *Session, add bool) {
	s.Lock()
	defer s.Unlock()

	if add {
		s.sessions[sess] = struct{}{}
	} else {
		delete(s.sessions, sess)
	}
}

// Command builds the browser process for a session.
func (s *SSHServer) Command(ctx context.Context, sess *Session, term string) *exec.Cmd {
	args := append([]string{}, s.Args...)
	args = append(args, "--title", sess.Title())

	cmd := exec.CommandContext(ctx, s.Binary, args...)
	cmd.Env = append(cmd.Env, fmt.Sprintf("TERM=%s", term))

	return cmd
}

func (s *SSHServer) handle(sshSession ssh.Session) {
	sess := NewSession(sshSession.User(), sshSession.RemoteAddr().String())
	s.track(sess, true)
	defer s.track(sess, false)

	log.Printf("Session %s started", sess)
	defer func() {
		log.Printf("Session %s ended after %s", sess, time.Since(sess.Started).Round(time.Second))
	}()

	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "failed to start polyterm: non-interactive terminals are not supported\n")

		sshSession.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := s.Command(cmdCtx, sess, ptyReq.Term)

	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		log.Printf("Session %s: failed to start %s: %s", sess, s.Binary, err)
		io.WriteString(sshSession, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))

		sshSession.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				log.Printf("Session %s: resize: %s", sess, err)
			}
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	cancelCmd()
	if err = cmd.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Session %s: %s exited: %s", sess, s.Binary, err)
	}
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}
