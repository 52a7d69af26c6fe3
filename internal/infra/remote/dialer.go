// Package remote implements the secure session to the media server on top
// of SSH and SFTP. Authentication relies on the user's existing trusted
// host keys and a running ssh-agent or private key file; no password flow
// is ever initiated here.
package remote

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"

	"mediaship/internal/app"
)

// Dialer opens SSH sessions to the configured server.
type Dialer struct {
	Host string
	Port int
	User string

	KnownHostsFile string
	PrivateKeyFile string
}

// Dial establishes the SSH connection and an SFTP subsystem on top of it.
// There is deliberately no timeout on the connection: the server is a
// trusted, locally administered host.
func (d Dialer) Dial(ctx context.Context) (app.RemoteSession, error) {
	hostKeys, err := knownhosts.New(d.KnownHostsFile)
	if err != nil {
		return nil, fmt.Errorf("load known hosts: %w", err)
	}

	auth := d.authMethods()
	if len(auth) == 0 {
		return nil, fmt.Errorf("no usable ssh credentials (agent or %s)", d.PrivateKeyFile)
	}

	cfg := &ssh.ClientConfig{
		User:            d.User,
		Auth:            auth,
		HostKeyCallback: hostKeys,
	}

	addr := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, cfg)
	if err != nil {
		conn.Close()
		return nil, err
	}
	client := ssh.NewClient(sshConn, chans, reqs)

	files, err := sftp.NewClient(client)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Session{client: client, files: files}, nil
}

func (d Dialer) authMethods() []ssh.AuthMethod {
	var methods []ssh.AuthMethod

	if sock := os.Getenv("SSH_AUTH_SOCK"); sock != "" {
		if conn, err := net.Dial("unix", sock); err == nil {
			methods = append(methods, ssh.PublicKeysCallback(agent.NewClient(conn).Signers))
		}
	}

	if key, err := os.ReadFile(d.PrivateKeyFile); err == nil {
		if signer, err := ssh.ParsePrivateKey(key); err == nil {
			methods = append(methods, ssh.PublicKeys(signer))
		}
	}

	return methods
}
