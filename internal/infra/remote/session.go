package remote

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"mediaship/internal/app"
)

// Session is an open SSH connection with an SFTP subsystem.
type Session struct {
	client *ssh.Client
	files  *sftp.Client
}

const uploadChunkSize = 256 * 1024

// Upload streams a local file into remoteDir under its leaf name, invoking
// the progress callback after every chunk with bytes sent versus total.
func (s *Session) Upload(ctx context.Context, localPath, remoteDir string, progress app.ProgressFunc) error {
	src, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	name := filepath.Base(localPath)

	dst, err := s.files.Create(path.Join(remoteDir, name))
	if err != nil {
		return err
	}
	defer dst.Close()

	buf := make([]byte, uploadChunkSize)
	var sent int64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return err
			}
			sent += int64(n)
			if progress != nil {
				progress(name, size, sent)
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return readErr
		}
	}
}

// Run executes a shell command on the server and returns its combined
// output. Each command gets its own SSH channel on the shared connection.
func (s *Session) Run(ctx context.Context, command string) (string, error) {
	sess, err := s.client.NewSession()
	if err != nil {
		return "", err
	}
	defer sess.Close()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			sess.Signal(ssh.SIGKILL)
		case <-done:
		}
	}()

	out, err := sess.CombinedOutput(command)
	close(done)
	return string(out), err
}

func (s *Session) Close() error {
	s.files.Close()
	return s.client.Close()
}
