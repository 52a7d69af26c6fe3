package app

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	apperrors "mediaship/internal/errors"
	"mediaship/internal/logging"
)

// Mounter recovers a missing local media folder.
type Mounter interface {
	MountAsk(ctx context.Context) error
}

// ShareMounter mounts the server's media share over NFS after asking the
// user. Declining aborts the whole flow through the farewell path.
type ShareMounter struct {
	Prompter Prompter
	Logger   logging.Logger

	Host       string
	RemotePath string
	MountPoint string

	// Runner executes the mount command; replaced in tests.
	Runner func(ctx context.Context, name string, args ...string) error
}

func (m *ShareMounter) MountAsk(ctx context.Context) error {
	answer, err := m.Prompter.Ask("Do you want to mount the media folder? [y/n]: ")
	if err != nil {
		return ErrCanceled
	}

	// An empty answer counts as yes here; mounting is almost always what
	// the user wants when the folder is gone.
	switch strings.ToLower(answer) {
	case "", "y", "yes":
	default:
		return ErrNothingSelected
	}

	m.Logger.Infof("Mounting... (enter password)")

	source := fmt.Sprintf("%s:%s", m.Host, m.RemotePath)
	run := m.Runner
	if run == nil {
		run = runCommand
	}
	if err := run(ctx, "sudo", "mount", "-o", "rw", "-t", "nfs", source, m.MountPoint); err != nil {
		return apperrors.Wrap(apperrors.IOFailure, "mount", m.MountPoint, err)
	}
	return nil
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
