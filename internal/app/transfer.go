package app

import (
	"context"
	"fmt"
	"strings"

	"mediaship/internal/domain"
	apperrors "mediaship/internal/errors"
	"mediaship/internal/logging"
	"mediaship/internal/presentation"
)

// Transferrer copies a SelectionSet to the destination folder over a single
// secure session, then verifies the copy and reports remaining disk space.
type Transferrer struct {
	Dialer   RemoteDialer
	Prompter Prompter
	Printer  *presentation.Printer
	Logger   logging.Logger

	// DestinationBase is the media root on the server, used for the
	// free-space check.
	DestinationBase string
}

// Transfer returns (true, nil) only when the user confirmed and the whole
// transmission pass succeeded. A declined confirmation is a silent no-op:
// (false, nil), and the remote session is never opened.
func (t *Transferrer) Transfer(ctx context.Context, set domain.SelectionSet, destination string) (bool, error) {
	t.Printer.TransferPlan(set, destination)

	answer, err := t.Prompter.Ask("Confirm to copy [y/n]: ")
	if err != nil {
		return false, ErrCanceled
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
	default:
		return false, nil
	}

	t.Printer.Copying()
	session, err := t.Dialer.Dial(ctx)
	if err != nil {
		return false, apperrors.Wrap(apperrors.RemoteFailure, "dial", "", err)
	}
	defer session.Close()

	files := set.CollectFiles()
	for _, src := range files {
		if err := session.Upload(ctx, src.Path, destination, t.Printer.Progress); err != nil {
			return false, apperrors.Wrap(apperrors.RemoteFailure, "upload", src.Path, err)
		}
		t.Printer.Copied(src.Name)
	}

	t.Printer.SettingPermissions()
	if _, err := session.Run(ctx, fmt.Sprintf("chmod -R 755 %q", destination)); err != nil {
		t.Logger.Warnf("setting permissions failed: %v", err)
	}

	t.Printer.CheckingFiles()
	for _, src := range files {
		out, err := session.Run(ctx, fmt.Sprintf("ls -alh %q", destination+src.Name))
		if err != nil {
			t.Logger.Warnf("listing %s failed: %v", src.Name, err)
		}
		t.Printer.Raw(out)
	}

	space, err := session.Run(ctx, fmt.Sprintf("df -h %s | awk 'NR>1{print $4}'", t.DestinationBase))
	if err != nil {
		return false, apperrors.Wrap(apperrors.RemoteFailure, "df", t.DestinationBase, err)
	}
	t.Printer.SpaceLeft(strings.TrimSpace(space))

	return true, nil
}
