package app

import (
	"context"
	"errors"
	"io/fs"

	apperrors "mediaship/internal/errors"
	"mediaship/internal/logging"
)

// Lister lists directory entries, recovering from a missing folder by asking
// the user to mount the media share and trying again.
type Lister struct {
	FS      FileSystem
	Mounter Mounter
	Logger  logging.Logger
}

// List returns the entries of dir, subdirectories first, each group sorted.
// A not-found error triggers the mount prompt and a retry; the loop only
// ends when the listing succeeds or the user aborts.
func (l *Lister) List(ctx context.Context, dir string) ([]string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, ErrCanceled
		}

		items, err := l.FS.ListDir(dir)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(apperrors.IOFailure, "list", dir, err)
		}

		l.Logger.Infof("An error occurred: %v", err)
		if l.Mounter == nil {
			return nil, apperrors.Wrap(apperrors.NotFound, "list", dir, err)
		}
		if err := l.Mounter.MountAsk(ctx); err != nil {
			return nil, err
		}
	}
}
