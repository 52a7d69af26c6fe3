package app

import (
	"context"
	"errors"
)

// DoneLabel is the sentinel menu entry that finishes a multi-level selection.
const DoneLabel = "DONE"

// UpLabel is the synthetic entry for going up one directory level.
const UpLabel = ".."

// ErrCanceled is returned by a Menu when the user backs out (escape, ctrl+c,
// or a non-interactive terminal). It is distinct from an empty selection,
// which is a valid result.
var ErrCanceled = errors.New("selection canceled")

// ErrNothingSelected ends the whole flow through the farewell path.
var ErrNothingSelected = errors.New("nothing selected")

// FileSystem is the local filesystem surface the flow needs.
type FileSystem interface {
	// ListDir returns the entry names of dir: subdirectories first
	// (lexicographically sorted), then files (lexicographically sorted).
	ListDir(dir string) ([]string, error)
	IsDir(path string) bool
	Remove(path string) error
	RemoveAll(path string) error
}

// Menu renders a multi-select prompt over the given items and returns the
// chosen labels in selection order, the item under the cursor last.
type Menu interface {
	Pick(title string, items []string, withDone bool) ([]string, error)
}

// Prompter asks the user for confirmations and free-text answers.
type Prompter interface {
	Confirm(prompt string) (bool, error)
	Ask(prompt string) (string, error)
}

// ProgressFunc reports per-file transfer progress in bytes.
type ProgressFunc func(name string, size, sent int64)

// RemoteSession is an open secure channel to the media server.
type RemoteSession interface {
	// Upload streams a local file into remoteDir, reporting byte progress.
	Upload(ctx context.Context, localPath, remoteDir string, progress ProgressFunc) error
	// Run executes a shell command on the server and returns its output.
	Run(ctx context.Context, command string) (string, error)
	Close() error
}

// RemoteDialer opens a RemoteSession. Nothing is dialed until the user has
// confirmed a transfer.
type RemoteDialer interface {
	Dial(ctx context.Context) (RemoteSession, error)
}
