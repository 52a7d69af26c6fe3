package app

import (
	"context"
	"path/filepath"

	"mediaship/internal/domain"
	apperrors "mediaship/internal/errors"
	"mediaship/internal/logging"
)

// OriginResolver turns repeated menu prompts into a flattened SelectionSet,
// descending into subdirectories as the user navigates. The traversal is an
// iterative loop carrying an explicit accumulator; it terminates through the
// DONE sentinel or the single-file fallback.
type OriginResolver struct {
	Root   string
	FS     FileSystem
	Lister *Lister
	Menu   Menu
	Logger logging.Logger
}

// Resolve drives the interactive traversal.
//
// The DONE sentinel is only offered at the root folder, so the user cannot
// end the selection mid-descent. An empty selection ends the whole flow.
// When the last chosen label is a plain file, the selection collapses to
// that single file and any previously accumulated entries are dropped:
// pressing enter on a file without toggling anything means "just this one".
func (r *OriginResolver) Resolve(ctx context.Context) (domain.SelectionSet, error) {
	root, err := filepath.Abs(r.Root)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "resolve", r.Root, err)
	}
	root = filepath.Clean(root)
	current := root

	var accumulated domain.SelectionSet

	for {
		items, err := r.Lister.List(ctx, current)
		if err != nil {
			return nil, err
		}

		withDone := current == root
		choices, err := r.Menu.Pick(current, items, withDone)
		if err != nil {
			return nil, err
		}
		if len(choices) == 0 {
			return nil, ErrNothingSelected
		}

		last := choices[len(choices)-1]
		rest := choices[:len(choices)-1]

		switch {
		case last == DoneLabel:
			if len(rest) > 0 {
				accumulated = append(accumulated, domain.SelectionEntry{
					Dir:   current,
					Files: append([]string(nil), rest...),
				})
			}
			r.Logger.Verbosef("Selection finished with %d files", accumulated.FileCount())
			return accumulated, nil

		case r.FS.IsDir(filepath.Join(current, last)):
			// Descending, including through "..": the current folder keeps
			// whatever else was toggled, even if that is nothing.
			accumulated = append(accumulated, domain.SelectionEntry{
				Dir:   current,
				Files: append([]string(nil), rest...),
			})
			current = filepath.Clean(filepath.Join(current, last))

		default:
			// The user pressed enter on a file without toggling it. Treat
			// it as "the one file" and drop everything picked before.
			return domain.SelectionSet{{Dir: current, Files: []string{last}}}, nil
		}
	}
}
