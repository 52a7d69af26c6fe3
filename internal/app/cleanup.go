package app

import (
	"path/filepath"

	"mediaship/internal/domain"
	apperrors "mediaship/internal/errors"
	"mediaship/internal/presentation"
)

// Cleaner deletes the local originals after a successful transfer. Files
// picked directly from the origin root are removed one by one; anything
// picked from a deeper directory removes that whole directory, because it
// was selected as a single unit.
type Cleaner struct {
	FS         FileSystem
	Prompter   Prompter
	Printer    *presentation.Printer
	OriginRoot string
}

// Remove prints every resolved path, asks for a separate confirmation, and
// only then deletes. There is no rollback if a deletion fails mid-loop.
func (c *Cleaner) Remove(set domain.SelectionSet) error {
	root, err := filepath.Abs(c.OriginRoot)
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, "resolve", c.OriginRoot, err)
	}
	root = filepath.Clean(root)

	var paths []string
	for _, entry := range set {
		if filepath.Clean(entry.Dir) == root {
			for _, name := range entry.Files {
				paths = append(paths, filepath.Join(entry.Dir, name))
			}
		} else {
			paths = append(paths, filepath.Clean(entry.Dir))
		}
	}

	dirs := make([]bool, len(paths))
	for i, p := range paths {
		dirs[i] = c.FS.IsDir(p)
	}
	c.Printer.RemovalPlan(paths, dirs)

	confirmed, err := c.Prompter.Confirm("\nDo you want to remove the local files? (check paths above) [y/n]: ")
	if err != nil {
		return ErrCanceled
	}
	if !confirmed {
		c.Printer.NotRemoving()
		return nil
	}

	for i, p := range paths {
		if dirs[i] {
			err = c.FS.RemoveAll(p)
		} else {
			err = c.FS.Remove(p)
		}
		if err != nil {
			return apperrors.Wrap(apperrors.IOFailure, "remove", p, err)
		}
		c.Printer.Removed(p)
	}
	return nil
}
