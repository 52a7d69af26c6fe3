package app

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	apperrors "mediaship/internal/errors"
	"mediaship/internal/presentation"
)

var (
	seasonPattern  = regexp.MustCompile(`(?i)(?:S|season)(\d+)`)
	episodePattern = regexp.MustCompile(`(?i)E(\d+)`)
)

// Renamer normalizes episode file names in a season folder on the server to
// <Serie>_S<ss>_E<ee>.<ext>. It dry-runs the proposal first and asks twice.
type Renamer struct {
	Dialer   RemoteDialer
	Prompter Prompter
	Printer  *presentation.Printer
}

// Rename offers to rename the files just copied into a series destination.
// When the season number cannot be inferred from the folder structure the
// operation is skipped with a warning; the flow continues.
func (r *Renamer) Rename(ctx context.Context, destination string) error {
	r.Printer.RenameHeader(destination)

	confirmed, err := r.Prompter.Confirm("Do you want to rename the files? [y/n]: ")
	if err != nil {
		return ErrCanceled
	}
	if !confirmed {
		return nil
	}

	seasonFolder := strings.TrimRight(destination, "/")
	parts := strings.Split(seasonFolder, "/")
	if len(parts) < 2 {
		r.Printer.SeasonNotInferred()
		return nil
	}
	serie := parts[len(parts)-2]

	match := seasonPattern.FindStringSubmatch(parts[len(parts)-1])
	if match == nil {
		r.Printer.SeasonNotInferred()
		return nil
	}
	season := match[1]
	for len(season) < 2 {
		season = "0" + season
	}

	session, err := r.Dialer.Dial(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.RemoteFailure, "dial", "", err)
	}
	defer session.Close()

	out, err := session.Run(ctx, fmt.Sprintf("ls -1 %q", seasonFolder))
	if err != nil {
		return apperrors.Wrap(apperrors.RemoteFailure, "ls", seasonFolder, err)
	}

	proposals := ProposeEpisodeNames(out, serie, season)
	for _, p := range proposals {
		if p.Skipped {
			r.Printer.RenameSkip(p.Old)
			continue
		}
		r.Printer.RenameProposal(p.Old, p.New)
	}

	confirmed, err = r.Prompter.Confirm("\nProceed with renaming? [y/n]: ")
	if err != nil {
		return ErrCanceled
	}
	if !confirmed {
		return nil
	}

	for _, p := range proposals {
		if p.Skipped {
			continue
		}
		cmd := fmt.Sprintf("mv %q %q", seasonFolder+"/"+p.Old, seasonFolder+"/"+p.New)
		if _, err := session.Run(ctx, cmd); err != nil {
			return apperrors.Wrap(apperrors.RemoteFailure, "mv", p.Old, err)
		}
		r.Printer.Renamed(p.Old, p.New)
	}
	return nil
}

// RenameProposal is one dry-run line: either a planned rename or a skip.
type RenameProposal struct {
	Old     string
	New     string
	Skipped bool
}

// ProposeEpisodeNames parses an `ls -1` listing and proposes normalized
// names. Files without an episode number are flagged as skipped; files
// already matching their normalized name are omitted entirely.
func ProposeEpisodeNames(listing, serie, season string) []RenameProposal {
	var proposals []RenameProposal
	for _, line := range strings.Split(listing, "\n") {
		file := strings.TrimSpace(line)
		if file == "" {
			continue
		}

		match := episodePattern.FindStringSubmatch(file)
		if match == nil {
			proposals = append(proposals, RenameProposal{Old: file, Skipped: true})
			continue
		}

		ext := file
		if idx := strings.LastIndex(file, "."); idx >= 0 {
			ext = file[idx+1:]
		}
		newName := fmt.Sprintf("%s_S%s_E%s.%s", serie, season, match[1], ext)
		if file == newName {
			continue
		}
		proposals = append(proposals, RenameProposal{Old: file, New: newName})
	}
	return proposals
}
