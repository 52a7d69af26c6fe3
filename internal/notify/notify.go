package notify

import (
	"context"
	"fmt"

	apperrors "mediaship/internal/errors"
	"mediaship/internal/logging"
)

// Prompter is the small prompt surface the flow needs.
type Prompter interface {
	Confirm(prompt string) (bool, error)
	Ask(prompt string) (string, error)
}

// Notifier drives the interactive announcement flow: ask, look the movie
// up, download the poster, send. It runs once, to completion, with nothing
// interleaved against it.
type Notifier struct {
	Movies   *OMDBClient
	Channel  *TelegramClient
	Prompter Prompter
	Logger   logging.Logger
}

func (n *Notifier) Run(ctx context.Context) error {
	prompt := fmt.Sprintf(
		"\nDo you want to send a message to %q to inform that you added a new movie? (y/n): ",
		n.Channel.ChatID)
	confirmed, err := n.Prompter.Confirm(prompt)
	if err != nil || !confirmed {
		n.Logger.Infof("Ok, not sending any message to the Telegram channel.")
		return nil
	}

	n.Logger.Infof("\nLet's get the information about the movie you want to send the message about:")

	var title, year string
	for {
		if title, err = n.Prompter.Ask("Name: "); err != nil {
			return apperrors.Wrap(apperrors.NotifyFailure, "prompt", "", err)
		}
		if year, err = n.Prompter.Ask("Year: "); err != nil {
			return apperrors.Wrap(apperrors.NotifyFailure, "prompt", "", err)
		}
		if title != "" && year != "" {
			break
		}
		n.Logger.Infof("Movie name and year are required to send the message. Try again.")
	}

	movie, err := n.Movies.Lookup(ctx, title, year)
	if err != nil {
		return apperrors.Wrap(apperrors.NotifyFailure, "omdb", title, err)
	}

	poster, err := n.Movies.DownloadPoster(ctx, movie)
	if err != nil {
		return apperrors.Wrap(apperrors.NotifyFailure, "poster", movie.Poster, err)
	}
	n.Logger.Infof("Poster downloaded successfully!")

	n.Logger.Infof("Sending message to Telegram channel...")
	if err := n.Channel.SendPhoto(ctx, poster, Caption(movie)); err != nil {
		return apperrors.Wrap(apperrors.NotifyFailure, "telegram", "", err)
	}
	n.Logger.Infof("Message sent to %s successfully!", n.Channel.ChatID)
	return nil
}
