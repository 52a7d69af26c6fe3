// Mediaship interactively picks local media files, copies them to the media
// server over SSH, verifies the copy, optionally removes the originals and
// announces new movies and series to a Telegram channel.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"mediaship/internal/app"
	"mediaship/internal/config"
	"mediaship/internal/domain"
	apperrors "mediaship/internal/errors"
	"mediaship/internal/infra/fs"
	"mediaship/internal/infra/remote"
	"mediaship/internal/infra/term"
	"mediaship/internal/logging"
	"mediaship/internal/notify"
	"mediaship/internal/presentation"
	"mediaship/internal/tui"
)

var (
	notifyOnly bool
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:           "mediaship",
		Short:         "Copy media to the server and optionally announce it",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().BoolVarP(&notifyOnly, "notify-only", "t", false,
		"Only send a message to the Telegram channel and skip the rest of the flow")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.UserMessage(err))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return apperrors.Wrap(apperrors.InvalidConfig, "config", "", err)
	}
	cfg.Verbose = cfg.Verbose || verbose

	printer := presentation.Printer{Writer: os.Stdout, Verbose: cfg.Verbose}
	logger := logging.New(os.Stdout, cfg.Verbose)
	prompter := term.New(os.Stdin, os.Stdout)

	printer.Welcome(cfg.Server.Host)

	notifier := &notify.Notifier{
		Movies:   notify.NewOMDBClient(cfg.Notify.OMDBAPIKey),
		Channel:  notify.NewTelegramClient(cfg.Notify.TelegramBotToken, cfg.Notify.TelegramChatID),
		Prompter: prompter,
		Logger:   logger,
	}

	if notifyOnly {
		return notifier.Run(ctx)
	}

	filesystem := fs.OSFS{}
	menu := tui.Picker{}
	mounter := &app.ShareMounter{
		Prompter:   prompter,
		Logger:     logger,
		Host:       cfg.Server.Host,
		RemotePath: cfg.Folders.DestinationBase,
		MountPoint: cfg.Folders.Base,
	}
	lister := &app.Lister{FS: filesystem, Mounter: mounter, Logger: logger}

	origin := &app.OriginResolver{
		Root:   cfg.Folders.Origin,
		FS:     filesystem,
		Lister: lister,
		Menu:   menu,
		Logger: logger,
	}
	selection, err := origin.Resolve(ctx)
	if err != nil {
		return finishOrFail(printer, err)
	}

	destResolver := &app.DestinationResolver{
		Base:         cfg.Folders.DestinationBase,
		SeriesFolder: cfg.Folders.Series,
		Lister:       lister,
		Menu:         menu,
	}
	destination, err := destResolver.Resolve(ctx)
	if err != nil {
		return finishOrFail(printer, err)
	}

	dialer := remote.Dialer{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		User:           cfg.Server.User,
		KnownHostsFile: cfg.Server.KnownHostsFile,
		PrivateKeyFile: cfg.Server.PrivateKeyFile,
	}

	transferrer := &app.Transferrer{
		Dialer:          dialer,
		Prompter:        prompter,
		Printer:         &printer,
		Logger:          logger,
		DestinationBase: cfg.Folders.DestinationBase,
	}
	completed, err := transferrer.Transfer(ctx, selection, destination)
	if err != nil {
		return finishOrFail(printer, err)
	}

	if completed {
		if domain.IsAnnounceable(destination) {
			if err := notifier.Run(ctx); err != nil {
				logger.Warnf("%v", err)
			}
		}

		if strings.Contains(destination, "/series/") {
			renamer := &app.Renamer{Dialer: dialer, Prompter: prompter, Printer: &printer}
			if err := renamer.Rename(ctx, destination); err != nil {
				return finishOrFail(printer, err)
			}
		}

		cleaner := &app.Cleaner{
			FS:         filesystem,
			Prompter:   prompter,
			Printer:    &printer,
			OriginRoot: cfg.Folders.Origin,
		}
		if err := cleaner.Remove(selection); err != nil {
			return finishOrFail(printer, err)
		}
	}

	os.Exit(printer.Bye(""))
	return nil
}

// finishOrFail routes cancellations and empty selections through the
// farewell (which always exits with status 1) and everything else up to the
// error handler.
func finishOrFail(printer presentation.Printer, err error) error {
	if errors.Is(err, app.ErrCanceled) || errors.Is(err, app.ErrNothingSelected) {
		os.Exit(printer.Bye(""))
	}
	return err
}
