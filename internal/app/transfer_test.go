package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"mediaship/internal/domain"
	"mediaship/internal/logging"
	"mediaship/internal/presentation"
)

func newTransferrer(dialer *fakeDialer, prompter *scriptedPrompter, out *bytes.Buffer) *Transferrer {
	return &Transferrer{
		Dialer:          dialer,
		Prompter:        prompter,
		Printer:         &presentation.Printer{Writer: out},
		Logger:          logging.New(out, false),
		DestinationBase: "/opt/mounts/media",
	}
}

func TestTransferDeclinedIsSilentNoOp(t *testing.T) {
	var out bytes.Buffer
	dialer := &fakeDialer{session: &fakeSession{}}
	prompter := &scriptedPrompter{answers: []string{"n"}}

	set := domain.SelectionSet{{Dir: "/media/origin", Files: []string{"a.mkv"}}}
	ok, err := newTransferrer(dialer, prompter, &out).Transfer(context.Background(), set, "/opt/mounts/media/movies/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected no success indicator after declining")
	}
	if dialer.dials != 0 {
		t.Fatalf("expected no remote session to be opened, got %d dials", dialer.dials)
	}
}

func TestTransferUploadsVerifiesAndReportsSpace(t *testing.T) {
	var out bytes.Buffer
	session := &fakeSession{runOutput: map[string]string{
		"df -h /opt/mounts/media | awk 'NR>1{print $4}'": "100G\n",
	}}
	dialer := &fakeDialer{session: session}
	prompter := &scriptedPrompter{answers: []string{"y"}}

	set := domain.SelectionSet{
		{Dir: "/media/origin", Files: []string{"a.mkv", "b.mkv"}},
		{Dir: "/media/origin/S1", Files: []string{"ep1.mkv"}},
	}
	ok, err := newTransferrer(dialer, prompter, &out).Transfer(context.Background(), set, "/opt/mounts/media/movies/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a success indicator")
	}

	if len(session.uploads) != 3 {
		t.Fatalf("expected 3 uploads, got %d", len(session.uploads))
	}
	if session.uploads[0].local != "/media/origin/a.mkv" || session.uploads[2].local != "/media/origin/S1/ep1.mkv" {
		t.Fatalf("unexpected upload order: %#v", session.uploads)
	}
	for _, up := range session.uploads {
		if up.remoteDir != "/opt/mounts/media/movies/" {
			t.Fatalf("unexpected remote dir: %q", up.remoteDir)
		}
	}

	wantCommands := []string{
		`chmod -R 755 "/opt/mounts/media/movies/"`,
		`ls -alh "/opt/mounts/media/movies/a.mkv"`,
		`ls -alh "/opt/mounts/media/movies/b.mkv"`,
		`ls -alh "/opt/mounts/media/movies/ep1.mkv"`,
		"df -h /opt/mounts/media | awk 'NR>1{print $4}'",
	}
	if len(session.commands) != len(wantCommands) {
		t.Fatalf("unexpected commands: %#v", session.commands)
	}
	for i, want := range wantCommands {
		if session.commands[i] != want {
			t.Fatalf("command %d = %q, want %q", i, session.commands[i], want)
		}
	}

	if !session.closed {
		t.Fatalf("expected the session to be closed")
	}
	if !strings.Contains(out.String(), "100G") {
		t.Fatalf("expected the space report in the output:\n%s", out.String())
	}
}

func TestTransferConfirmationIsCaseInsensitive(t *testing.T) {
	var out bytes.Buffer
	session := &fakeSession{runOutput: map[string]string{
		"df -h /opt/mounts/media | awk 'NR>1{print $4}'": "1T\n",
	}}
	dialer := &fakeDialer{session: session}
	prompter := &scriptedPrompter{answers: []string{"YES"}}

	set := domain.SelectionSet{{Dir: "/media/origin", Files: []string{"a.mkv"}}}
	ok, err := newTransferrer(dialer, prompter, &out).Transfer(context.Background(), set, "/opt/mounts/media/movies/")
	if err != nil || !ok {
		t.Fatalf("expected YES to be accepted, got ok=%v err=%v", ok, err)
	}
}

func TestTransferUploadErrorIsFatal(t *testing.T) {
	var out bytes.Buffer
	session := &fakeSession{uploadErr: errors.New("connection reset")}
	dialer := &fakeDialer{session: session}
	prompter := &scriptedPrompter{answers: []string{"y"}}

	set := domain.SelectionSet{{Dir: "/media/origin", Files: []string{"a.mkv"}}}
	ok, err := newTransferrer(dialer, prompter, &out).Transfer(context.Background(), set, "/opt/mounts/media/movies/")
	if ok || err == nil {
		t.Fatalf("expected a fatal error, got ok=%v err=%v", ok, err)
	}
}

func TestTransferDialErrorIsFatal(t *testing.T) {
	var out bytes.Buffer
	dialer := &fakeDialer{err: errors.New("no route to host")}
	prompter := &scriptedPrompter{answers: []string{"y"}}

	set := domain.SelectionSet{{Dir: "/media/origin", Files: []string{"a.mkv"}}}
	ok, err := newTransferrer(dialer, prompter, &out).Transfer(context.Background(), set, "/opt/mounts/media/movies/")
	if ok || err == nil {
		t.Fatalf("expected a fatal error, got ok=%v err=%v", ok, err)
	}
}
