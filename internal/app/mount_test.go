package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"mediaship/internal/logging"
)

func TestMountAskRunsMountCommand(t *testing.T) {
	var gotName string
	var gotArgs []string
	mounter := &ShareMounter{
		Prompter:   &scriptedPrompter{answers: []string{"y"}},
		Logger:     logging.New(nil, false),
		Host:       "toto",
		RemotePath: "/export/media",
		MountPoint: "/opt/mounts/media",
		Runner: func(ctx context.Context, name string, args ...string) error {
			gotName = name
			gotArgs = args
			return nil
		},
	}

	if err := mounter.MountAsk(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotName != "sudo" {
		t.Fatalf("command = %q, want sudo", gotName)
	}
	want := []string{"mount", "-o", "rw", "-t", "nfs", "toto:/export/media", "/opt/mounts/media"}
	if !reflect.DeepEqual(gotArgs, want) {
		t.Fatalf("args = %v, want %v", gotArgs, want)
	}
}

func TestMountAskEmptyAnswerMeansYes(t *testing.T) {
	ran := false
	mounter := &ShareMounter{
		Prompter: &scriptedPrompter{answers: []string{""}},
		Logger:   logging.New(nil, false),
		Runner: func(ctx context.Context, name string, args ...string) error {
			ran = true
			return nil
		},
	}

	if err := mounter.MountAsk(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Fatalf("expected the mount command to run")
	}
}

func TestMountAskDeclined(t *testing.T) {
	mounter := &ShareMounter{
		Prompter: &scriptedPrompter{answers: []string{"n"}},
		Logger:   logging.New(nil, false),
		Runner: func(ctx context.Context, name string, args ...string) error {
			t.Fatal("mount command must not run")
			return nil
		},
	}

	if err := mounter.MountAsk(context.Background()); !errors.Is(err, ErrNothingSelected) {
		t.Fatalf("expected ErrNothingSelected, got %v", err)
	}
}
