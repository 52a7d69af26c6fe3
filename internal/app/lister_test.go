package app

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestListerRetriesAfterMount(t *testing.T) {
	filesystem := &fakeFS{listings: map[string][]string{}}
	mounter := &fakeMounter{
		fs:    filesystem,
		dir:   "/media/origin",
		entry: []string{"movies", "a.mkv"},
	}
	lister := &Lister{FS: filesystem, Mounter: mounter}

	items, err := lister.List(context.Background(), "/media/origin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mounter.called != 1 {
		t.Fatalf("expected one mount prompt, got %d", mounter.called)
	}
	if !reflect.DeepEqual(items, []string{"movies", "a.mkv"}) {
		t.Fatalf("unexpected listing: %v", items)
	}
}

func TestListerAbortsWhenMountDeclined(t *testing.T) {
	filesystem := &fakeFS{listings: map[string][]string{}}
	mounter := &fakeMounter{fs: filesystem, err: ErrNothingSelected}
	lister := &Lister{FS: filesystem, Mounter: mounter}

	_, err := lister.List(context.Background(), "/media/origin")
	if !errors.Is(err, ErrNothingSelected) {
		t.Fatalf("expected ErrNothingSelected, got %v", err)
	}
}

func TestListerReturnsListingDirectly(t *testing.T) {
	filesystem := &fakeFS{listings: map[string][]string{
		"/media/origin": {"series", "b.mkv"},
	}}
	lister := &Lister{FS: filesystem, Mounter: &fakeMounter{fs: filesystem}}

	items, err := lister.List(context.Background(), "/media/origin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(items, []string{"series", "b.mkv"}) {
		t.Fatalf("unexpected listing: %v", items)
	}
}
