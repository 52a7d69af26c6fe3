package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestWrapNilPassesThrough(t *testing.T) {
	if err := Wrap(IOFailure, "remove", "/tmp/x", nil); err != nil {
		t.Fatalf("Wrap(nil) = %v, want nil", err)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrap(IOFailure, "remove", "/tmp/x", cause)

	if !stderrors.Is(err, cause) {
		t.Fatalf("wrapped error lost its cause")
	}
	if got := err.Error(); !strings.Contains(got, "remove: /tmp/x") {
		t.Fatalf("Error() = %q", got)
	}
}

func TestUserMessagePerKind(t *testing.T) {
	cause := stderrors.New("boom")
	cases := []struct {
		kind Kind
		want string
	}{
		{InvalidConfig, "Invalid configuration"},
		{RemoteFailure, "An error occurred with the ssh connection"},
		{IOFailure, "I/O error"},
		{NotifyFailure, "Notification failed"},
		{Internal, "A general error occurred"},
	}
	for _, c := range cases {
		err := Wrap(c.kind, "op", "/p", cause)
		if got := UserMessage(err); !strings.Contains(got, c.want) {
			t.Errorf("UserMessage(%s) = %q, want mention of %q", c.kind, got, c.want)
		}
	}
}

func TestUserMessageForPlainErrors(t *testing.T) {
	err := stderrors.New("plain")
	if got := UserMessage(err); got != "plain" {
		t.Fatalf("UserMessage() = %q, want %q", got, "plain")
	}
}
