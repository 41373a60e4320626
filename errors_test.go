package imexport

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	cause := errors.New("no such file")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  newError(KindInvalidState, "registry.lookup", msgNoTableManagers),
			want: "registry.lookup: there are no table managers",
		},
		{
			name: "with cause",
			err:  wrapError(KindCriticalIO, "mapper.load", cause, "mapping file %q can't be read", "m.json"),
			want: `mapper.load: mapping file "m.json" can't be read: no such file`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := wrapError(KindMalformedMapping, "mapper.load", cause, "bad document")

	if !errors.Is(err, cause) {
		t.Error("errors.Is() does not reach the cause")
	}
}

func TestIsKind(t *testing.T) {
	base := newError(KindInvalidArgument, "registry.add", msgTableManagerIsNil)
	wrapped := fmt.Errorf("outer: %w", base)

	tests := []struct {
		name string
		err  error
		kind Kind
		want bool
	}{
		{name: "direct match", err: base, kind: KindInvalidArgument, want: true},
		{name: "wrapped match", err: wrapped, kind: KindInvalidArgument, want: true},
		{name: "kind mismatch", err: base, kind: KindInvalidState, want: false},
		{name: "nil error", err: nil, kind: KindInvalidArgument, want: false},
		{name: "plain error", err: errors.New("plain"), kind: KindInvalidArgument, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKind(tt.err, tt.kind); got != tt.want {
				t.Errorf("IsKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFatal(t *testing.T) {
	if !newError(KindCriticalIO, "mapper.load", "gone").Fatal() {
		t.Error("critical_io error not fatal")
	}
	for _, kind := range []Kind{KindInvalidArgument, KindInvalidState, KindMalformedMapping, KindSubRunFailed} {
		if newError(kind, "op", "msg").Fatal() {
			t.Errorf("%s error reported fatal", kind)
		}
	}
}

func TestNewWarning(t *testing.T) {
	w := NewWarning("empty_cell", "cell %s in table %s is empty", "B7", "Contact")
	if w.Kind != "empty_cell" {
		t.Errorf("Kind = %q, want \"empty_cell\"", w.Kind)
	}
	if w.Message != "cell B7 in table Contact is empty" {
		t.Errorf("Message = %q", w.Message)
	}
}
