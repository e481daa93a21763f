package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestOpError_WrapUnwrap(t *testing.T) {
	err := &OpError{
		Op:   "rules.load",
		Kind: KindConfiguration,
		Path: "structure.json",
		Err:  os.ErrNotExist,
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Fatal("expected errors.Is to match cause")
	}

	msg := err.Error()
	for _, want := range []string{"rules.load", "configuration", "path=structure.json"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want it to contain %q", msg, want)
		}
	}
}

func TestIsKind(t *testing.T) {
	base := &OpError{Op: "sorter.move", Kind: KindSourceVanished}
	wrapped := fmt.Errorf("移动失败: %w", base)

	if !IsKind(wrapped, KindSourceVanished) {
		t.Error("expected IsKind to see through wrapping")
	}
	if IsKind(wrapped, KindMoveFailed) {
		t.Error("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindMoveFailed) {
		t.Error("expected IsKind to reject plain errors")
	}
}

func TestOpError_NilReceiver(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("expected nil Unwrap")
	}
}
