package violation

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "reentrancy",
			err:      Reentrancy("Owner.Enter"),
			contains: []string{"[Owner.Enter]", "reentrancy", "already open"},
		},
		{
			name:     "use after move",
			err:      UseAfterMove("Owner.NewRef"),
			contains: []string{"[Owner.NewRef]", "use_after_move", "moved or closed"},
		},
		{
			name:     "cross goroutine",
			err:      CrossGoroutine("Pinned.Value", 3, 9),
			contains: []string{"[Pinned.Value]", "cross_goroutine", "goroutine 3", "goroutine 9"},
		},
		{
			name:     "no detail",
			err:      &Error{Op: "Ref.Clone", Kind: KindIdleClone},
			contains: []string{"[Ref.Clone]", "idle_clone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := IdleClone("Ref.Clone")

	if !errors.Is(err, &Error{Kind: KindIdleClone}) {
		t.Error("Expected match on kind")
	}
	if errors.Is(err, &Error{Kind: KindIdleRelease}) {
		t.Error("Expected no match on a different kind")
	}
	if errors.Is(err, errors.New("idle_clone")) {
		t.Error("Expected no match against a plain error")
	}
}
