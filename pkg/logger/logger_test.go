package logger

import (
	"errors"
	"testing"
)

func TestPairs(t *testing.T) {
	err := errors.New("boom")

	tests := []struct {
		name string
		args []any
		want []any
	}{
		{name: "empty", args: nil, want: nil},
		{name: "key value", args: []any{"user_id", 7}, want: []any{"user_id", 7}},
		{name: "bare error", args: []any{err}, want: []any{"error", err}},
		{name: "trailing string", args: []any{"slot", "home", "oops"}, want: []any{"slot", "home", "detail", "oops"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pairs(tt.args)
			if len(got) != len(tt.want) {
				t.Fatalf("pairs(%v) = %v, want %v", tt.args, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("pairs(%v)[%d] = %v, want %v", tt.args, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoggingBeforeInitDoesNotPanic(t *testing.T) {
	Info("no init yet", "k", "v")
	Error("bare error", errors.New("x"))
}
