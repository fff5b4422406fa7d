package config

import (
	"testing"

	"macstrace/decode"

	tracererrors "macstrace/errors"
)

func TestValidateNoTarget(t *testing.T) {
	c := &Config{}
	if !tracererrors.Is(c.Validate(), tracererrors.ErrNoTarget) {
		t.Fatalf("expected ErrNoTarget")
	}
}

func TestValidateBothTargets(t *testing.T) {
	c := &Config{Command: []string{"ls"}, PID: 10}
	if !tracererrors.Is(c.Validate(), tracererrors.ErrBothTargets) {
		t.Fatalf("expected ErrBothTargets")
	}
}

func TestValidateFollowForkRejected(t *testing.T) {
	c := &Config{Command: []string{"ls"}, FollowFork: true}
	if !tracererrors.Is(c.Validate(), tracererrors.ErrFollowForkUnsupported) {
		t.Fatalf("expected ErrFollowForkUnsupported")
	}
}

func TestValidateCommandOnly(t *testing.T) {
	c := &Config{Command: []string{"ls", "-l"}}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidatePIDOnly(t *testing.T) {
	c := &Config{PID: 1234}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestParseBufferStyle(t *testing.T) {
	cases := map[int]decode.BufferRenderStyle{
		0: decode.BufferStyleQuoted,
		1: decode.BufferStyleHex,
		2: decode.BufferStyleHexDump,
		3: decode.BufferStyleHexDump,
	}
	for in, want := range cases {
		if got := ParseBufferStyle(in); got != want {
			t.Fatalf("ParseBufferStyle(%d) = %v, want %v", in, got, want)
		}
	}
}
