package main

import (
	"testing"

	"github.com/automoto/jump/config"
	"github.com/automoto/jump/sim"
)

func TestParseTicks(t *testing.T) {
	got, err := parseTicks("3, 10,42")
	if err != nil {
		t.Fatalf("parseTicks: %v", err)
	}
	want := []int{3, 10, 42}
	if len(got) != len(want) {
		t.Fatalf("parseTicks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parseTicks = %v, want %v", got, want)
		}
	}

	if _, err := parseTicks("3,x"); err == nil {
		t.Fatal("parseTicks accepted a non-number")
	}
}

func TestJumpSource(t *testing.T) {
	s := sim.New(config.DefaultGame())

	src, err := jumpSource("2", "hard")
	if err != nil {
		t.Fatalf("jumpSource: %v", err)
	}
	if src.ShouldJump(1, s) || !src.ShouldJump(2, s) {
		t.Fatal("schedule did not take precedence over the autopilot")
	}

	if _, err := jumpSource("", "impossible"); err == nil {
		t.Fatal("unknown difficulty accepted")
	}

	src, err = jumpSource("", "none")
	if err != nil || src.ShouldJump(1, s) {
		t.Fatalf("none: err=%v", err)
	}
}
