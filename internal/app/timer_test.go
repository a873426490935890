package app

import (
	"testing"
	"time"
)

func TestNewPacerFiresImmediately(t *testing.T) {
	p := NewPacer(30)
	if !p.ShouldStep() {
		t.Fatal("a fresh pacer must allow the first step without waiting")
	}
}

func TestPacerCatchesUpAfterStall(t *testing.T) {
	p := NewPacer(50)
	if !p.ShouldStep() {
		t.Fatal("priming step did not fire")
	}
	time.Sleep(100 * time.Millisecond)
	fired := 0
	for i := 0; i < 6; i++ {
		if p.ShouldStep() {
			fired++
		}
	}
	if fired < 2 {
		t.Fatalf("after a 100ms stall only %d steps fired, want catch-up", fired)
	}
}

func TestPacerResetDropsBacklog(t *testing.T) {
	p := NewPacer(50)
	if !p.ShouldStep() {
		t.Fatal("priming step did not fire")
	}
	time.Sleep(100 * time.Millisecond)
	p.Reset()
	if !p.ShouldStep() {
		t.Fatal("reset pacer must fire exactly once")
	}
	if p.ShouldStep() {
		t.Fatal("reset pacer fired twice in a row, backlog was not dropped")
	}
}
