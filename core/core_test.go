package core

import "testing"

func TestInputAxes(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		h, v int
	}{
		{"idle", Input{}, 0, 0},
		{"right", Input{Right: true}, 1, 0},
		{"up-left", Input{Up: true, Left: true}, -1, -1},
		{"opposites cancel", Input{Left: true, Right: true, Up: true, Down: true}, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Horizontal(); got != tc.h {
				t.Errorf("Horizontal = %d, want %d", got, tc.h)
			}
			if got := tc.in.Vertical(); got != tc.v {
				t.Errorf("Vertical = %d, want %d", got, tc.v)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if ModeGameOver.String() != "GameOver" {
		t.Errorf("Expected GameOver, got %s", ModeGameOver)
	}
	if Mode(200).String() != "Unknown" {
		t.Error("Out of range mode should stringify as Unknown")
	}
	if !ModePlaying.Simulating() || ModePaused.Simulating() {
		t.Error("Only Playing should simulate")
	}
}

func TestRGBScale(t *testing.T) {
	c := RGB{200, 100, 50}
	if c.Scale(0) != RGBBlack {
		t.Error("Scale(0) should be black")
	}
	if c.Scale(1.5) != c {
		t.Error("Scale above 1 should be identity")
	}
	if got := c.Scale(0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Scale(0.5) = %+v", got)
	}
}

type countingFinalizer struct{ calls int }

func (c *countingFinalizer) Fini() { c.calls++ }

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })
	<-done
}

func TestSetCrashFinalizerClears(t *testing.T) {
	f := &countingFinalizer{}
	SetCrashFinalizer(f)
	if crashFinalizer.Load() == nil {
		t.Fatal("Expected finalizer registered")
	}
	SetCrashFinalizer(nil)
	if crashFinalizer.Load() != nil {
		t.Error("Expected finalizer cleared")
	}
	if f.calls != 0 {
		t.Errorf("Expected Fini not called, got %d", f.calls)
	}
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	f := &countingFinalizer{}
	SetCrashFinalizer(f)
	defer SetCrashFinalizer(nil)

	HandleCrash(nil)
	if f.calls != 0 {
		t.Errorf("Expected no finalizer call on nil panic value, got %d", f.calls)
	}
}

func TestRGBBlend(t *testing.T) {
	if got := RGBBlack.Blend(RGBWhite, 0); got != RGBBlack {
		t.Errorf("Alpha 0 should keep destination, got %+v", got)
	}
	if got := RGBBlack.Blend(RGBWhite, 1); got != RGBWhite {
		t.Errorf("Alpha 1 should take source, got %+v", got)
	}
	got := RGBBlack.Blend(RGB{200, 100, 0}, 0.5)
	if got != (RGB{100, 50, 0}) {
		t.Errorf("Blend(0.5) = %+v", got)
	}
}
