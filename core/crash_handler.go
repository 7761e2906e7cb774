package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

type finalizerBox struct{ f Finalizer }

var crashFinalizer atomic.Pointer[finalizerBox]

// SetCrashFinalizer registers the terminal to restore before a crash report
// Passing nil clears the registration
func SetCrashFinalizer(f Finalizer) {
	if f == nil {
		crashFinalizer.Store(nil)
		return
	}
	crashFinalizer.Store(&finalizerBox{f: f})
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if box := crashFinalizer.Swap(nil); box != nil {
		box.f.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mNINJA-DODGE CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
