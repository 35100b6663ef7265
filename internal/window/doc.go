// Package window implements the overlay surface as a real desktop window
// using Ebitengine: undecorated, transparent, click-through and floating
// above other windows.
//
// Ebitengine must own the main goroutine, so callers create the surface
// through the engine and then block in [Window.Run] from main. Building
// with the headless tag replaces the implementation with a stub that
// reports domain.ErrPlatformUnavailable.
package window
