package window

import "runtime"

// displayReachable reports whether a windowing system is plausibly
// reachable. Only X11/Wayland hosts can be checked cheaply; other
// platforms always have a window server when a user session exists.
func displayReachable(goos string, getenv func(string) string) bool {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
	default:
		return true
	}
}

func hostGOOS() string { return runtime.GOOS }
