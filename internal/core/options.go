package core

// Options control capacity, the protocol variant, and formatting.
type Options struct {
	// MaxClients bounds the registry; registrations beyond it fail fast.
	MaxClients int
	// MaxNameLen is the rune limit for names and room names. Longer input is
	// silently cut, never rejected.
	MaxNameLen int
	// DefaultRoom is assigned to every client at accept time.
	DefaultRoom string
	// OutboxSize is the per-client delivery buffer. A full outbox drops the
	// line for that recipient instead of stalling the sender.
	OutboxSize int
	// Color enables ANSI escape sequences in server lines. Cosmetic only.
	Color bool
	// EchoCommand enables the extended protocol variant: the \echo command
	// and except-self broadcast for clients that turned their echo off.
	EchoCommand bool
}

// DefaultOptions mirror the original server's compile-time constants.
func DefaultOptions() Options {
	return Options{
		MaxClients:  100,
		MaxNameLen:  32,
		DefaultRoom: "Common",
		OutboxSize:  32,
		Color:       true,
		EchoCommand: true,
	}
}
