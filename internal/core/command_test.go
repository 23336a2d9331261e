package core

import "testing"

func TestIsCommand(t *testing.T) {
	if !IsCommand(`\quit`) {
		t.Fatal("sigil line must be a command")
	}
	if IsCommand("hello there") {
		t.Fatal("plain text must not be a command")
	}
	if IsCommand("") {
		t.Fatal("empty line must not be a command")
	}
}

func TestParseVerbCaseInsensitive(t *testing.T) {
	cases := []struct {
		line string
		verb Verb
	}{
		{`\quit`, CmdQuit},
		{`\PING`, CmdPing},
		{`\Nick bob`, CmdNick},
		{`\pm bob hi`, CmdPM},
		{`\WHO`, CmdWho},
		{`\me waves`, CmdMe},
		{`\help`, CmdHelp},
		{`\Room Lobby`, CmdRoom},
		{`\time`, CmdTime},
		{`\math 2+2`, CmdMath},
		{`\ECHO off`, CmdEcho},
		{`\bogus`, CmdUnknown},
		{`\`, CmdUnknown},
	}
	for _, tc := range cases {
		if got := Parse(tc.line).Verb; got != tc.verb {
			t.Errorf("Parse(%q).Verb = %d, want %d", tc.line, got, tc.verb)
		}
	}
}

func TestParseArgsArePositional(t *testing.T) {
	cmd := Parse(`\pm bob hello   there   friend`)
	if len(cmd.Args) != 4 {
		t.Fatalf("expected 4 args, got %v", cmd.Args)
	}
	if cmd.Args[0] != "bob" {
		t.Fatalf("first arg %q, want bob", cmd.Args[0])
	}
}

func TestPayloadRejoinsWithSingleSpaces(t *testing.T) {
	cmd := Parse(`\pm bob hello   there`)
	if got := cmd.Payload(1); got != "hello there" {
		t.Fatalf("Payload(1) = %q, want %q", got, "hello there")
	}
	if got := cmd.Payload(0); got != "bob hello there" {
		t.Fatalf("Payload(0) = %q, want %q", got, "bob hello there")
	}
	if got := cmd.Payload(4); got != "" {
		t.Fatalf("out-of-range payload must be empty, got %q", got)
	}
}

func TestParseKeepsRawVerb(t *testing.T) {
	cmd := Parse(`\Frobnicate now`)
	if cmd.Verb != CmdUnknown {
		t.Fatalf("expected unknown verb, got %d", cmd.Verb)
	}
	if cmd.Raw != "Frobnicate" {
		t.Fatalf("raw verb %q, want Frobnicate", cmd.Raw)
	}
}
