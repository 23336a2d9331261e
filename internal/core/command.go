package core

import "strings"

// Sigil marks a client line as a command rather than chat text.
const Sigil = '\\'

// Verb identifies a recognized command.
type Verb int

const (
	// CmdUnknown is distinct from every recognized verb; the dispatcher must
	// never fall through to treating an unknown command as a plain message.
	CmdUnknown Verb = iota
	CmdQuit
	CmdPing
	CmdNick
	CmdPM
	CmdWho
	CmdMe
	CmdHelp
	CmdRoom
	CmdTime
	CmdMath
	CmdEcho
)

var verbs = map[string]Verb{
	"quit": CmdQuit,
	"ping": CmdPing,
	"nick": CmdNick,
	"pm":   CmdPM,
	"who":  CmdWho,
	"me":   CmdMe,
	"help": CmdHelp,
	"room": CmdRoom,
	"time": CmdTime,
	"math": CmdMath,
	"echo": CmdEcho,
}

// Command is one parsed client command.
type Command struct {
	Verb Verb
	// Raw is the verb as typed, without the sigil.
	Raw string
	// Args are the whitespace-separated tokens after the verb, consumed
	// positionally by each handler.
	Args []string
}

// IsCommand reports whether a stripped input line carries the command sigil.
func IsCommand(line string) bool {
	return len(line) > 0 && line[0] == Sigil
}

// Parse splits a sigil line into a case-insensitive verb and its arguments.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}
	}
	raw := strings.TrimPrefix(fields[0], string(Sigil))
	return Command{
		Verb: verbs[strings.ToLower(raw)],
		Raw:  raw,
		Args: fields[1:],
	}
}

// Payload re-joins the arguments from index i on with single spaces. It is
// the free-text body for commands like pm and me; empty when absent.
func (c Command) Payload(i int) string {
	if i >= len(c.Args) {
		return ""
	}
	return strings.Join(c.Args[i:], " ")
}
