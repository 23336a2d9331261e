package core

import "fmt"

// ANSI escape sequences used by the wire format. The original client UI
// resets to white rather than the terminal default, so the formatter does too.
const (
	ansiRed     = "\x1B[31m"
	ansiGreen   = "\x1B[32m"
	ansiYellow  = "\x1B[33m"
	ansiBlue    = "\x1B[34m"
	ansiMagenta = "\x1B[35m"
	ansiCyan    = "\x1B[36m"
	ansiWhite   = "\x1B[37m"
)

// Formatter renders server-to-client lines, without the line terminator.
// The zero value renders plain text; NewFormatter(true) adds color. Color is
// presentation only, every line is identical modulo escape sequences.
type Formatter struct {
	yellow, white, red, green string
	palette                   []string
}

// NewFormatter builds a formatter, colored or plain.
func NewFormatter(color bool) Formatter {
	if !color {
		return Formatter{}
	}
	return Formatter{
		yellow:  ansiYellow,
		white:   ansiWhite,
		red:     ansiRed,
		green:   ansiGreen,
		palette: []string{ansiGreen, ansiBlue, ansiMagenta, ansiCyan},
	}
}

// user picks the stable per-client color from the id.
func (f Formatter) user(id int) string {
	if len(f.palette) == 0 {
		return ""
	}
	return f.palette[id%len(f.palette)]
}

// Notice renders a plain server notice such as PONG or UNKNOWN COMMAND.
func (f Formatter) Notice(text string) string {
	return f.yellow + text + f.white
}

// Chat renders a plain room message: <room>[name] text.
func (f Formatter) Chat(id int, room, name, text string) string {
	return fmt.Sprintf("%s<%s>[%s]%s %s", f.user(id), room, name, f.white, text)
}

// PM renders a private message with the sender's room and name.
func (f Formatter) PM(id int, room, name, text string) string {
	return fmt.Sprintf("%s[PM]%s<%s>[%s]%s %s", f.red, f.user(id), room, name, f.white, text)
}

// Emote renders the *** name text *** emote line.
func (f Formatter) Emote(id int, name, text string) string {
	return fmt.Sprintf("%s*** %s %s ***%s", f.user(id), name, text, f.white)
}

// JoinNotice announces a new connection to its initial room.
func (f Formatter) JoinNotice(name string) string {
	return fmt.Sprintf("%sJOIN, WELCOME%s %s", f.yellow, f.white, name)
}

// ByeNotice announces a disconnecting client to its room.
func (f Formatter) ByeNotice(name string) string {
	return fmt.Sprintf("%sLEAVE, BYE%s %s", f.yellow, f.white, name)
}

// RenameNotice announces a name change, old name first for readability.
func (f Formatter) RenameNotice(oldName, newName string) string {
	return fmt.Sprintf("%sRENAME%s %s TO %s", f.yellow, f.white, oldName, newName)
}

// MovedNotice tells the old room where the client went.
func (f Formatter) MovedNotice(id int, name, newRoom string) string {
	return fmt.Sprintf("%sLEAVE %s[%s]%s MOVED TO <%s>", f.yellow, f.user(id), name, f.white, newRoom)
}

// JoinRoomNotice welcomes the client into its new room.
func (f Formatter) JoinRoomNotice(id int, name string) string {
	return fmt.Sprintf("%sJOIN, WELCOME %s[%s]%s", f.yellow, f.user(id), name, f.white)
}

// WhoCount heads the \who listing with the number of registered clients.
func (f Formatter) WhoCount(n int) string {
	return fmt.Sprintf("%sCLIENTS%s %d", f.yellow, f.white, n)
}

// WhoEntry is one line of the \who listing, indented under the count.
func (f Formatter) WhoEntry(id int, room, name string) string {
	return fmt.Sprintf("  %s<%s>[%s]%s", f.user(id), room, name, f.white)
}

// RoomInfo heads the no-argument \room listing.
func (f Formatter) RoomInfo(room string, n int) string {
	return fmt.Sprintf("%sROOM NAME%s <%s> | %sCLIENTS%s %d", f.yellow, f.white, room, f.yellow, f.white, n)
}

// RoomEntry is one line of the room-scoped listing.
func (f Formatter) RoomEntry(id int, name string) string {
	return fmt.Sprintf("  %s[%s]%s", f.user(id), name, f.white)
}

// TimeNotice reports the current server-local time.
func (f Formatter) TimeNotice(ts string) string {
	return fmt.Sprintf("%sTIME%s  %s", f.yellow, f.white, ts)
}

// MathResult reports an evaluated expression with six-decimal formatting.
func (f Formatter) MathResult(expr string, value float64) string {
	return fmt.Sprintf("%sMATH%s  %s = %f", f.yellow, f.white, expr, value)
}

// Help returns the command reference, one line per command. The echo entry
// is present only in the extended protocol variant.
func (f Formatter) Help(echoCommand bool) []string {
	entry := func(verb, desc string) string {
		return fmt.Sprintf("%s\\%-8s%s %s", f.green, verb, f.white, desc)
	}
	lines := []string{
		entry("quit", "Quit chatroom"),
		entry("me", "<message> Emote"),
		entry("ping", "Server test"),
		entry("nick", "<name> Change nickname"),
		entry("pm", "<name> <message> Send private message"),
		entry("who", "Show active clients"),
		entry("help", "Show this help screen"),
		entry("room", "<room_name> Move to another room or show who is in the current room"),
		entry("time", "Show the current server time"),
		entry("math", "<expression> Evaluate a math expression"),
	}
	if echoCommand {
		lines = append(lines, entry("echo", "<on|off> Toggle receiving your own messages"))
	}
	return lines
}

// truncate cuts a name or room to the rune limit, silently discarding the
// excess. No error is ever raised for over-length input.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
