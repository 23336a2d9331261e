package core

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// maxLineBytes bounds one client input line, matching the original's fixed
// read buffer. A longer line is a transport error and ends the session.
const maxLineBytes = 1024

// Evaluator computes arithmetic expressions for the math command. It is an
// external collaborator: failures become a reply, never a session crash.
type Evaluator func(expr string) (float64, error)

// session runs the per-connection state machine: read a line, classify it,
// dispatch a command or broadcast a message, until quit or disconnect. It is
// the sole writer of its client's name, room, and echo fields.
type session struct {
	client *Client
	conn   net.Conn
	reg    *Registry
	router *Router
	opts   Options
	format Formatter
	eval   Evaluator
	log    *zerolog.Logger
}

// run reads and processes lines until the quit command or end of stream,
// then returns so the lifecycle owner can perform the closing sequence.
func (s *session) run() {
	scanner := bufio.NewScanner(s.conn)
	scanner.Buffer(make([]byte, 0, 256), maxLineBytes)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if IsCommand(line) {
			if quit := s.dispatch(Parse(line)); quit {
				return
			}
			continue
		}
		s.broadcastChat(line)
	}

	if err := scanner.Err(); err != nil {
		s.log.Warn().Err(err).Int("client_id", s.client.ID()).Msg("read from client failed")
	}
}

// dispatch runs one parsed command. It reports whether the session should
// transition to closing.
func (s *session) dispatch(cmd Command) bool {
	switch cmd.Verb {
	case CmdQuit:
		return true
	case CmdPing:
		s.reply(s.format.Notice("PONG"))
	case CmdNick:
		s.handleNick(cmd)
	case CmdPM:
		s.handlePM(cmd)
	case CmdWho:
		s.handleWho()
	case CmdMe:
		s.handleMe(cmd)
	case CmdHelp:
		s.handleHelp()
	case CmdRoom:
		s.handleRoom(cmd)
	case CmdTime:
		s.reply(s.format.TimeNotice(time.Now().Format(time.ANSIC)))
	case CmdMath:
		s.handleMath(cmd)
	case CmdEcho:
		if !s.opts.EchoCommand {
			s.reply(s.format.Notice("UNKNOWN COMMAND"))
			return false
		}
		s.handleEcho(cmd)
	default:
		s.reply(s.format.Notice("UNKNOWN COMMAND"))
	}
	return false
}

func (s *session) reply(line string) {
	s.router.SendToSelf(s.client, line)
}

func (s *session) handleNick(cmd Command) {
	if len(cmd.Args) == 0 {
		s.reply(s.format.Notice("NAME CANNOT BE NULL"))
		return
	}
	name := truncate(cmd.Args[0], s.opts.MaxNameLen)

	oldName, err := s.reg.Rename(s.client, name)
	if err != nil {
		s.reply(s.format.Notice("NAME ALREADY EXISTS"))
		return
	}
	// The announcement goes to the current room, which a rename never changes.
	s.router.BroadcastToRoom(s.client.Room(), s.format.RenameNotice(oldName, name))
}

func (s *session) handlePM(cmd Command) {
	if len(cmd.Args) == 0 {
		s.reply(s.format.Notice("USER CANNOT BE NULL"))
		return
	}
	target := cmd.Args[0]

	peer, ok := s.reg.FindOne(func(c *Client) bool {
		return strings.EqualFold(c.name, target)
	})
	if !ok {
		s.reply(s.format.Notice(fmt.Sprintf("UNKNOWN USER - [%s]", target)))
		return
	}

	text := cmd.Payload(1)
	if text == "" {
		s.reply(s.format.Notice("MESSAGE CANNOT BE NULL"))
		return
	}

	// A private message crosses rooms: delivery is by id, not room.
	s.router.SendToClient(peer.ID(), s.format.PM(s.client.ID(), s.client.Room(), s.client.Name(), text))
}

func (s *session) handleWho() {
	all := s.reg.Snapshot(func(*Client) bool { return true })
	s.reply(s.format.WhoCount(len(all)))
	for _, info := range all {
		s.reply(s.format.WhoEntry(info.ID, info.Room, info.Name))
	}
}

func (s *session) handleMe(cmd Command) {
	text := cmd.Payload(0)
	if text == "" {
		s.reply(s.format.Notice("MESSAGE CANNOT BE NULL"))
		return
	}
	room := s.client.Room()
	s.router.BroadcastToRoom(room, s.format.Emote(s.client.ID(), s.client.Name(), text))
}

func (s *session) handleHelp() {
	for _, line := range s.format.Help(s.opts.EchoCommand) {
		s.reply(line)
	}
}

func (s *session) handleRoom(cmd Command) {
	if len(cmd.Args) == 0 {
		room := s.client.Room()
		members := s.reg.Snapshot(sameRoom(room))
		s.reply(s.format.RoomInfo(room, len(members)))
		for _, info := range members {
			s.reply(s.format.RoomEntry(info.ID, info.Name))
		}
		return
	}

	newRoom := truncate(cmd.Args[0], s.opts.MaxNameLen)
	oldRoom := s.reg.MoveRoom(s.client, newRoom)

	name := s.client.Name()
	s.router.BroadcastToRoom(oldRoom, s.format.MovedNotice(s.client.ID(), name, newRoom))
	s.router.BroadcastToRoom(newRoom, s.format.JoinRoomNotice(s.client.ID(), name))
}

func (s *session) handleMath(cmd Command) {
	expr := cmd.Payload(0)
	if expr == "" {
		s.reply(s.format.Notice("MATH MISSING EXPRESSION"))
		return
	}

	value, err := s.eval(expr)
	if err != nil {
		s.log.Debug().Err(err).Int("client_id", s.client.ID()).Msg("math evaluation failed")
		s.reply(s.format.Notice(fmt.Sprintf("MATH CANNOT EVALUATE - [%s]", expr)))
		return
	}
	s.reply(s.format.MathResult(expr, value))
}

func (s *session) handleEcho(cmd Command) {
	if len(cmd.Args) == 0 {
		s.reply(s.format.Notice("ECHO MUST BE ON OR OFF"))
		return
	}
	switch strings.ToLower(cmd.Args[0]) {
	case "on":
		s.reg.SetEcho(s.client, true)
	case "off":
		s.reg.SetEcho(s.client, false)
	default:
		s.reply(s.format.Notice("ECHO MUST BE ON OR OFF"))
	}
}

func (s *session) broadcastChat(text string) {
	room := s.client.Room()
	line := s.format.Chat(s.client.ID(), room, s.client.Name(), text)

	if s.opts.EchoCommand && !s.client.Echo() {
		s.router.BroadcastToRoomExcept(room, line, s.client.ID())
		return
	}
	s.router.BroadcastToRoom(room, line)
}
