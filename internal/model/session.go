package model

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/mkoster/rulebook-backend/internal/chess"
	"github.com/mkoster/rulebook-backend/internal/ws"
)

const initialClockTime = 10 * time.Minute

// sessionConnections tracks the websocket connections observing one game.
type sessionConnections struct {
	conns map[string]*websocket.Conn // playerID -> connection
	mu    sync.RWMutex
}

// Session is one live game: the current immutable engine snapshot, the
// seated players, their clocks, and the observers to broadcast to. All
// rule questions are delegated to the rulebook; the session only swaps
// one snapshot for the next.
type Session struct {
	ID string

	mu       sync.Mutex
	rulebook chess.StandardRulebook
	game     chess.ChessGame
	status   chess.Status
	lastMove *MoveState
	players  struct {
		White SeatedPlayer
		Black SeatedPlayer
	}
	connections *sessionConnections
	whiteClock  *Clock
	blackClock  *Clock
}

func NewSession(id string, variant Variant) *Session {
	rb := chess.NewStandardRulebook()
	game := rb.CreateGame()
	if variant == VariantChess960 {
		game = rb.Create960Game()
	}
	return &Session{
		ID:          id,
		rulebook:    rb,
		game:        game,
		status:      chess.Status{Outcome: chess.Ongoing},
		connections: &sessionConnections{conns: make(map[string]*websocket.Conn)},
		whiteClock:  NewClock(initialClockTime),
		blackClock:  NewClock(initialClockTime),
	}
}

// AddPlayer seats playerID on the first free side and returns its color.
func (s *Session) AddPlayer(playerID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.players.White.ID == "" {
		s.players.White = SeatedPlayer{ID: playerID, Color: chess.White.String(), TimeLeft: clockUnits(initialClockTime)}
		return s.players.White.Color, nil
	}
	if s.players.Black.ID == "" {
		s.players.Black = SeatedPlayer{ID: playerID, Color: chess.Black.String(), TimeLeft: clockUnits(initialClockTime)}
		return s.players.Black.Color, nil
	}
	return "", errors.New("game is full")
}

func (s *Session) IsPlayerInGame(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isPlayerInGame(playerID)
}

func (s *Session) isPlayerInGame(playerID string) bool {
	return (s.players.White.ID != "" && s.players.White.ID == playerID) ||
		(s.players.Black.ID != "" && s.players.Black.ID == playerID)
}

func (s *Session) CanSpectate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canSpectate()
}

func (s *Session) canSpectate() bool {
	return s.players.White.ID == "" || s.players.Black.ID == ""
}

func (s *Session) colorOf(playerID string) (chess.Color, bool) {
	switch playerID {
	case "":
		return chess.White, false
	case s.players.White.ID:
		return chess.White, true
	case s.players.Black.ID:
		return chess.Black, true
	}
	return chess.White, false
}

// MakeMove validates req against the rulebook's legal updates and, when
// one matches, adopts its resulting game as the session's new snapshot.
func (s *Session) MakeMove(playerID string, req MoveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Outcome != chess.Ongoing {
		return errors.New("game is over")
	}
	color, ok := s.colorOf(playerID)
	if !ok {
		return errors.New("player not seated in this game")
	}
	if color != s.game.Active {
		return errors.New("not your turn")
	}

	chosen, ok := s.matchUpdate(req)
	if !ok {
		return errors.New("illegal move")
	}

	s.clockFor(color).Stop()
	s.game = chosen.Game
	s.status = s.rulebook.GetStatus(s.game)
	s.lastMove = &MoveState{From: req.From, To: req.To}
	if s.status.Outcome == chess.Ongoing {
		s.clockFor(s.game.Active).Start()
	}
	s.players.White.TimeLeft = clockUnits(s.whiteClock.TimeLeft())
	s.players.Black.TimeLeft = clockUnits(s.blackClock.TimeLeft())

	go s.broadcastState()
	return nil
}

func (s *Session) matchUpdate(req MoveRequest) (chess.Update, bool) {
	promotion := req.Promotion
	if promotion == "" {
		promotion = chess.Queen.String()
	}
	for _, u := range s.rulebook.GetUpdates(s.game, req.From) {
		if u.Destination() != req.To {
			continue
		}
		if pt, isPromotion := u.Promotion(); isPromotion && pt.String() != promotion {
			continue
		}
		return u, true
	}
	return chess.Update{}, false
}

// LegalDestinations lists the distinct squares the active player's piece
// at from may move to. Empty when it is not playerID's turn.
func (s *Session) LegalDestinations(playerID string, from chess.Position) []chess.Position {
	s.mu.Lock()
	defer s.mu.Unlock()

	if color, ok := s.colorOf(playerID); !ok || color != s.game.Active {
		return nil
	}
	seen := map[chess.Position]bool{}
	var dests []chess.Position
	for _, u := range s.rulebook.GetUpdates(s.game, from) {
		dest := u.Destination()
		if !seen[dest] {
			seen[dest] = true
			dests = append(dests, dest)
		}
	}
	return dests
}

func (s *Session) clockFor(c chess.Color) *Clock {
	if c == chess.White {
		return s.whiteClock
	}
	return s.blackClock
}

func clockUnits(d time.Duration) int {
	return int(d.Milliseconds() / 100)
}

// State snapshots the session for clients.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *Session) state() SessionState {
	st := SessionState{
		Board:    snapshotBoard(s.game.Board),
		ToMove:   s.game.Active.String(),
		Status:   s.status.Outcome.String(),
		IsCheck:  s.rulebook.InCheck(s.game),
		LastMove: s.lastMove,
	}
	if s.status.Outcome == chess.Checkmate {
		st.Loser = s.status.Loser.String()
	}
	st.Players.White = s.players.White
	st.Players.Black = s.players.Black
	return st
}

// RegisterConnection attaches a websocket to this game. Players and, while
// a seat is empty, spectators are accepted; a second connection for the
// same player is rejected in favor of the existing one.
func (s *Session) RegisterConnection(playerID string, conn *websocket.Conn) error {
	s.mu.Lock()
	authorized := s.isPlayerInGame(playerID) || s.canSpectate()
	s.mu.Unlock()

	if !authorized {
		return errors.New("not authorized to join this game")
	}

	s.connections.mu.Lock()
	if _, exists := s.connections.conns[playerID]; exists {
		s.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	s.connections.conns[playerID] = conn
	s.connections.mu.Unlock()

	go s.broadcastState()
	return nil
}

func (s *Session) UnregisterConnection(playerID string) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	delete(s.connections.conns, playerID)
}

func (s *Session) broadcastState() {
	s.mu.Lock()
	state := s.state()
	s.mu.Unlock()

	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("marshal game state: %v", err)
		return
	}

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	for playerID, conn := range s.connections.conns {
		err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		})
		if err != nil {
			log.Printf("send state to %s: %v", playerID, err)
			delete(s.connections.conns, playerID)
		}
	}
}
