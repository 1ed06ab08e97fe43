package service

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/mkoster/rulebook-backend/internal/chess"
	"github.com/mkoster/rulebook-backend/internal/model"
)

// GameManager owns every live session plus the matchmaking queue and the
// per-player channels waiting on it.
type GameManager struct {
	sessions         map[string]*model.Session
	queue            *model.Queue
	matchingChannels map[string]chan string
	mu               sync.RWMutex
}

func NewGameManager() *GameManager {
	gm := &GameManager{
		sessions:         make(map[string]*model.Session),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan string),
	}

	go gm.processMatchmaking()

	return gm
}

// processMatchmaking pairs the two longest-waiting players into a fresh
// standard game once a second and notifies them over their registered
// channels.
func (gm *GameManager) processMatchmaking() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		player1, player2, ok := gm.queue.NextPair()
		if !ok {
			continue
		}

		gameID := uuid.New().String()
		session := model.NewSession(gameID, model.VariantStandard)

		p1Color, err := session.AddPlayer(player1.ID)
		if err != nil {
			log.Printf("seat player %s: %v", player1.ID, err)
			continue
		}
		p2Color, err := session.AddPlayer(player2.ID)
		if err != nil {
			log.Printf("seat player %s: %v", player2.ID, err)
			continue
		}

		gm.mu.Lock()
		gm.sessions[gameID] = session
		gm.notifyMatch(player1.ID, model.MatchFoundEvent{GameID: gameID, Color: p1Color})
		gm.notifyMatch(player2.ID, model.MatchFoundEvent{GameID: gameID, Color: p2Color})
		gm.mu.Unlock()
	}
}

// notifyMatch sends the event to the player's channel, if one is
// registered and able to receive, and retires the channel. Callers hold
// gm.mu.
func (gm *GameManager) notifyMatch(playerID string, event model.MatchFoundEvent) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal match event: %v", err)
		return
	}
	select {
	case ch <- string(payload):
		delete(gm.matchingChannels, playerID)
		close(ch)
	default:
		log.Printf("match event for %s not deliverable", playerID)
	}
}

func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existing, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}
	gm.matchingChannels[playerID] = ch
	return nil
}

func (gm *GameManager) UnregisterMatchmakingChannel(playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	// The channel is closed by its creator, not here; it may still be
	// read from.
	delete(gm.matchingChannels, playerID)
}

func (gm *GameManager) CreateGame(gameID string, variant model.Variant) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.sessions[gameID]; exists {
		return errors.New("game already exists")
	}
	gm.sessions[gameID] = model.NewSession(gameID, variant)
	return nil
}

func (gm *GameManager) getSession(gameID string) (*model.Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.sessions[gameID]
	if !exists {
		return nil, errors.New("game not found")
	}
	return session, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (string, error) {
	session, err := gm.getSession(gameID)
	if err != nil {
		return "", err
	}
	return session.AddPlayer(playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(model.Player{ID: playerID})
}

func (gm *GameManager) GetGameState(gameID string) (model.SessionState, error) {
	session, err := gm.getSession(gameID)
	if err != nil {
		return model.SessionState{}, err
	}
	return session.State(), nil
}

func (gm *GameManager) GetLegalMoves(gameID string, playerID string, from chess.Position) ([]chess.Position, error) {
	session, err := gm.getSession(gameID)
	if err != nil {
		return nil, err
	}
	return session.LegalDestinations(playerID, from), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, req model.MoveRequest) error {
	session, err := gm.getSession(gameID)
	if err != nil {
		return err
	}
	return session.MakeMove(playerID, req)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	session, err := gm.getSession(gameID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	session, err := gm.getSession(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(playerID)
}
