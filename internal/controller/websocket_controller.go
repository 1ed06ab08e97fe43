package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"

	"github.com/mkoster/rulebook-backend/internal/chess"
	"github.com/mkoster/rulebook-backend/internal/model"
	"github.com/mkoster/rulebook-backend/internal/service"
	"github.com/mkoster/rulebook-backend/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{gameService: gameService}
}

// HandleConnection runs the read loop for one established websocket.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Printf("register connection: %v", err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse message: %v", err)
			continue
		}
		if err := wsc.handleMessage(c, gameID, playerID, msg); err != nil {
			wsc.sendError(c, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

func (wsc *WebSocketController) handleMessage(c *websocket.Conn, gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var req model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, req)

	case ws.MessageTypeSelect:
		var from chess.Position
		if err := json.Unmarshal(msg.Payload, &from); err != nil {
			return err
		}
		moves, err := wsc.gameService.GetLegalMoves(gameID, playerID, from)
		if err != nil {
			return err
		}
		return wsc.sendLegalMoves(c, from, moves)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendLegalMoves(c *websocket.Conn, from chess.Position, moves []chess.Position) error {
	if moves == nil {
		moves = []chess.Position{}
	}
	payload, err := json.Marshal(struct {
		From  chess.Position   `json:"from"`
		Moves []chess.Position `json:"moves"`
	}{From: from, Moves: moves})
	if err != nil {
		return err
	}
	return c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeLegalMoves,
		Payload: json.RawMessage(payload),
	})
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, errorMsg string) {
	payload, err := json.Marshal(fiberErrorPayload{Error: errorMsg})
	if err != nil {
		return
	}
	c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: json.RawMessage(payload),
	})
}

type fiberErrorPayload struct {
	Error string `json:"error"`
}
