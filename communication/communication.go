package communication

import (
	"errors"
	"fmt"

	"onitama/game"

	"github.com/bytedance/sonic"
)

var ErrUnexpectedMessage = errors.New("unexpected message")

type MessageType int

const (
	GameInfoMessage MessageType = iota
	NewGameStateMessage
	MovePieceMessage
	PassMessage
)

var messageTypeNames = map[MessageType]string{
	GameInfoMessage:     "GameInfo",
	NewGameStateMessage: "NewGameState",
	MovePieceMessage:    "MovePiece",
	PassMessage:         "Pass",
}

func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MessageType(%d)", int(t))
}

func (t MessageType) MarshalText() ([]byte, error) {
	name, ok := messageTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown message type %d", int(t))
	}
	return []byte(name), nil
}

func (t *MessageType) UnmarshalText(text []byte) error {
	for messageType, name := range messageTypeNames {
		if name == string(text) {
			*t = messageType
			return nil
		}
	}
	return fmt.Errorf("unknown message type %q", text)
}

// Message is one line of the protocol. The payload is itself JSON encoded.
type Message struct {
	Type        MessageType `json:"Type"`
	JsonPayload string      `json:"JsonPayload"`
}

type GameInfo struct {
	Identity game.Player `json:"Identity"`
}

func DecodeMessage(line string) (Message, error) {
	var message Message
	if err := sonic.UnmarshalString(line, &message); err != nil {
		return Message{}, fmt.Errorf("failed to decode message: %w", err)
	}
	return message, nil
}

func DecodeGameInfo(message Message) (game.Player, error) {
	if message.Type != GameInfoMessage {
		return game.NoPlayer, fmt.Errorf("%w: expected %s, received %s", ErrUnexpectedMessage, GameInfoMessage, message.Type)
	}
	var info GameInfo
	if err := sonic.UnmarshalString(message.JsonPayload, &info); err != nil {
		return game.NoPlayer, fmt.Errorf("failed to decode game info: %w", err)
	}
	if !info.Identity.Valid() {
		return game.NoPlayer, fmt.Errorf("%w: game info without identity", ErrUnexpectedMessage)
	}
	return info.Identity, nil
}

// DecodeGameState decodes a state sent to me. The wire format does not
// carry the owner of MyHand, so it is set from the handshake.
func DecodeGameState(message Message, me game.Player) (game.GameState, error) {
	if message.Type != NewGameStateMessage {
		return game.GameState{}, fmt.Errorf("%w: expected %s, received %s", ErrUnexpectedMessage, NewGameStateMessage, message.Type)
	}
	var state game.GameState
	if err := sonic.UnmarshalString(message.JsonPayload, &state); err != nil {
		return game.GameState{}, fmt.Errorf("failed to decode game state: %w", err)
	}
	state.Me = me
	return state, nil
}

func DecodeMove(message Message) (game.Move, error) {
	switch message.Type {
	case MovePieceMessage:
		var play game.Play
		if err := sonic.UnmarshalString(message.JsonPayload, &play); err != nil {
			return nil, fmt.Errorf("failed to decode play: %w", err)
		}
		return play, nil
	case PassMessage:
		var pass game.Pass
		if err := sonic.UnmarshalString(message.JsonPayload, &pass); err != nil {
			return nil, fmt.Errorf("failed to decode pass: %w", err)
		}
		return pass, nil
	default:
		return nil, fmt.Errorf("%w: expected a move, received %s", ErrUnexpectedMessage, message.Type)
	}
}

func EncodeMove(move game.Move) (string, error) {
	var messageType MessageType
	switch move.(type) {
	case game.Play:
		messageType = MovePieceMessage
	case game.Pass:
		messageType = PassMessage
	default:
		panic("unexpected move type")
	}
	return encode(messageType, move)
}

func EncodeGameInfo(identity game.Player) (string, error) {
	return encode(GameInfoMessage, GameInfo{Identity: identity})
}

func EncodeGameState(state game.GameState) (string, error) {
	return encode(NewGameStateMessage, state)
}

func encode(messageType MessageType, payload any) (string, error) {
	body, err := sonic.MarshalString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s payload: %w", messageType, err)
	}
	line, err := sonic.MarshalString(Message{Type: messageType, JsonPayload: body})
	if err != nil {
		return "", fmt.Errorf("failed to encode %s message: %w", messageType, err)
	}
	return line, nil
}
