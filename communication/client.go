package communication

import (
	"bufio"
	"fmt"
	"io"

	"onitama/game"
)

const maxLineSize = 1 << 20

// Client speaks the line protocol: one JSON message per line in each
// direction. Bots read states and write moves; the game master does the
// opposite.
type Client struct {
	scanner *bufio.Scanner
	writer  io.Writer
}

func NewClient(r io.Reader, w io.Writer) *Client {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Client{
		scanner: scanner,
		writer:  w,
	}
}

func (c *Client) ReadGameInfo() (game.Player, error) {
	message, err := c.readMessage()
	if err != nil {
		return game.NoPlayer, err
	}
	return DecodeGameInfo(message)
}

func (c *Client) ReadGameState(me game.Player) (game.GameState, error) {
	message, err := c.readMessage()
	if err != nil {
		return game.GameState{}, err
	}
	return DecodeGameState(message, me)
}

func (c *Client) WriteMove(move game.Move) error {
	line, err := EncodeMove(move)
	if err != nil {
		return err
	}
	return c.writeLine(line)
}

func (c *Client) ReadMove() (game.Move, error) {
	message, err := c.readMessage()
	if err != nil {
		return nil, err
	}
	return DecodeMove(message)
}

func (c *Client) WriteGameInfo(identity game.Player) error {
	line, err := EncodeGameInfo(identity)
	if err != nil {
		return err
	}
	return c.writeLine(line)
}

func (c *Client) WriteGameState(state game.GameState) error {
	line, err := EncodeGameState(state)
	if err != nil {
		return err
	}
	return c.writeLine(line)
}

func (c *Client) writeLine(line string) error {
	if _, err := fmt.Fprintln(c.writer, line); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// readMessage returns io.EOF once the input is exhausted.
func (c *Client) readMessage() (Message, error) {
	for c.scanner.Scan() {
		line := c.scanner.Text()
		if line == "" {
			continue
		}
		return DecodeMessage(line)
	}
	if err := c.scanner.Err(); err != nil {
		return Message{}, fmt.Errorf("failed to read message: %w", err)
	}
	return Message{}, io.EOF
}
