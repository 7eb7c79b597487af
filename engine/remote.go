package engine

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"onitama/communication"
	"onitama/experiments/metrics"
	"onitama/game"
	"onitama/searcher/agent"

	"github.com/bytedance/sonic"
)

// RemoteAgent asks an agent server for moves.
type RemoteAgent struct {
	url    string
	client *http.Client
}

func NewRemoteAgent(url string, timeout time.Duration) *RemoteAgent {
	return &RemoteAgent{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// FindMove posts state to /findmove. Only the round trip time is measured.
func (a *RemoteAgent) FindMove(state game.GameState) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	body, err := sonic.Marshal(agent.FindMoveRequest{Me: state.Me, State: state})
	if err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := a.client.Post(a.url+"/findmove", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("failed to read agent response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, metrics.SearchMetric{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	message, err := communication.DecodeMessage(string(out))
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	move, err := communication.DecodeMove(message)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	return move, metrics.SearchMetric{Duration: time.Since(start)}, nil
}
