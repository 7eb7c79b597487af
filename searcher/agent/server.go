package agent

import (
	"errors"
	"io"
	"net/http"

	"onitama/communication"
	"onitama/game"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// FindMoveRequest is the body of POST /findmove. The state is in the
// server's wire format and Me names the owner of MyHand.
type FindMoveRequest struct {
	Me    game.Player    `json:"me"`
	State game.GameState `json:"state"`
}

// Serve starts an agent HTTP server on addr.
func Serve(addr string, agent Agent) error {
	log.Info().Msgf("starting agent server on %s...", addr)
	return http.ListenAndServe(addr, Handler(agent))
}

// Handler answers POST /findmove with a MovePiece or Pass message.
func Handler(agent Agent) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /findmove", func(w http.ResponseWriter, r *http.Request) {
		handleFindMove(agent, w, r)
	})
	return mux
}

func handleFindMove(agent Agent, w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	var payload FindMoveRequest
	if err := sonic.Unmarshal(body, &payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	payload.State.Me = payload.Me

	move, metric, err := agent.FindMove(payload.State)
	switch {
	case errors.Is(err, game.ErrMalformedState), errors.Is(err, ErrNotMyTurn):
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, "failed to find move: "+err.Error(), http.StatusInternalServerError)
		return
	}

	encoded, err := communication.EncodeMove(move)
	if err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
		return
	}
	log.Debug().Int("nodes", metric.Nodes).Dur("duration", metric.Duration).Msgf("answered with %v", move)

	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, encoded)
}
