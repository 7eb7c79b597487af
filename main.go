package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"onitama/communication"
	"onitama/engine"
	"onitama/experiments"
	"onitama/game"
	"onitama/gamemaster"
	"onitama/meta"
	"onitama/player"
	"onitama/searcher"
	"onitama/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	mode := flag.String("mode", "bot", "One of bot, serve, match, host or experiment")
	depth := flag.Int("depth", meta.DefaultDepth, "Search depth in plies")
	addr := flag.String("addr", meta.DefaultAddr, "Listen address of the agent server")
	player1 := flag.String("player1", "minimax", "Player1 in a match or hosted game: minimax, random or an agent server URL")
	player2 := flag.String("player2", "random", "Player2 in a match or hosted game: minimax, random or an agent server URL")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for dealing and random agents")
	experiment := flag.String("experiment", "depth", "Experiment to run: depth, baseline or throughput")
	games := flag.Int("games", meta.NumGames, "Games per experiment matchup")
	out := flag.String("out", "results", "Directory for experiment records")
	verbose := flag.Bool("v", false, "Log debug messages")
	flag.Parse()

	// Stdout carries the bot protocol
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch *mode {
	case "bot":
		bot := player.NewBot(communication.NewClient(os.Stdin, os.Stdout), agent.NewMinimaxAgent(searcher.NewMinimax(*depth)))
		err = bot.Run()
	case "serve":
		err = agent.Serve(*addr, agent.NewMinimaxAgent(searcher.NewMinimax(*depth, searcher.WithMetrics())))
	case "match":
		err = runMatch(*player1, *player2, *depth, *seed)
	case "host":
		err = runHost(*player1, *player2, *depth, *seed)
	case "experiment":
		err = runExperiment(*experiment, *out, *games)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s stopped", *mode)
	}
}

func runMatch(player1, player2 string, depth int, seed uint64) error {
	agents := []agent.Agent{newAgent(player1, depth, seed), newAgent(player2, depth, seed+1)}
	e, err := engine.LocalEngine(agents, engine.NewGame(rand.New(rand.NewSource(seed))))
	if err != nil {
		return err
	}

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}
	if winner == "" {
		winner = "nobody"
	}
	log.Info().Str("game", gameMetric.ID).Int("moves", gameMetric.TotalMoves).Dur("duration", gameMetric.Duration).
		Msgf("%s started, %s won", gameMetric.StartingPlayer, winner)
	return nil
}

// runHost plays one game between two in-process bots over the line protocol.
func runHost(player1, player2 string, depth int, seed uint64) error {
	referee, err := gamemaster.NewReferee(engine.NewGame(rand.New(rand.NewSource(seed))))
	if err != nil {
		return err
	}
	seat1, done1 := gamemaster.Connect(newAgent(player1, depth, seed))
	seat2, done2 := gamemaster.Connect(newAgent(player2, depth, seed+1))

	winner, err := gamemaster.NewGameMaster(referee, seat1, seat2, meta.MaxTurns).RunGame()
	for p, done := range map[string]<-chan error{"player1": done1, "player2": done2} {
		if botErr := <-done; botErr != nil {
			log.Warn().Err(botErr).Msgf("%s bot stopped", p)
		}
	}
	if err != nil {
		return err
	}

	name := "nobody"
	if winner != game.NoPlayer {
		name = winner.String()
	}
	log.Info().Int("moves", len(referee.Moves())).Msgf("%s won", name)
	return nil
}

func newAgent(kind string, depth int, seed uint64) agent.Agent {
	switch {
	case kind == "minimax":
		return agent.NewMinimaxAgent(searcher.NewMinimax(depth, searcher.WithMetrics()))
	case kind == "random":
		return agent.NewRandomAgent(seed)
	case strings.HasPrefix(kind, "http://"), strings.HasPrefix(kind, "https://"):
		return engine.NewRemoteAgent(strings.TrimSuffix(kind, "/"), meta.RemoteTimeout)
	default:
		log.Fatal().Msgf("unknown agent %q", kind)
		return nil
	}
}

func runExperiment(name, out string, games int) error {
	var err error
	switch name {
	case "depth":
		_, err = experiments.RunDepthExperiment(out, games)
	case "baseline":
		_, err = experiments.RunBaselineExperiment(out, games)
	case "throughput":
		_, err = experiments.RunThroughputExperiment(out, games)
	default:
		err = fmt.Errorf("unknown experiment %q", name)
	}
	return err
}

