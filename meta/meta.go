// meta/meta.go
package meta

import "time"

// DefaultDepth is the number of plies searched per move.
const DefaultDepth = 4

// MaxTurns caps the length of locally hosted games.
const MaxTurns = 300

// NumGames is the number of games per experiment matchup.
const NumGames = 10

// DefaultAddr is where the agent server listens.
const DefaultAddr = ":8080"

// RemoteTimeout bounds a request to a remote agent.
const RemoteTimeout = 30 * time.Second
