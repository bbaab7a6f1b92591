package mock

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/viralforge/fantasymanager/internal/domain"
)

const playersPerTeam = 11

var (
	playerNames = []string{"MS Dhoni", "Rohit Sharma", "Jasprit Bumrah"}
	positions   = []string{domain.PositionWicketKeeper, domain.PositionBatter, domain.PositionBowler, domain.PositionAllRounder}
	teams       = []struct{ id, name, image string }{
		{id: "t1", name: "Chennai Super Kings", image: "https://example.com/csk.png"},
		{id: "t2", name: "Mumbai Indians", image: "https://example.com/mi.png"},
	}
)

const playerImageURL = "https://example.com/player.png"

// Generator produces plausible-looking fantasy teams from a random source.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator seeds the generator from the clock.
func NewGenerator() *Generator {
	now := uint64(time.Now().UnixNano())
	return NewSeededGenerator(now, now>>32)
}

// NewSeededGenerator returns a generator with a reproducible sequence.
func NewSeededGenerator(seed1, seed2 uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed1, seed2))}
}

// Generate returns two real teams and eleven players. The match id does not
// influence the output.
func (g *Generator) Generate(_ string) domain.FantasyTeam {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := domain.FantasyTeam{
		Teams:   make([]domain.TeamInfo, 0, len(teams)),
		Players: make([]domain.PlayerInfo, 0, playersPerTeam),
	}
	for _, t := range teams {
		out.Teams = append(out.Teams, domain.TeamInfo{
			TeamID:          t.id,
			Name:            t.name,
			NumberOfPlayers: g.intBetween(4, 7),
			TeamImageURL:    ptr(t.image),
		})
	}
	for i := 1; i <= playersPerTeam; i++ {
		credits := math.Round((8+g.rnd.Float64()*3)*10) / 10
		points := float64(g.intBetween(50, 150))
		out.Players = append(out.Players, domain.PlayerInfo{
			PlayerID:       fmt.Sprintf("p%d", i),
			PlayerName:     playerNames[g.rnd.IntN(len(playerNames))],
			PlayerImageURL: ptr(playerImageURL),
			IsCaptain:      i == 1,
			IsViceCaptain:  i == 2,
			Credits:        &credits,
			PointsEarned:   &points,
			Position:       positions[g.rnd.IntN(len(positions))],
			TeamID:         teams[g.rnd.IntN(len(teams))].id,
		})
	}
	return out
}

// intBetween returns a value in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rnd.IntN(hi-lo+1)
}

func ptr[T any](v T) *T { return &v }
