package mock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viralforge/fantasymanager/internal/domain"
)

func TestGenerateShape(t *testing.T) {
	team := NewGenerator().Generate("m1")

	require.Len(t, team.Teams, 2)
	for _, info := range team.Teams {
		assert.NotEmpty(t, info.TeamID)
		assert.NotEmpty(t, info.Name)
		assert.GreaterOrEqual(t, info.NumberOfPlayers, 4)
		assert.LessOrEqual(t, info.NumberOfPlayers, 7)
		require.NotNil(t, info.TeamImageURL)
	}

	require.Len(t, team.Players, playersPerTeam)
	captains, vices := 0, 0
	for _, p := range team.Players {
		assert.NotEmpty(t, p.PlayerID)
		assert.Contains(t, playerNames, p.PlayerName)
		assert.Contains(t, []string{domain.PositionWicketKeeper, domain.PositionBatter, domain.PositionBowler, domain.PositionAllRounder}, p.Position)
		assert.Contains(t, []string{"t1", "t2"}, p.TeamID)
		require.NotNil(t, p.Credits)
		assert.InDelta(t, 9.5, *p.Credits, 1.5)
		require.NotNil(t, p.PointsEarned)
		assert.GreaterOrEqual(t, *p.PointsEarned, 50.0)
		assert.LessOrEqual(t, *p.PointsEarned, 150.0)
		if p.IsCaptain {
			captains++
		}
		if p.IsViceCaptain {
			vices++
		}
	}
	assert.Equal(t, 1, captains)
	assert.Equal(t, 1, vices)
}

func TestSeededGeneratorIsReproducible(t *testing.T) {
	a := NewSeededGenerator(7, 11).Generate("m1")
	b := NewSeededGenerator(7, 11).Generate("other-match")
	assert.Equal(t, a, b)
}

func TestGenerateIsSafeForConcurrentUse(t *testing.T) {
	gen := NewSeededGenerator(1, 1)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := gen.Generate("m1"); len(got.Players) != playersPerTeam {
					t.Errorf("unexpected player count %d", len(got.Players))
				}
			}
		}()
	}
	wg.Wait()
}
