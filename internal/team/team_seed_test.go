package team

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
teams:
  - name: Lions
    players: [Alice, " Amy ", Ann]
  - name: Tigers
    players:
      - Bob
      - Ben
`

func TestParseSeed(t *testing.T) {
	teams, err := ParseSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)

	require.Len(t, teams, 2)
	assert.Equal(t, "Lions", teams[0].Name)
	assert.Equal(t, []string{"Alice", "Amy", "Ann"}, []string(teams[0].Players))
	assert.Equal(t, []string{"Bob", "Ben"}, []string(teams[1].Players))
}

func TestParseSeed_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", "", "seed file is empty"},
		{"unknown key", "teams:\n  - name: Lions\n    squad: [A, B]\n", "decode seed file"},
		{"missing name", "teams:\n  - players: [A, B]\n", "team #1: name is required"},
		{"duplicate team", "teams:\n  - {name: Lions, players: [A, B]}\n  - {name: lions, players: [C, D]}\n", `team "lions" is listed twice`},
		{"short roster", "teams:\n  - {name: Lions, players: [A]}\n", "a team needs at least two players"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed(strings.NewReader(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestSeed_IsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	teams, err := ParseSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)

	created, updated, err := Seed(ctx, repo, teams)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Zero(t, updated)

	again, err := ParseSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)
	created, updated, err = Seed(ctx, repo, again)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Equal(t, 2, updated)

	_, total, err := repo.GetAllTeams(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
