package team

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout read by the seed command:
//
//	teams:
//	  - name: Lions
//	    players: [Alice, Amy, Ann]
type SeedFile struct {
	Teams []SeedTeam `yaml:"teams"`
}

type SeedTeam struct {
	Name    string   `yaml:"name"`
	Players []string `yaml:"players"`
}

// ParseSeed decodes and validates a seed file. Every team is checked before
// any is returned so a bad entry rejects the whole file.
func ParseSeed(r io.Reader) ([]Team, error) {
	var file SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("seed file is empty")
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	seen := make(map[string]bool, len(file.Teams))
	teams := make([]Team, 0, len(file.Teams))
	for i, st := range file.Teams {
		name := strings.TrimSpace(st.Name)
		if name == "" {
			return nil, fmt.Errorf("team #%d: name is required", i+1)
		}
		if seen[strings.ToLower(name)] {
			return nil, fmt.Errorf("team %q is listed twice", name)
		}
		seen[strings.ToLower(name)] = true

		players, problem := NormalizeRoster(st.Players)
		if problem != "" {
			return nil, fmt.Errorf("team %q: %s", name, problem)
		}
		teams = append(teams, Team{Name: name, Players: players})
	}
	return teams, nil
}

// Seed upserts teams in one transaction and reports how many were new.
func Seed(ctx context.Context, repo TeamRepository, teams []Team) (created, updated int, err error) {
	err = repo.WithTransaction(ctx, func(tx TeamRepository) error {
		created, updated = 0, 0
		for i := range teams {
			isNew, err := tx.UpsertTeam(ctx, &teams[i])
			if err != nil {
				return fmt.Errorf("upsert team %q: %w", teams[i].Name, err)
			}
			if isNew {
				created++
			} else {
				updated++
			}
		}
		return nil
	})
	return created, updated, err
}
