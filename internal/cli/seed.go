package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/DhavalSuthar-24/livescore/internal/team"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newSeedCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Register teams and rosters from a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			return seedTeams(cmd.Context(), db, file, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with a top-level teams list")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func seedTeams(ctx context.Context, db *gorm.DB, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	teams, err := team.ParseSeed(f)
	if err != nil {
		return err
	}
	created, updated, err := team.Seed(ctx, team.NewTeamRepository(db), teams)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Seeded %d teams (%d new, %d updated)\n", len(teams), created, updated)
	return nil
}
