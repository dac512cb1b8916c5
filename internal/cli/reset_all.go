package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newResetAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-all",
		Short: "Reset every stored match, keeping each toss decision",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			return resetAll(cmd.Context(), cfg, db, cmd.OutOrStdout())
		},
	}
}

// resetAll runs outside the server, so nobody is subscribed to the snapshots.
func resetAll(ctx context.Context, cfg *config.Config, db *gorm.DB, out io.Writer) error {
	reset, err := newMatchService(cfg, db, nil).ResetAllMatches(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Reset %d matches\n", len(reset))
	return nil
}
