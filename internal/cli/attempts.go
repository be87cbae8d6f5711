package cli

import (
	"context"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"degen-prop/internal/errors"
	"degen-prop/internal/metrics"
	"degen-prop/internal/models"
	"degen-prop/internal/store"
)

// addAttemptCommands adds the attempt management commands.
func addAttemptCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "attempts",
		Short: "Manage challenge attempts",
		Long:  "List, inspect, update, and export your challenge attempts.",
	}

	cmd.AddCommand(newAttemptsListCmd(app))
	cmd.AddCommand(newAttemptsShowCmd(app))
	cmd.AddCommand(newAttemptsUpdateCmd(app))
	cmd.AddCommand(newAttemptsExportCmd(app))

	rootCmd.AddCommand(cmd)
}

func newAttemptsListCmd(app *App) *cobra.Command {
	var (
		status      string
		challengeID string
		allUsers    bool
		sortKey     string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			attemptStore, err := app.requireStore()
			if err != nil {
				output.Error("%v", err)
				return err
			}

			filter := store.AttemptFilter{
				Status:      models.AttemptStatus(status),
				ChallengeID: challengeID,
				SortKey:     sortKey,
				Limit:       limit,
			}
			if !allUsers {
				user, err := app.Identity.CurrentUser()
				if err != nil {
					output.Error("Please connect your wallet to list your attempts.")
					return err
				}
				filter.UserEmail = user.Email
			}

			attempts, err := attemptStore.Filter(ctx, filter)
			if err != nil {
				output.Error("Failed to list attempts: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(attempts)
			}

			if len(attempts) == 0 {
				output.Info("No attempts found.")
				output.Dim("Start one with: degenprop start <challenge-id>")
				return nil
			}

			table := NewTable(output, "ID", "Challenge", "Status", "Balance", "PnL", "Started", "Ends")
			for _, a := range attempts {
				table.AddRow(
					a.ID,
					TruncateString(a.ChallengeName, 24),
					string(a.Status),
					FormatUSD(a.CurrentBalance),
					output.FormatPercentColored(metrics.PnLPercent(a)),
					FormatDate(a.StartDate),
					FormatDate(a.EndDate),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (active, passed, failed)")
	cmd.Flags().StringVar(&challengeID, "challenge", "", "filter by challenge id")
	cmd.Flags().BoolVar(&allUsers, "all-users", false, "include attempts from all users")
	cmd.Flags().StringVar(&sortKey, "sort", "-created_date", "sort key; prefix with - for descending")
	cmd.Flags().IntVar(&limit, "limit", 0, "limit the number of results")
	return cmd
}

func newAttemptsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <attempt-id>",
		Short: "Show attempt details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			attemptStore, err := app.requireStore()
			if err != nil {
				output.Error("%v", err)
				return err
			}

			attempt, err := attemptStore.Get(ctx, args[0])
			if err != nil {
				if errors.Is(err, errors.ErrNotFound) {
					output.Error("Attempt %q not found.", args[0])
				}
				return err
			}

			if output.IsJSON() {
				return output.JSON(attempt)
			}

			printAttempt(output, app, attempt)
			return nil
		},
	}
}

func newAttemptsUpdateCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "update <attempt-id>",
		Short: "Update an attempt",
		Long: `Update fields on a stored attempt.

The computed pass/fail outcome is never written back automatically; use this
command to persist a final status deliberately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			attemptStore, err := app.requireStore()
			if err != nil {
				output.Error("%v", err)
				return err
			}

			if status == "" {
				output.Error("Nothing to update. Pass --status.")
				return errors.NewValidationError("status", status, "must not be empty")
			}

			newStatus := models.AttemptStatus(status)
			attempt, err := attemptStore.Update(ctx, args[0], models.AttemptUpdate{Status: &newStatus})
			if err != nil {
				if errors.Is(err, errors.ErrNotFound) {
					output.Error("Attempt %q not found.", args[0])
				}
				return err
			}

			if output.IsJSON() {
				return output.JSON(attempt)
			}
			output.Success("Attempt %s updated: status=%s", attempt.ID, attempt.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "new status (active, passed, failed)")
	return cmd
}

// attemptCSVRow flattens an attempt for CSV export.
type attemptCSVRow struct {
	ID             string  `csv:"id"`
	UserEmail      string  `csv:"user_email"`
	ChallengeID    string  `csv:"challenge_id"`
	ChallengeName  string  `csv:"challenge_name"`
	Status         string  `csv:"status"`
	StartDate      string  `csv:"start_date"`
	EndDate        string  `csv:"end_date"`
	InitialCapital float64 `csv:"initial_capital"`
	CurrentBalance float64 `csv:"current_balance"`
	EquityHigh     float64 `csv:"equity_high"`
	PnLPercent     float64 `csv:"pnl_percent"`
	CreatedDate    string  `csv:"created_date"`
}

func newAttemptsExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export attempts to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			attemptStore, err := app.requireStore()
			if err != nil {
				output.Error("%v", err)
				return err
			}

			attempts, err := attemptStore.Filter(ctx, store.AttemptFilter{SortKey: "created_date"})
			if err != nil {
				output.Error("Failed to load attempts: %v", err)
				return err
			}

			rows := make([]attemptCSVRow, 0, len(attempts))
			for _, a := range attempts {
				rows = append(rows, attemptCSVRow{
					ID:             a.ID,
					UserEmail:      a.UserEmail,
					ChallengeID:    a.ChallengeID,
					ChallengeName:  a.ChallengeName,
					Status:         string(a.Status),
					StartDate:      a.StartDate.Format(time.RFC3339),
					EndDate:        a.EndDate.Format(time.RFC3339),
					InitialCapital: a.InitialCapital,
					CurrentBalance: a.CurrentBalance,
					EquityHigh:     a.EquityHigh,
					PnLPercent:     metrics.PnLPercent(a),
					CreatedDate:    a.CreatedDate.Format(time.RFC3339),
				})
			}

			file, err := os.Create(outPath)
			if err != nil {
				output.Error("Failed to create %s: %v", outPath, err)
				return err
			}
			defer file.Close()

			if err := gocsv.MarshalFile(&rows, file); err != nil {
				output.Error("Failed to write CSV: %v", err)
				return err
			}

			output.Success("Exported %d attempts to %s", len(rows), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "attempts.csv", "output file path")
	return cmd
}

// printAttempt renders an attempt detail view, including derived metrics when
// the challenge is still in the catalog.
func printAttempt(output *Output, app *App, attempt models.AttemptRecord) {
	output.Bold("Attempt %s", attempt.ID)
	output.Printf("  Challenge:       %s (%s)\n", attempt.ChallengeName, attempt.ChallengeID)
	output.Printf("  User:            %s\n", attempt.UserEmail)
	output.Printf("  Status:          %s\n", attempt.Status)
	output.Printf("  Started:         %s\n", FormatDateTime(attempt.StartDate))
	output.Printf("  Ends:            %s\n", FormatDateTime(attempt.EndDate))
	output.Printf("  Initial Capital: %s\n", FormatUSD(attempt.InitialCapital))
	output.Printf("  Current Balance: %s\n", FormatUSD(attempt.CurrentBalance))
	output.Printf("  Equity High:     %s\n", FormatUSD(attempt.EquityHigh))
	output.Printf("  PnL:             %s\n", output.FormatPercentColored(metrics.PnLPercent(attempt)))

	challenge, err := app.Catalog.Get(attempt.ChallengeID)
	if err == nil {
		snap := metrics.Compute(attempt, challenge, time.Now())
		output.Printf("  Outcome:         %s\n", string(snap.Outcome))
		output.Printf("  Progress:        %s %.0f%%\n", ProgressBar(snap.ProgressPercent, 20), snap.ProgressPercent)
	}

	if len(attempt.PnLHistory) > 0 {
		output.Println()
		RenderEquityCurve(output, attempt.PnLHistory, 0, 0)
	}
}
