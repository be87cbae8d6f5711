package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"degen-prop/internal/errors"
	"degen-prop/internal/logging"
	"degen-prop/internal/store"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start <challenge-id>",
		Short: "Start a challenge",
		Long: `Start a new attempt at the given challenge.

Generates a simulated trading run against the challenge's rules and records
it as your active attempt.`,
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

			user, err := app.Identity.CurrentUser()
			if err != nil {
				if errors.Is(err, errors.ErrNotAuthenticated) {
					output.Error("Please connect your wallet to start a challenge.")
					return err
				}
				return err
			}

			challenge, err := app.Catalog.Get(args[0])
			if err != nil {
				output.Error("Challenge %q not found. See 'degenprop challenges list'.", args[0])
				return err
			}

			logger := logging.WithChallenge(app.Logger, challenge.ID)
			logger.Debug().Str("user_email", user.Email).Msg("Starting challenge attempt")

			startDate := time.Now().UTC()
			endDate := startDate.AddDate(0, 0, challenge.DurationDays)
			result := app.Simulator.Simulate(challenge)

			attempt, err := attemptStore.Create(ctx, store.CreateAttemptParams{
				UserEmail:      user.Email,
				ChallengeID:    challenge.ID,
				ChallengeName:  challenge.Name,
				StartDate:      startDate,
				EndDate:        endDate,
				InitialCapital: challenge.InitialCapital,
				CurrentBalance: result.FinalBalance,
				EquityHigh:     result.EquityHigh,
				PnLHistory:     result.History,
			})
			if err != nil {
				output.Error("Failed to start challenge: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(attempt)
			}

			output.Success("Challenge started: %s", challenge.Name)
			output.Println()
			output.Printf("  Attempt ID:      %s\n", attempt.ID)
			output.Printf("  Initial Capital: %s\n", FormatUSD(attempt.InitialCapital))
			output.Printf("  Current Balance: %s\n", FormatUSD(attempt.CurrentBalance))
			output.Printf("  Equity High:     %s\n", FormatUSD(attempt.EquityHigh))
			output.Printf("  Ends:            %s\n", FormatDate(attempt.EndDate))
			output.Println()
			output.Dim("View your progress with: degenprop dashboard")
			return nil
		},
	}
}
