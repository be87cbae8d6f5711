package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"degen-prop/internal/metrics"
	"degen-prop/internal/models"
	"degen-prop/internal/store"
)

// newDashboardCmd renders the trader dashboard for the most recent active
// attempt of the current user.
func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your active challenge dashboard",
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
				output.Error("Please connect your wallet to view your dashboard.")
				return err
			}

			attempts, err := attemptStore.Filter(ctx, store.AttemptFilter{
				UserEmail: user.Email,
				Status:    models.StatusActive,
				SortKey:   "-created_date",
				Limit:     1,
			})
			if err != nil {
				output.Error("Failed to load attempts: %v", err)
				return err
			}

			if len(attempts) == 0 {
				if output.IsJSON() {
					return output.JSON(map[string]interface{}{"active_attempt": nil})
				}
				output.Bold("No Active Challenge")
				output.Println()
				output.Info("You don't have an active challenge yet.")
				output.Dim("Browse challenges:  degenprop challenges list")
				output.Dim("Start one:          degenprop start <challenge-id>")
				return nil
			}

			attempt := attempts[0]
			challenge, err := app.Catalog.Get(attempt.ChallengeID)
			if err != nil {
				output.Error("Challenge %q is no longer in the catalog.", attempt.ChallengeID)
				return err
			}

			snap := metrics.Compute(attempt, challenge, time.Now())

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"attempt": attempt,
					"metrics": map[string]interface{}{
						"profit_target_value":  snap.ProfitTargetValue,
						"drawdown_floor_value": snap.DrawdownFloorValue,
						"progress_percent":     snap.ProgressPercent,
						"days_remaining":       snap.DaysRemaining,
						"pnl_percent":          snap.PnLPercent,
						"outcome":              string(snap.Outcome),
					},
				})
			}

			renderDashboard(output, attempt, challenge, snap)
			return nil
		},
	}
}

func renderDashboard(output *Output, attempt models.AttemptRecord, challenge models.ChallengeDefinition, snap metrics.Snapshot) {
	output.Bold("%s", challenge.Name)
	output.Dim("%s on %s", attempt.ID, string(challenge.Platform))
	output.Println()

	output.Printf("  Current Balance   %s  (%s)\n",
		FormatUSD(attempt.CurrentBalance), output.FormatPercentColored(snap.PnLPercent))
	output.Printf("  Profit Target     %s  %s %.0f%%\n",
		FormatUSD(snap.ProfitTargetValue), ProgressBar(snap.ProgressPercent, 20), snap.ProgressPercent)
	output.Printf("  Drawdown Floor    %s\n", FormatUSD(snap.DrawdownFloorValue))
	output.Printf("  Days Remaining    %d of %d\n", snap.DaysRemaining, challenge.DurationDays)
	output.Println()

	if len(attempt.PnLHistory) > 0 {
		RenderEquityCurve(output, attempt.PnLHistory, 0, 0)
		output.Println()
	}

	output.Bold("Challenge Rules")
	output.Printf("  Profit Target   +%.0f%%\n", challenge.ProfitTargetPct)
	output.Printf("  Max Drawdown    -%.0f%%\n", challenge.MaxDrawdownPct)
	output.Printf("  Duration        %d days\n", challenge.DurationDays)
	output.Printf("  Leverage        %s\n", challenge.Leverage)
	output.Printf("  Profit Split    %.0f%%\n", challenge.ProfitSplit)
	output.Println()

	switch snap.Outcome {
	case metrics.OutcomePassed:
		output.Success("Target hit. Lock it in: degenprop attempts update %s --status passed", attempt.ID)
	case metrics.OutcomeFailed:
		output.Warning("Drawdown floor breached. Record it: degenprop attempts update %s --status failed", attempt.ID)
	default:
		output.Info("Keep grinding. %s to go until the target.",
			FormatUSD(snap.ProfitTargetValue-attempt.CurrentBalance))
	}
}

// newHomeCmd prints the landing view with the featured challenges.
func newHomeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the DegenProp landing view",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			featured := app.Catalog.List("", 3)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{"featured": featured})
			}

			output.Bold("DegenProp")
			output.Println("  Trade our capital. Keep the profits.")
			output.Println()
			output.Println("  Prove your edge on a funded crypto challenge. Hit the profit")
			output.Println("  target without breaching the drawdown floor and get paid.")
			output.Println()

			output.Bold("Featured Challenges")
			for _, c := range featured {
				output.Printf("  [%s] %s  (%s)\n", c.ID, c.Name, string(c.Platform))
				output.Printf("       %s capital, +%.0f%% target, %d days, %s fee\n",
					FormatUSD(c.InitialCapital), c.ProfitTargetPct, c.DurationDays, FormatUSD(c.Fee))
			}
			output.Println()
			output.Dim("All challenges:  degenprop challenges list")
			return nil
		},
	}
}

// newWhoamiCmd prints the current user.
func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			user, err := app.Identity.CurrentUser()
			if err != nil {
				output.Error("Not signed in. Set user.email in your config file.")
				return err
			}

			if output.IsJSON() {
				return output.JSON(user)
			}

			output.Printf("%s <%s>\n", user.Name, user.Email)
			if user.WalletAddress != "" {
				output.Dim("wallet: %s", user.WalletAddress)
			}
			return nil
		},
	}
}
