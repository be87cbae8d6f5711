package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"degen-prop/internal/models"
)

// addChallengeCommands adds the challenge catalog commands.
func addChallengeCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "Browse the challenge catalog",
		Long:  "List and inspect the available trading challenges.",
	}

	cmd.AddCommand(newChallengesListCmd(app))
	cmd.AddCommand(newChallengesShowCmd(app))

	rootCmd.AddCommand(cmd)
}

func newChallengesListCmd(app *App) *cobra.Command {
	var (
		searchTerm string
		platform   string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List challenges",
		Long:  "List catalog challenges, optionally filtered by search term or platform.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			challenges := app.Catalog.List(searchTerm, 0)
			if platform != "" {
				challenges = filterByPlatform(challenges, platform)
			}
			if limit > 0 && len(challenges) > limit {
				challenges = challenges[:limit]
			}

			if output.IsJSON() {
				return output.JSON(challenges)
			}

			if len(challenges) == 0 {
				output.Info("No challenges found for this filter.")
				output.Dim("Try a different platform or search term.")
				return nil
			}

			output.Bold("All Challenges")
			output.Println()
			table := NewTable(output, "ID", "Name", "Platform", "Capital", "Target", "Drawdown", "Days", "Fee", "Split")
			for _, ch := range challenges {
				table.AddRow(
					ch.ID,
					ch.Name,
					string(ch.Platform),
					FormatUSD(ch.InitialCapital),
					FormatPercent(ch.ProfitTargetPct),
					FormatPercent(-ch.MaxDrawdownPct),
					strconv.Itoa(ch.DurationDays),
					FormatUSD(ch.Fee),
					FormatPercent(ch.ProfitSplit),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&searchTerm, "search", "", "filter by name or platform substring")
	cmd.Flags().StringVar(&platform, "platform", "", "filter by platform")
	cmd.Flags().IntVar(&limit, "limit", 0, "limit the number of results")
	return cmd
}

func newChallengesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <challenge-id>",
		Short: "Show challenge details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			ch, err := app.Catalog.Get(args[0])
			if err != nil {
				output.Error("Challenge %q not found.", args[0])
				return err
			}

			if output.IsJSON() {
				return output.JSON(ch)
			}

			output.Bold("%s", ch.Name)
			output.Dim("%s", ch.Description)
			output.Println()
			output.Printf("  Platform:        %s\n", output.Cyan(string(ch.Platform)))
			output.Printf("  Initial Capital: %s\n", FormatUSD(ch.InitialCapital))
			output.Printf("  Profit Target:   %s\n", output.Green(FormatPercent(ch.ProfitTargetPct)))
			output.Printf("  Max Drawdown:    %s\n", output.Red(FormatPercent(-ch.MaxDrawdownPct)))
			output.Printf("  Duration:        %d days\n", ch.DurationDays)
			output.Printf("  Fee:             %s\n", FormatUSD(ch.Fee))
			output.Printf("  Profit Split:    %.0f%%\n", ch.ProfitSplit)
			output.Printf("  Leverage:        %s\n", ch.Leverage)
			output.Println()
			output.Dim("Start with: degenprop start %s", ch.ID)
			return nil
		},
	}
}

// filterByPlatform keeps challenges whose platform contains the given term,
// case-insensitive, as the challenges page does.
func filterByPlatform(challenges []models.ChallengeDefinition, platform string) []models.ChallengeDefinition {
	term := strings.ToLower(platform)
	var filtered []models.ChallengeDefinition
	for _, ch := range challenges {
		if strings.Contains(strings.ToLower(string(ch.Platform)), term) {
			filtered = append(filtered, ch)
		}
	}
	return filtered
}
