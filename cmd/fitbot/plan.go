package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alfredoptarigan/career-fit/internal/models"
	"alfredoptarigan/career-fit/internal/services"
)

var planReq models.TripPlanRequest

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print a markdown trip plan",
	Example: `  fitbot plan --destination Paris --days 3 --budget 1000 --interests Culture,Food
  fitbot plan --budget-tips`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		planner := services.NewTripPlannerService(log)

		flags := cmd.Flags()
		switch {
		case flagSet(cmd, "budget-tips"):
			fmt.Print(planner.BudgetTips())
			return nil
		case flagSet(cmd, "checklist"):
			fmt.Print(planner.TravelChecklist())
			return nil
		case flagSet(cmd, "popular"):
			fmt.Print(planner.PopularDestinations())
			return nil
		}

		if ask, _ := flags.GetString("ask"); ask != "" {
			fmt.Print(planner.Reply(ask))
			return nil
		}

		if err := planReq.Validate(); err != nil {
			return fmt.Errorf("invalid trip request: %w", err)
		}

		fmt.Print(planner.Suggest(planReq.Destination, planReq.DurationDays, planReq.Budget, planReq.Interests))
		return nil
	},
}

func flagSet(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVar(&planReq.Destination, "destination", "", "where to go, e.g. Paris or Tokyo")
	planCmd.Flags().IntVar(&planReq.DurationDays, "days", 7, "trip duration in days (1-30)")
	planCmd.Flags().IntVar(&planReq.Budget, "budget", 1000, "budget in dollars")
	planCmd.Flags().StringSliceVar(&planReq.Interests, "interests", []string{"Culture", "Food"}, "interests: Adventure, Culture, Food, Relaxation, Nature, History, Shopping, Nightlife")
	planCmd.Flags().String("ask", "", "ask the travel assistant a free question")
	planCmd.Flags().Bool("budget-tips", false, "print budget travel tips")
	planCmd.Flags().Bool("checklist", false, "print the travel checklist")
	planCmd.Flags().Bool("popular", false, "print popular destinations")
}
