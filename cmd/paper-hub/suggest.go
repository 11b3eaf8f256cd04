package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-hub/internal/scholar"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <partial query...>",
	Short: "Suggest paper titles for a partial query (Semantic Scholar)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), searchDeadline)
		defer cancel()

		client := scholar.NewClient(scholarConfig())
		titles, err := client.Autocomplete(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		for _, t := range titles {
			fmt.Println(t)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
