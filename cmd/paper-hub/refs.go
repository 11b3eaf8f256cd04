package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-hub/internal/scholar"
	"github.com/pdiddy/paper-hub/pkg/types"
)

var citationsCmd = &cobra.Command{
	Use:   "citations <identifier>",
	Short: "List papers citing the given paper (Semantic Scholar)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLinked(cmd, args[0], "citations")
	},
}

var referencesCmd = &cobra.Command{
	Use:   "references <identifier>",
	Short: "List papers the given paper cites (Semantic Scholar)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLinked(cmd, args[0], "references")
	},
}

func init() {
	for _, c := range []*cobra.Command{citationsCmd, referencesCmd} {
		c.Flags().Int("max-results", 50, "maximum results per request")
		rootCmd.AddCommand(c)
	}
}

func runLinked(cmd *cobra.Command, id, kind string) error {
	maxResults, _ := cmd.Flags().GetInt("max-results")

	ctx, cancel := context.WithTimeout(cmd.Context(), searchDeadline)
	defer cancel()

	client := scholar.NewClient(scholarConfig())

	var (
		refs []types.PaperRef
		err  error
	)
	if kind == "citations" {
		refs, err = client.Citations(ctx, id, maxResults)
	} else {
		refs, err = client.References(ctx, id, maxResults)
	}
	if err != nil {
		return err
	}

	for _, r := range refs {
		fmt.Printf("%s  %s\n", r.PaperID, r.Title)
	}
	return nil
}
