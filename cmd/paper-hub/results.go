package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-hub/internal/resultfile"
)

var resultsCmd = &cobra.Command{
	Use:   "results <file>",
	Short: "Show a previously saved search result file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		f, err := resultfile.Read(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s search saved %s, query: %s\n",
			f.Provider, f.Saved.Format("2006-01-02 15:04"), f.Results.Query)
		return printPapers(os.Stdout, &f.Results, asJSON)
	},
}

func init() {
	resultsCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(resultsCmd)
}
