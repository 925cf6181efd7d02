/*
Copyright © 2025 openkb
*/
package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
)

// prepopulateCmd represents the prepopulate command
var prepopulateCmd = &cobra.Command{
	Use:   "prepopulate",
	Short: "Bulk-load the configured documents",
	Long: `Runs the ingestion orchestrator over the document map in the config
file. Sources that are already in the side index are skipped, so the
command is safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		d, err := buildDeps(ctx, cfgFile)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		d.ingestService.PrePopulate(ctx, d.cfg.Documents)
	},
}

func init() {
	rootCmd.AddCommand(prepopulateCmd)
}
