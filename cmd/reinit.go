/*
Copyright © 2025 openkb
*/
package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
)

// reinitCmd represents the reinit command
var reinitCmd = &cobra.Command{
	Use:   "reinit",
	Short: "Drop and recreate the knowledge base",
	Long:  `Deletes the vector class and the ingested-source index, then recreates an empty class. All stored chunks are lost.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		d, err := buildDeps(ctx, cfgFile)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}

		if err := d.vectorDB.ReInit(); err != nil {
			log.Fatalf("Failed to reinitialize vector store: %v", err)
		}
		if err := d.sources.DeleteAll(ctx); err != nil {
			log.Fatalf("Failed to clear ingested-source index: %v", err)
		}
		log.Println("Knowledge base reinitialized")
	},
}

func init() {
	rootCmd.AddCommand(reinitCmd)
}
