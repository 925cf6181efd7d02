/*
Copyright © 2025 openkb
*/
package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/openkb/rag-be/types"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a single document by URL",
	Long:  `Fetches a PDF by URL, chunks it and stores the chunks in the knowledge base under the given source name.`,
	Run: func(cmd *cobra.Command, args []string) {
		url, _ := cmd.Flags().GetString("url")
		name, _ := cmd.Flags().GetString("name")
		if url == "" || name == "" {
			log.Fatal("Both --url and --name are required")
		}

		ctx := context.Background()
		d, err := buildDeps(ctx, cfgFile)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}

		result := d.ingestService.Ingest(ctx, url, name)
		if result.Status == types.StatusError {
			log.Fatalf("Ingestion failed: %s", result.Message)
		}
		log.Printf("Ingested %q (%d chunks)", name, result.ChunksCount)
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringP("url", "u", "", "URL of the PDF to ingest")
	ingestCmd.Flags().StringP("name", "n", "", "Source name used as the deduplication key")
}
