/*
Copyright © 2025 openkb
*/
package cmd

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/openkb/rag-be/handler"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the RAG server",
	Long:  `Starts the HTTP server exposing the /rag endpoints and pre-populates the knowledge base from the configured document map.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		d, err := buildDeps(ctx, cfgFile)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}

		// Pre-population can download large PDFs; run it in the background
		// so the server is reachable immediately. Per-source failures are
		// logged inside and never block the others.
		go d.ingestService.PrePopulate(ctx, d.cfg.Documents)

		ragHandler := handler.NewRAGHandler(d.ingestService, d.answerService, d.evalService, d.sources)
		corsHandler := handler.NewCorsHandler()

		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		rag := router.Group("/rag")
		{
			rag.POST("/ingest", ragHandler.HandleIngest)
			rag.POST("/query", ragHandler.HandleQuery)
			rag.POST("/eval", ragHandler.HandleEval)
			rag.GET("/ingested-docs", ragHandler.HandleIngestedDocs)
		}

		log.Printf("Starting server on port %s...\n", d.cfg.Port)
		if err := router.Run(":" + d.cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
