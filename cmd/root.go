/*
Copyright © 2025 openkb
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rag-be",
	Short: "RAG knowledge-base backend",
	Long: `Backend for a retrieval-augmented generation knowledge base.

Ingests PDF documents by URL, chunks and stores them in Weaviate, answers
queries with citations through an OpenAI-compatible model, and scores
retrieval against a configured answer key.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}
