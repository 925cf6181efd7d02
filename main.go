/*
Copyright © 2025 openkb
*/
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/openkb/rag-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}
}
