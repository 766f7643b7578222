package main

import (
	"log"

	"github.com/MrSnakeDoc/songjournal/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ songjournal failed: %v", err)
	}
}
