package main

import (
	"log"

	"mcdemo/internal/engine"
)

func main() {
	game := engine.NewGame()
	if err := game.Run(); err != nil {
		log.Fatal(err)
	}
}
