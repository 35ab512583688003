package main

import (
	"log"

	"github.com/Garsondee/Ricochet-Sense/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowTitle("Ricochet Sense")
	ebiten.SetWindowSize(1612, 752)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
