package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "draw collision boxes and frame stats")
	watch := flag.Bool("watch", false, "reload prefabs from prefabs/ when they change on disk")
	policy := flag.String("policy", "", "player death policy: reset or deactivate (default from game.yaml)")
	seed := flag.Int64("seed", 0, "random seed for spawn positions (0 uses game.yaml, then the clock)")
	flag.Parse()

	game, err := NewGame(Options{
		Debug:  *debug,
		Watch:  *watch,
		Policy: *policy,
		Seed:   *seed,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
