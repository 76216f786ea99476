package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/portalgun/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes and emitter state")
	levelName := flag.String("level", "puzzle_01", "level name in levels/ (basename, .json optional)")
	captureMode := flag.String("mode", "", "capture mode override: direct or projectile")
	previewMode := flag.String("preview", "", "preview mode override: arrow or full")
	watch := flag.Bool("watch", false, "hot reload emitter tuning from ./prefabs")
	flag.Parse()

	game, err := NewGame(GameOptions{
		Level:   *levelName,
		Debug:   *debug,
		Capture: *captureMode,
		Preview: *previewMode,
		Watch:   *watch,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("portalgun")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
