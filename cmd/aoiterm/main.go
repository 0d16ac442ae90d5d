// Command aoiterm plays a level in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/automoto/aoi-adventure/assets/levels"
	"github.com/automoto/aoi-adventure/prefabs"
	"github.com/automoto/aoi-adventure/shared/leveldata"
	"github.com/gdamore/tcell/v2"
)

const (
	tileSize = 16
	tickRate = time.Second / 60
)

var spawn = leveldata.SpawnPoint{X: 30, Y: 30}

func main() {
	levelPath := flag.String("level", levels.Dir+"/map_1.txt", "level to play (.txt char map or .tmx)")
	prefabDir := flag.String("prefabs", "", "directory of prefab specs to load and hot reload")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	level, err := levels.Load(*levelPath, tileSize, spawn)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *prefabs.Watcher
	if *prefabDir != "" {
		prefabs.Dir = *prefabDir
		watcher, err = prefabs.NewWatcher(*prefabDir)
		if err != nil {
			log.Printf("Warning: prefab hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}

	var sounds soundPlayer = silence{}
	if !*mute {
		s, err := newSpeakerSounds()
		if err != nil {
			log.Printf("Warning: audio initialization failed: %v", err)
		} else {
			defer s.Close()
			sounds = s
		}
	}

	g, err := newGame(level, spec, sounds)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	runErr := run(screen, g, watcher)
	screen.Fini()
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

// run drives the game until a quit key. Key events and prefab reloads are
// applied between ticks.
func run(screen tcell.Screen, g *game, watcher *prefabs.Watcher) error {
	g.resize(screen.Size())

	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	var reloads <-chan string
	if watcher != nil {
		reloads = watcher.Events
	}

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if g.handleKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				g.resize(screen.Size())
				screen.Sync()
			}

		case name, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			if name != prefabs.PlayerFile {
				continue
			}
			spec, err := prefabs.LoadPlayerSpec()
			if err == nil {
				err = g.applySpec(spec)
			}
			if err != nil {
				g.status = fmt.Sprintf("reload failed: %v", err)
			} else {
				g.status = "reloaded " + prefabs.PlayerFile
			}

		case <-ticker.C:
			g.tick()
			g.draw(screen)
			screen.Show()
		}
	}
}
