package systems

import (
	"log"

	"github.com/automoto/aoi-adventure/components"
	"github.com/automoto/aoi-adventure/prefabs"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePrefabs applies edits to the player spec picked up by w. It runs
// before the physics step, so a reload never lands in the middle of a tick.
// Size changes only take effect on the next level start, which is why the
// new spec is handed to onReload.
func NewUpdatePrefabs(w *prefabs.Watcher, onReload func(*prefabs.PlayerSpec)) ecs.System {
	return func(e *ecs.ECS) {
		select {
		case err := <-w.Errors:
			log.Printf("Warning: prefab watcher: %v", err)
		default:
		}

		reload := false
		for _, name := range w.Drain() {
			if name == prefabs.PlayerFile {
				reload = true
			}
		}
		if !reload {
			return
		}

		spec, err := ReloadPlayerSpec(e)
		if err != nil {
			log.Printf("Warning: keeping previous player spec: %v", err)
			return
		}
		log.Printf("Reloaded %s", prefabs.PlayerFile)
		if onReload != nil {
			onReload(spec)
		}
	}
}

// ReloadPlayerSpec re-reads the player spec and swaps its stats and frame
// tables into the live bodies and decorations.
func ReloadPlayerSpec(e *ecs.ECS) (*prefabs.PlayerSpec, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	table, err := spec.Table()
	if err != nil {
		return nil, err
	}
	decorTable, err := spec.DecorTable()
	if err != nil {
		return nil, err
	}

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		body.SetStats(spec.Stats)
		body.Anim.SetTable(table)
	})
	components.Decor.Each(e.World, func(entry *donburi.Entry) {
		components.Decor.Get(entry).Anim.SetTable(decorTable)
	})
	return spec, nil
}
