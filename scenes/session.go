package scenes

import (
	"log"
	"path"
	"strings"

	"github.com/automoto/aoi-adventure/assets/levels"
	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/automoto/aoi-adventure/prefabs"
	"github.com/automoto/aoi-adventure/shared/leveldata"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Session holds what outlives a single scene: the chosen level, the player
// spec and the optional prefab watcher.
type Session struct {
	LevelPath string
	Level     *leveldata.Level
	Spec      *prefabs.PlayerSpec
	Watcher   *prefabs.Watcher
}

// LevelLabel is the level name as shown in menus.
func (s *Session) LevelLabel() string {
	name := strings.TrimSuffix(path.Base(s.LevelPath), path.Ext(s.LevelPath))
	return strings.ToUpper(strings.ReplaceAll(name, "_", " "))
}

// CycleLevel switches to the next embedded level. A level that fails to
// load is skipped with a warning.
func (s *Session) CycleLevel() {
	paths, err := levels.Paths()
	if err != nil {
		log.Printf("Warning: Could not list levels: %v", err)
		return
	}
	start := 0
	for i, p := range paths {
		if p == s.LevelPath {
			start = i + 1
			break
		}
	}
	for i := 0; i < len(paths); i++ {
		next := paths[(start+i)%len(paths)]
		level, err := LoadLevel(next)
		if err != nil {
			log.Printf("Warning: skipping level: %v", err)
			continue
		}
		s.LevelPath = next
		s.Level = level
		return
	}
}

// LoadLevel reads a bundled or on-disk level using the configured tile size
// and spawn point for character maps.
func LoadLevel(path string) (*leveldata.Level, error) {
	return levels.Load(path, cfg.Level.TileSize, cfg.Level.Spawn)
}
