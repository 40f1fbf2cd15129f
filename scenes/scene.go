package scenes

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}

// Resizer is implemented by scenes that lay themselves out against the
// window size.
type Resizer interface {
	Resize(width, height int)
}

// LevelSource is where the platformer reads its level files, from the root
// of FS. Changes carries paths of edited files when the directory is
// watched; it may be nil.
type LevelSource struct {
	FS      fs.FS
	Changes <-chan string
}
