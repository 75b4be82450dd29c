package scenes

import (
	"github.com/decker502/gallery/pkg/game"
)

// Scene game.Scene 的别名，场景实现 game.Scene 接口即可交给 SceneManager
type Scene = game.Scene
