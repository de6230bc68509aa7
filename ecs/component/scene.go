package component

// Exit requests Scene when the player overlaps it.
type Exit struct {
	Scene  string
	Width  float64
	Height float64
}

var ExitComponent = NewComponent[Exit]()

// SceneRequest is a one-shot request for the game loop to load a scene.
// Systems only emit it; the Game owns level IO and world rebuilds.
type SceneRequest struct {
	Scene string
}

var SceneRequestComponent = NewComponent[SceneRequest]()
