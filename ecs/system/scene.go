package system

import (
	"log"

	"github.com/milk9111/balloonbridge/common"
	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

// SceneSystem turns exits, the restart key, and falling out of the level
// into a SceneRequest for the game loop.
type SceneSystem struct {
	// Current is the scene being played; restarts reload it.
	Current string
}

func NewSceneSystem(current string) *SceneSystem {
	return &SceneSystem{Current: current}
}

func (s *SceneSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	if pendingScene(w) != nil {
		return
	}

	player, px, py, pw, ph, ok := playerBox(w)
	if !ok {
		return
	}

	if input, ok := ecs.Get(w, player, component.InputComponent.Kind()); ok && input.Restart.Pressed {
		s.request(w, s.Current)
		return
	}

	if e, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		bounds, _ := ecs.Get(w, e, component.LevelBoundsComponent.Kind())
		if bounds.Height > 0 && py > bounds.Height {
			log.Printf("scene: player fell out of %q, restarting", s.Current)
			s.request(w, s.Current)
			return
		}
	}

	ecs.ForEach2(w, component.ExitComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, exit *component.Exit, t *component.Transform) {
		if pendingScene(w) != nil {
			return
		}
		ex, ey, ew, eh := boxOf(w, e, t, exit.Width, exit.Height)
		if !common.Intersects(px, py, pw, ph, ex, ey, ew, eh) {
			return
		}
		s.request(w, exit.Scene)
	})
}

func (s *SceneSystem) request(w *ecs.World, scene string) {
	if scene == "" {
		log.Printf("scene: no scene name assigned")
		return
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.SceneRequestComponent.Kind(), &component.SceneRequest{Scene: scene})
}

func pendingScene(w *ecs.World) *component.SceneRequest {
	e, ok := ecs.First(w, component.SceneRequestComponent.Kind())
	if !ok {
		return nil
	}
	req, _ := ecs.Get(w, e, component.SceneRequestComponent.Kind())
	return req
}

// TakeSceneRequest returns and clears the pending scene request.
func TakeSceneRequest(w *ecs.World) (string, bool) {
	e, ok := ecs.First(w, component.SceneRequestComponent.Kind())
	if !ok {
		return "", false
	}
	req, _ := ecs.Get(w, e, component.SceneRequestComponent.Kind())
	ecs.DestroyEntity(w, e)
	if req == nil {
		return "", false
	}
	return req.Scene, true
}
