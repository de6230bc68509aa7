package system

import (
	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

// abilityEnabled reports whether e may use ab. Entities without an
// Abilities component are unrestricted.
func abilityEnabled(w *ecs.World, e ecs.Entity, ab component.Ability) bool {
	abilities, ok := ecs.Get(w, e, component.AbilitiesComponent.Kind())
	if !ok {
		return true
	}
	return abilities.Enabled(ab)
}

func setAnimationFlag(w *ecs.World, e ecs.Entity, name string, v bool) {
	flags, ok := ecs.Get(w, e, component.AnimationFlagsComponent.Kind())
	if !ok {
		return
	}
	flags.Set(name, v)
}

func bodyOf(w *ecs.World, e ecs.Entity) *component.PhysicsBody {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body == nil {
		return nil
	}
	return body
}

// boxOf returns the top-left box of e, sized from its body, rect, or the
// fallback.
func boxOf(w *ecs.World, e ecs.Entity, t *component.Transform, fallbackW, fallbackH float64) (x, y, width, height float64) {
	width, height = fallbackW, fallbackH
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Width > 0 && body.Height > 0 {
		width, height = body.Width, body.Height
	} else if rect, ok := ecs.Get(w, e, component.RectComponent.Kind()); ok && rect.Width > 0 && rect.Height > 0 {
		width, height = rect.Width, rect.Height
	}
	return t.X - width/2, t.Y - height/2, width, height
}

func playerBox(w *ecs.World) (ecs.Entity, float64, float64, float64, float64, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, 0, 0, 0, 0, false
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, 0, 0, 0, false
	}
	x, y, bw, bh := boxOf(w, player, t, 24, 24)
	return player, x, y, bw, bh, true
}
