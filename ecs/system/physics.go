package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/balloonbridge/common"
	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
)

// PhysicsSystem mirrors PhysicsBody components into a Chipmunk space, steps
// it, and writes dynamic body positions back to their transforms.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	grounded map[ecs.Entity]bool
	players  map[*cp.Shape]ecs.Entity
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		grounded: make(map[ecs.Entity]bool),
		players:  make(map[*cp.Shape]ecs.Entity),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Reset drops every body. The game calls it when the world is rebuilt.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.space = newSpace()
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.grounded = make(map[ecs.Entity]bool)
	ps.players = make(map[*cp.Shape]ecs.Entity)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.Reset()
	}

	ps.ensureHandlers()
	ps.syncEntities(w)

	dt := deltaSeconds(w)
	if dt <= 0 {
		return
	}

	for e := range ps.grounded {
		ps.grounded[e] = false
	}
	ps.space.Step(dt)

	ps.syncTransforms(w)
	for e, g := range ps.grounded {
		setAnimationFlag(w, e, "isGrounded", g)
	}
}

// Grounded reports whether e touched a surface below it during the last step.
func (ps *PhysicsSystem) Grounded(e ecs.Entity) bool {
	if ps == nil {
		return false
	}
	return ps.grounded[e]
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeSolid)
	handler.UserData = ps
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		player, playerIsA := sys.players[shapeA]
		if !playerIsA {
			var okB bool
			player, okB = sys.players[shapeB]
			if !okB {
				return true
			}
		}

		n := arb.Normal()
		if !playerIsA {
			n = n.Neg()
		}
		// screen-down coordinates: a floor pushes back with positive Y
		if n.Y > 0.5 {
			sys.grounded[player] = true
		}
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}

		isPlayer := ecs.Has(w, e, component.PlayerTagComponent.Kind())
		info := ps.createBodyInfo(t, body, isPlayer)
		if info == nil {
			return
		}
		ps.entities[e] = info
		if isPlayer {
			ps.players[body.Shape] = e
			ps.grounded[e] = false
		}
	})
}

func (ps *PhysicsSystem) createBodyInfo(t *component.Transform, body *component.PhysicsBody, isPlayer bool) *bodyInfo {
	width, height := body.Width, body.Height
	if width <= 0 || height <= 0 {
		width, height = 32, 32
		body.Width, body.Height = width, height
	}

	if body.Static {
		bb := cp.BB{L: t.X - width/2, B: t.Y - height/2, R: t.X + width/2, T: t.Y + height/2}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(body.Friction)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)

		body.Body = ps.space.StaticBody
		body.Shape = shape
		return &bodyInfo{body: ps.space.StaticBody, shapes: []*cp.Shape{shape}, static: true}
	}

	mass := body.Mass
	if mass <= 0 {
		mass = 1
	}

	// infinite moment keeps the box upright
	b := cp.NewBody(mass, math.Inf(1))
	b.SetPosition(cp.Vector{X: t.X, Y: t.Y})

	shape := cp.NewBox(b, width, height, 0)
	shape.SetFriction(body.Friction)
	shape.SetCollisionType(collisionTypeSolid)
	if isPlayer {
		shape.SetCollisionType(collisionTypePlayer)
	}

	ps.space.AddBody(b)
	ps.space.AddShape(shape)

	body.Body = b
	body.Shape = shape
	return &bodyInfo{body: b, shapes: []*cp.Shape{shape}}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Static || body.Body == nil {
			return
		}
		pos := body.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}

		for _, shape := range info.shapes {
			if shape == nil {
				continue
			}
			ps.space.RemoveShape(shape)
			delete(ps.players, shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}

		delete(ps.entities, e)
		delete(ps.grounded, e)
	}
}
