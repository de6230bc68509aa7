package system

import (
	"testing"

	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

func TestSceneRequests(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(tw *testWorld, p ecs.Entity)
		want    string
		wantReq bool
	}{
		{
			name:  "idle",
			setup: func(tw *testWorld, p ecs.Entity) {},
		},
		{
			name: "exit",
			setup: func(tw *testWorld, p ecs.Entity) {
				e := ecs.CreateEntity(tw.w)
				tw.add(e, func(e ecs.Entity) error {
					return ecs.Add(tw.w, e, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 0})
				})
				tw.add(e, func(e ecs.Entity) error {
					return ecs.Add(tw.w, e, component.ExitComponent.Kind(), &component.Exit{Scene: "level1", Width: 20, Height: 20})
				})
			},
			want:    "level1",
			wantReq: true,
		},
		{
			name: "exit_without_scene",
			setup: func(tw *testWorld, p ecs.Entity) {
				e := ecs.CreateEntity(tw.w)
				tw.add(e, func(e ecs.Entity) error {
					return ecs.Add(tw.w, e, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 0})
				})
				tw.add(e, func(e ecs.Entity) error {
					return ecs.Add(tw.w, e, component.ExitComponent.Kind(), &component.Exit{Width: 20, Height: 20})
				})
			},
		},
		{
			name: "restart_key",
			setup: func(tw *testWorld, p ecs.Entity) {
				press(&tw.input(p).Restart, true)
			},
			want:    "tutorial",
			wantReq: true,
		},
		{
			name: "fell_out",
			setup: func(tw *testWorld, p ecs.Entity) {
				e := ecs.CreateEntity(tw.w)
				tw.add(e, func(e ecs.Entity) error {
					return ecs.Add(tw.w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: 100, Height: 100})
				})
				tw.transform(p).Y = 150
			},
			want:    "tutorial",
			wantReq: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t, 1.0/60)
			p := tw.player(0, 0)
			tt.setup(tw, p)

			tw.tick(NewSceneSystem("tutorial"))

			got, ok := TakeSceneRequest(tw.w)
			if ok != tt.wantReq || got != tt.want {
				t.Fatalf("expected request %q (%v), got %q (%v)", tt.want, tt.wantReq, got, ok)
			}
			if _, again := TakeSceneRequest(tw.w); again {
				t.Fatalf("expected request consumed")
			}
		})
	}
}

func TestSceneSingleRequest(t *testing.T) {
	tw := newTestWorld(t, 1.0/60)
	p := tw.player(0, 0)
	for _, scene := range []string{"a", "b"} {
		e := ecs.CreateEntity(tw.w)
		tw.add(e, func(e ecs.Entity) error {
			return ecs.Add(tw.w, e, component.TransformComponent.Kind(), &component.Transform{})
		})
		scene := scene
		tw.add(e, func(e ecs.Entity) error {
			return ecs.Add(tw.w, e, component.ExitComponent.Kind(), &component.Exit{Scene: scene, Width: 10, Height: 10})
		})
	}
	_ = p

	sys := NewSceneSystem("tutorial")
	tw.tick(sys)
	tw.tick(sys)

	if n := len(ecs.Query(tw.w, component.SceneRequestComponent.Kind())); n != 1 {
		t.Fatalf("expected one pending request, got %d", n)
	}
}
