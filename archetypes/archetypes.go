package archetypes

import (
	"github.com/automoto/jump/components"
	"github.com/automoto/jump/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Layer is the only render layer.
const Layer ecs.LayerID = 0

var (
	Session = newArchetype(
		tags.Session,
		components.Session,
	)
	GameOver = newArchetype(
		tags.GameOver,
		components.GameOver,
	)
	Input = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Layer,
		append(a.components, cs...)...,
	))
	return e
}
