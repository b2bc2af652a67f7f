package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
	"github.com/milk9111/starfighter/prefabs"
)

// Factory builds entities from prefab files. Parsed prefabs are cached until
// Invalidate is called.
type Factory struct {
	lib       Library
	viewWidth float64
	specs     map[string]prefabs.EntityBuildSpec
}

func NewFactory(lib Library, viewWidth float64) *Factory {
	return &Factory{
		lib:       lib,
		viewWidth: viewWidth,
		specs:     make(map[string]prefabs.EntityBuildSpec),
	}
}

// Invalidate drops cached prefabs. With no names the whole cache is cleared.
func (f *Factory) Invalidate(names ...string) {
	if len(names) == 0 {
		f.specs = make(map[string]prefabs.EntityBuildSpec)
		return
	}
	for _, name := range names {
		delete(f.specs, name)
	}
}

// Build creates the entity described by prefab.
func (f *Factory) Build(w *ecs.World, prefab string) (ecs.Entity, error) {
	spec, ok := f.specs[prefab]
	if !ok {
		loaded, err := prefabs.LoadEntityBuildSpec(prefab)
		if err != nil {
			return 0, fmt.Errorf("build entity: load %q: %w", prefab, err)
		}
		spec = loaded
		f.specs[prefab] = spec
	}

	lib := f.lib
	if lib == nil {
		lib = nopLibrary{}
	}
	return buildEntity(w, spec, &buildContext{PrefabPath: prefab, Library: lib, ViewWidth: f.viewWidth})
}

// Spawn builds prefab and centers it on at.
func (f *Factory) Spawn(w *ecs.World, prefab string, at cp.Vector) (ecs.Entity, error) {
	e, err := f.Build(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetPosition(w, e, at); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("spawn %q: %w", prefab, err)
	}
	return e, nil
}

// SetPosition moves e to at and lays out its animation there.
func SetPosition(w *ecs.World, e ecs.Entity, at cp.Vector) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{Scale: 1}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), t); err != nil {
			return err
		}
	}
	t.Position = at
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Layout(at)
	}
	return nil
}
