package system

import (
	"github.com/younwookim/tileforge/internal/ecs"
	"github.com/younwookim/tileforge/internal/lighting"
)

// GatherLights appends one source per live entity with Transform and LightEmitter.
// out is truncated first so the caller can reuse its backing array.
func GatherLights(w *ecs.World, out []lighting.Source) []lighting.Source {
	out = out[:0]
	for e, l := range w.Light.All() {
		if !w.Alive(e) {
			continue
		}
		tr, ok := w.Transform.Get(e)
		if !ok {
			continue
		}
		out = append(out, lighting.Source{
			Pos:         tr.Pos,
			RadiusTiles: l.RadiusTiles,
			Intensity:   l.Intensity,
		})
	}
	return out
}
