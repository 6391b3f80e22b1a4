package ecs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const benchN = 100_000

// Map-keyed storage, the layout the pools replace
type mapStore struct {
	pos map[Entity]Transform
	vel map[Entity]Velocity
}

func benchWorld() (*World, *mapStore) {
	w := NewWorld()
	m := &mapStore{
		pos: make(map[Entity]Transform, benchN),
		vel: make(map[Entity]Velocity, benchN),
	}
	for i := 0; i < benchN; i++ {
		e := w.NewEntity()
		tr := NewTransform(float64(i), float64(i))
		v := Velocity{V: mgl64.Vec2{1, 1}}
		w.Transform.Add(e, tr)
		w.Velocity.Add(e, v)
		m.pos[e] = tr
		m.vel[e] = v
	}
	// Every fourth entity is dead; iteration has to skip it
	for i := 0; i < benchN; i += 4 {
		e, _ := w.Transform.At(i)
		w.DestroyEntity(e)
	}
	return w, m
}

// Case 1: single column sum
func BenchmarkSingleColumn_Pool(b *testing.B) {
	w, _ := benchWorld()
	b.ResetTimer()
	var sum float64
	for n := 0; n < b.N; n++ {
		sum = 0
		for i := 0; i < w.Transform.Len(); i++ {
			_, tr := w.Transform.At(i)
			sum += tr.Pos[0]
		}
	}
	_ = sum
}

func BenchmarkSingleColumn_Map(b *testing.B) {
	_, m := benchWorld()
	b.ResetTimer()
	var sum float64
	for n := 0; n < b.N; n++ {
		sum = 0
		for _, tr := range m.pos {
			sum += tr.Pos[0]
		}
	}
	_ = sum
}

// Case 2: pos += vel with alive check and cross-pool lookup
func BenchmarkIntegrate_Pool(b *testing.B) {
	w, _ := benchWorld()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for e, v := range w.Velocity.All() {
			if !w.Alive(e) {
				continue
			}
			tr, ok := w.Transform.Get(e)
			if !ok {
				continue
			}
			tr.Pos = tr.Pos.Add(v.V)
		}
	}
}

func BenchmarkIntegrate_Map(b *testing.B) {
	w, m := benchWorld()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for e, v := range m.vel {
			if !w.Alive(e) {
				continue
			}
			tr := m.pos[e]
			tr.Pos = tr.Pos.Add(v.V)
			m.pos[e] = tr
		}
	}
}

// Case 3: churn, remove and re-add a slice of entities
func BenchmarkChurn_Pool(b *testing.B) {
	w, _ := benchWorld()
	ents := make([]Entity, 0, 1000)
	for i := 0; i < 1000; i++ {
		e, _ := w.Velocity.At(i)
		ents = append(ents, e)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for _, e := range ents {
			w.Velocity.Remove(e)
		}
		for _, e := range ents {
			w.Velocity.Add(e, Velocity{})
		}
	}
}
