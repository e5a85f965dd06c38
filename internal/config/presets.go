package config

import "github.com/san-kum/physlab/internal/scene"

// Presets are the built-in spawnable scenes. Each returns a fresh
// Scene so callers can mutate records without touching the table.
var presets = map[string]func() *scene.Scene{
	"drop":      dropScene,
	"stack":     stackScene,
	"shower":    showerScene,
	"billiards": billiardsScene,
	"mixed":     mixedScene,
}

func GetPreset(name string) *scene.Scene {
	build, ok := presets[name]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

func base(name string) *scene.Scene {
	return &scene.Scene{
		Name:    name,
		Gravity: [3]float64{0, -DefaultGravity, 0},
		Bounds:  [3]float64{DefaultBound, DefaultBound, DefaultBound},
	}
}

func dropScene() *scene.Scene {
	sc := base("drop")
	sc.Bodies = []scene.Record{
		{Shape: "sphere", Size: 0.5, Position: [3]float64{0, 5, 0}, Mass: 1, Friction: 0, Restitution: 0.5},
	}
	return sc
}

func stackScene() *scene.Scene {
	sc := base("stack")
	for i := 0; i < 4; i++ {
		sc.Bodies = append(sc.Bodies, scene.Record{
			Shape:       "box",
			Size:        1,
			Position:    [3]float64{0, 0.5 + float64(i), 0},
			Mass:        2,
			Friction:    0.4,
			Restitution: 0.1,
		})
	}
	return sc
}

func showerScene() *scene.Scene {
	sc := base("shower")
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sc.Bodies = append(sc.Bodies, scene.Record{
				Shape:       "sphere",
				Size:        0.4,
				Position:    [3]float64{float64(i-1) * 1.5, 6 + float64(i*3+j), float64(j-1) * 1.5},
				Mass:        1,
				Friction:    0.2,
				Restitution: 0.6,
			})
		}
	}
	return sc
}

func billiardsScene() *scene.Scene {
	sc := base("billiards")
	sc.Bodies = []scene.Record{
		{Shape: "sphere", Size: 0.5, Position: [3]float64{-6, 0.5, 0}, Velocity: [3]float64{8, 0, 0}, Mass: 1, Friction: 0.05, Restitution: 0.9},
	}
	for i := 0; i < 5; i++ {
		sc.Bodies = append(sc.Bodies, scene.Record{
			Shape:       "sphere",
			Size:        0.5,
			Position:    [3]float64{float64(i) * 1.1, 0.5, 0},
			Mass:        1,
			Friction:    0.05,
			Restitution: 0.9,
		})
	}
	return sc
}

func mixedScene() *scene.Scene {
	sc := base("mixed")
	sc.Bodies = []scene.Record{
		{Shape: "sphere", Size: 0.5, Position: [3]float64{-2, 4, 0}, Mass: 1, Friction: 0.2, Restitution: 0.7},
		{Shape: "box", Size: 1, Position: [3]float64{0, 5, 0}, AngularVelocity: [3]float64{0, 1, 0}, Mass: 2, Friction: 0.4, Restitution: 0.3},
		{Shape: "cylinder", Size: 0.5, Height: 1.2, Position: [3]float64{2, 6, 0}, Mass: 1.5, Friction: 0.3, Restitution: 0.4},
	}
	return sc
}
