// Command portalsim runs a level headless and prints what happens to the
// player, the emitter and every box.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
	"github.com/milk9111/portalgun/ecs/entity"
	"github.com/milk9111/portalgun/ecs/system"
	"github.com/milk9111/portalgun/levels"
)

type options struct {
	level   string
	script  string
	ticks   int
	dt      float64
	every   int
	capture string
	preview string
}

func main() {
	var opts options
	flag.StringVar(&opts.level, "level", "puzzle_01", "level name in levels/ (basename, .json optional)")
	flag.StringVar(&opts.script, "script", "", "yaml input script")
	flag.IntVar(&opts.ticks, "ticks", 600, "ticks to simulate")
	flag.Float64Var(&opts.dt, "dt", 1.0/60, "seconds per tick")
	flag.IntVar(&opts.every, "every", 60, "print state every N ticks (0 prints only the final state)")
	flag.StringVar(&opts.capture, "mode", "", "capture mode override: direct or projectile")
	flag.StringVar(&opts.preview, "preview", "", "preview mode override: arrow or full")
	flag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(opts options, out io.Writer) error {
	if opts.dt <= 0 {
		return fmt.Errorf("portalsim: dt must be positive, got %v", opts.dt)
	}
	script := &Script{}
	if opts.script != "" {
		s, err := LoadScript(opts.script)
		if err != nil {
			return err
		}
		script = s
	}

	lvl, err := levels.Load(opts.level)
	if err != nil {
		return err
	}
	w := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(w, lvl); err != nil {
		return err
	}
	if err := applyModes(w, opts.capture, opts.preview); err != nil {
		return err
	}
	ecs.ForEach(w, component.InstructionsTagComponent.Kind(), func(_ ecs.Entity, tag *component.InstructionsTag) {
		tag.Dismissed = true
	})

	sim := system.NewSimulation(w, lvl.GravityOr(system.DefaultGravity), entity.NewProjectileAt, newScriptInput(script))
	for tick := 1; tick <= opts.ticks; tick++ {
		sim.Step(opts.dt)
		if opts.every > 0 && tick%opts.every == 0 {
			printState(out, w, tick)
		}
	}
	if opts.every <= 0 || opts.ticks%opts.every != 0 {
		printState(out, w, opts.ticks)
	}
	return nil
}

func applyModes(w *ecs.World, capture, preview string) error {
	if capture == "" && preview == "" {
		return nil
	}
	e, ok := ecs.First(w, component.EmitterComponent.Kind())
	if !ok {
		return nil
	}
	em, _ := ecs.Get(w, e, component.EmitterComponent.Kind())
	c, p := em.CaptureMode, em.PreviewMode
	var err error
	if capture != "" {
		if c, err = component.ParseCaptureMode(capture); err != nil {
			return err
		}
	}
	if preview != "" {
		if p, err = component.ParsePreviewMode(preview); err != nil {
			return err
		}
	}
	entity.SetModes(w, c, p)
	return nil
}

func printState(out io.Writer, w *ecs.World, tick int) {
	fmt.Fprintf(out, "tick %d (t=%.2fs)\n", tick, w.Time())
	if p, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, p, component.TransformComponent.Kind()); ok {
			fmt.Fprintf(out, "  player     %s at (%.1f, %.1f)\n", p, t.X, t.Y)
		}
	}
	ecs.ForEach(w, component.EmitterComponent.Kind(), func(e ecs.Entity, em *component.Emitter) {
		held := "-"
		if em.Captured != 0 {
			held = ecs.Entity(em.Captured).String()
		}
		fmt.Fprintf(out, "  emitter    %s mode=%s preview=%s aim=(%.2f, %.2f) holding=%s\n", e, em.CaptureMode, em.PreviewMode, em.AimX, em.AimY, held)
	})
	ecs.ForEach2(w, component.CapturableComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Capturable, t *component.Transform) {
		state := "free"
		if c.CapturedBy != 0 {
			state = "captured"
		}
		fmt.Fprintf(out, "  box        %s at (%.1f, %.1f) %s\n", e, t.X, t.Y, state)
	})
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, t *component.Transform) {
		fmt.Fprintf(out, "  projectile %s at (%.1f, %.1f) traveled=%.1f\n", e, t.X, t.Y, p.Traveled)
	})
	if system.Won(w) {
		fmt.Fprintln(out, "  level complete")
	}
}
