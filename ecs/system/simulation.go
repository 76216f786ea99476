package system

import "github.com/milk9111/portalgun/ecs"

// Simulation wires the gameplay systems in tick order:
// input, instructions, locomotion, attachment, aim, emitter, projectile motion, physics,
// contacts, timers, camera.
type Simulation struct {
	World       *ecs.World
	Physics     *PhysicsSystem
	Emitters    *EmitterSystem
	Projectiles *ProjectileSystem
	Portals     *PortalSystem
	Aim         *AimSystem

	scheduler *ecs.Scheduler
}

// NewSimulation builds the pipeline. input runs first each tick and may be
// nil for scripted runs that write Input components directly.
func NewSimulation(w *ecs.World, gravity float64, spawn ProjectileSpawner, input ecs.System) *Simulation {
	physics := NewPhysicsSystemWithGravity(gravity)
	emitters := NewEmitterSystem(physics, physics, spawn)
	projectiles := NewProjectileSystem(physics, emitters)
	portals := NewPortalSystem(physics)
	aim := NewAimSystem(physics)

	scheduler := ecs.NewScheduler(
		input,
		NewInstructionsSystem(),
		portals,
		NewPlayerControllerSystem(physics, physics),
		NewAttachmentSystem(physics),
		aim,
		emitters,
		projectiles,
		physics,
		NewContactSystem(portals, projectiles, NewWinSystem()),
		NewTimerSystem(),
		NewCameraSystem(),
	)

	return &Simulation{
		World:       w,
		Physics:     physics,
		Emitters:    emitters,
		Projectiles: projectiles,
		Portals:     portals,
		Aim:         aim,
		scheduler:   scheduler,
	}
}

// Step advances the world by dt seconds.
func (s *Simulation) Step(dt float64) {
	s.scheduler.Update(s.World, dt)
}
