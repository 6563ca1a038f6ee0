package field

// Physics constants
const (
	RepelGain = 5.0  // Multiplies RepelStrength
	Stiffness = 0.05 // Homing spring
	Friction  = 0.85 // Velocity kept per frame
)

// RepulsionForce returns the velocity change the pointer imposes on a dot at pos.
// It is zero outside the radius and at the pointer itself, where the
// direction is undefined.
func RepulsionForce(pos, pointer Vec, radius, strength float64) Vec {
	d := pointer.Sub(pos)
	dist := d.Len()
	if dist >= radius || dist == 0 {
		return Vec{}
	}
	force := (radius - dist) / radius
	return d.Scale(-RepelGain * strength * force / dist)
}

// Step advances one particle by one frame
func Step(p *Particle, pointer Vec, cfg Config) {
	// Repel
	p.Vel = p.Vel.Add(RepulsionForce(p.Pos, pointer, cfg.RepelRadius, cfg.RepelStrength))

	// Home pull
	p.Vel = p.Vel.Add(p.Base.Sub(p.Pos).Scale(Stiffness))

	// Friction
	p.Vel = p.Vel.Scale(Friction)

	// Apply movement
	p.Pos = p.Pos.Add(p.Vel)
}
