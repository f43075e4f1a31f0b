package capy

// Collides reports whether the character hits either tree of the obstacle.
// Comparisons are strict: a character touching a tree edge does not collide.
func Collides(c Character, o Obstacle) bool {
	if !(c.X < o.Right() && c.X+c.W > o.X) {
		return false
	}
	return c.Y < o.GapTop || c.Y+c.H > o.GapBottom
}

// Collects reports whether the character overlaps the pickup.
// Boxes that only share an edge do not overlap.
func Collects(c Character, p Pickup) bool {
	return c.Box().Overlaps(p.Box())
}
