package component

import "github.com/jakecoffman/cp"

// Kind identifies the gameplay category of a body.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindHeart
	KindProjectile
	KindPlasma
	KindExplosion
)

var kindNames = map[Kind]string{
	KindPlayer:     "player",
	KindEnemy:      "enemy",
	KindHeart:      "heart",
	KindProjectile: "projectile",
	KindPlasma:     "plasma",
	KindExplosion:  "explosion",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "none"
}

// ParseKind maps a prefab kind name to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return KindNone, false
}

// Body is the movable, damageable, drawable record shared by every gameplay
// entity. Width and Height are collision extents centered on the transform.
type Body struct {
	Kind   Kind
	Active bool
	Health int
	Damage int
	Value  int
	Width  float64
	Height float64
}

// Destroyed reports whether the body lost all of its health.
func (b *Body) Destroyed() bool {
	return b.Health <= 0
}

// Bounds returns the axis-aligned box of the body centered on pos.
func (b *Body) Bounds(pos cp.Vector) cp.BB {
	return cp.NewBBForExtents(pos, b.Width/2, b.Height/2)
}

var BodyComponent = NewComponent[Body]()
