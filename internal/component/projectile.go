// internal/component/projectile.go
package component

// ProjectileOwner — кто выпустил снаряд
type ProjectileOwner string

const (
	OwnerPlayer ProjectileOwner = "player"
	OwnerEnemy  ProjectileOwner = "enemy"
)

// Projectile представляет летящий снаряд.
// После первого попадания Active становится false и снаряд больше ни на что не влияет.
type Projectile struct {
	ID        int             `json:"id"`
	Owner     ProjectileOwner `json:"owner"`
	Position  Vec3            `json:"position"`
	Velocity  Vec3            `json:"velocity"`
	Damage    int             `json:"damage"`
	Radius    float64         `json:"radius"`
	SpawnedAt float64         `json:"spawned_at"`
	Lifetime  float64         `json:"lifetime"`
	Reason    string          `json:"reason,omitempty"` // тег причины урона для вражеских пуль
	Active    bool            `json:"active"`
}
