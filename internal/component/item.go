package component

// ItemKind — категория подбираемого предмета
type ItemKind string

const (
	ItemKey   ItemKind = "key"
	ItemHeart ItemKind = "heart"
	ItemAmmo  ItemKind = "ammo"
)

// ItemSpawn — предмет, лежащий в мире.
type ItemSpawn struct {
	ID        string   `json:"id"`
	Kind      ItemKind `json:"kind"`
	Position  Vec3     `json:"position"`
	Collected bool     `json:"collected"`
}
