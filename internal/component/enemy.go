package component

// EnemyType — тип врага, определяет неизменяемые характеристики (см. defs.EnemyStats)
type EnemyType string

const (
	EnemyBasic  EnemyType = "basic"
	EnemyFast   EnemyType = "fast"
	EnemyTank   EnemyType = "tank"
	EnemySniper EnemyType = "sniper"
)

// EnemyTypes — все типы в порядке открытия по уровням
var EnemyTypes = []EnemyType{EnemyBasic, EnemyFast, EnemyTank, EnemySniper}

func (t EnemyType) Valid() bool {
	for _, known := range EnemyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Enemy — запись в реестре врагов.
// Health == 0 означает, что враг должен быть удалён до следующего тика.
type Enemy struct {
	ID       string    `json:"id"`
	Type     EnemyType `json:"type"`
	Health   int       `json:"health"`
	Position Vec3      `json:"position"`
}

// AIState хранит таймеры и последнее решение контроллера для одного врага.
type AIState struct {
	LastDecision float64 // время последнего обновления решения
	LastAttack   float64
	LastSync     float64 // время последней публикации позиции в реестр
	Moving       bool
	Yaw          float64
	Decided      bool // было ли хотя бы одно решение
}
