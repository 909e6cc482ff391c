package component

// DeathRecord фиксирует, чем закончилась сессия. Заполняется один раз:
// либо при смерти игрока, либо при прохождении (Reason == DeathReasonClear).
type DeathRecord struct {
	Reason string  `json:"reason"`
	Time   float64 `json:"time"`
	Keys   int     `json:"keys"`
}

const DeathReasonClear = "Clear"

// Session — единственный источник правды о состоянии игровой сессии.
// Значение неизменяемо по соглашению: правила возвращают новую копию,
// срезы и указатели внутри никогда не изменяются на месте.
type Session struct {
	Phase   GamePhase `json:"phase"`
	StageID string    `json:"stage_id"`
	Level   int       `json:"level"`

	Score     int `json:"score"`
	KillCount int `json:"kill_count"`

	PlayerHP       int  `json:"player_hp"`
	MaxHP          int  `json:"max_hp"`
	PlayerPosition Vec3 `json:"player_position"`

	AmmoCurrent int `json:"ammo_current"`
	MaxAmmo     int `json:"max_ammo"`
	AmmoReserve int `json:"ammo_reserve"`
	MaxReserve  int `json:"max_reserve"`

	KeysCollected int `json:"keys_collected"`
	TotalKeys     int `json:"total_keys"`

	Death   *DeathRecord `json:"death,omitempty"`
	IsClear bool         `json:"is_clear"`

	RespawnToken     int `json:"respawn_token"`
	ItemResetTrigger int `json:"item_reset_trigger"`

	CameraMode CameraMode `json:"camera_mode"`
	Enemies    []Enemy    `json:"enemies"`
}

// GoalUnlocked — ключи собраны полностью, и хотя бы один ключ существует.
func (s Session) GoalUnlocked() bool {
	return s.TotalKeys > 0 && s.KeysCollected >= s.TotalKeys
}

// FindEnemy возвращает копию записи врага по ID.
func (s Session) FindEnemy(id string) (Enemy, bool) {
	for _, e := range s.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return Enemy{}, false
}
