package app

import (
	"go-keyhunt/internal/component"
	"go-keyhunt/internal/system"
)

// EnemyView — враг с данными для отрисовки.
type EnemyView struct {
	component.Enemy
	MaxHealth int     `json:"max_health"`
	Moving    bool    `json:"moving"`
	Yaw       float64 `json:"yaw"`
	Color     string  `json:"color"`
	Radius    float64 `json:"radius"`
}

// View — всё, что нужно визуальному слою и сетевым клиентам за один кадр.
type View struct {
	Time         float64                `json:"time"`
	Session      component.Session      `json:"session"`
	Player       component.Vec3         `json:"player"`
	PlayerYaw    float64                `json:"player_yaw"`
	Enemies      []EnemyView            `json:"enemies"`
	Projectiles  []component.Projectile `json:"projectiles"`
	Items        []component.ItemSpawn  `json:"items"`
	Goal         component.Vec3         `json:"goal"`
	GoalUnlocked bool                   `json:"goal_unlocked"`
	ResetSpot    *component.Vec3        `json:"reset_spot,omitempty"`
	ResetReady   bool                   `json:"reset_ready"`
}

// View собирает снимок мира. Вызывается из того же цикла, что и Update.
func (g *Game) View() View {
	s := g.Store.Snapshot()
	v := View{
		Time:         g.ECS.GameTime,
		Session:      s,
		Player:       s.PlayerPosition,
		PlayerYaw:    g.PlayerSystem.Yaw(),
		GoalUnlocked: s.GoalUnlocked(),
		ResetReady:   g.ItemSystem.ResetReady(),
	}
	if body, ok := g.World.Body(system.PlayerBodyID); ok {
		v.Player = body.Position
	}

	if stage, err := g.Library.Stage(s.StageID); err == nil {
		v.Goal = stage.ScaledGoal()
		if stage.ResetSpot != nil {
			p := stage.ResetSpot.Vec()
			v.ResetSpot = &p
		}
	}

	v.Enemies = make([]EnemyView, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		ev := EnemyView{Enemy: e, Moving: g.AISystem.Moving(e.ID), Yaw: g.AISystem.Yaw(e.ID)}
		if body, ok := g.World.Body(e.ID); ok {
			ev.Position = body.Position
		}
		if stats, err := g.Library.Enemy(e.Type); err == nil {
			ev.MaxHealth = stats.MaxHealth
			ev.Color = stats.Color
			ev.Radius = stats.Radius
		}
		v.Enemies = append(v.Enemies, ev)
	}

	v.Projectiles = make([]component.Projectile, 0, len(g.ECS.Projectiles))
	for _, id := range g.ECS.ProjectileIDs() {
		v.Projectiles = append(v.Projectiles, *g.ECS.Projectiles[id])
	}
	v.Items = make([]component.ItemSpawn, 0, len(g.ECS.Items))
	for _, id := range g.ECS.ItemIDs() {
		if it := g.ECS.Items[id]; !it.Collected {
			v.Items = append(v.Items, *it)
		}
	}
	return v
}
