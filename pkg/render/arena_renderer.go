// pkg/render/arena_renderer.go
package render

import (
	"image/color"
	"math"

	"go-keyhunt/internal/app"
	"go-keyhunt/internal/component"
	"go-keyhunt/internal/config"
	"go-keyhunt/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	gridStep         = 5.0 // метров между линиями сетки
	firstPersonZoom  = 3.0
	enemyDrawRadius  = 0.5
	itemDrawRadius   = 0.35
	healthBarWidth   = 30
	healthBarHeight  = 4
	aimLineLength    = 4.0
	facingLineLength = 1.2
)

// ArenaRenderer рисует мир сверху по снимку app.View.
type ArenaRenderer struct {
	Colors   ArenaColors
	viewport utils.Viewport
	fontFace font.Face
}

func NewArenaRenderer(screenWidth, screenHeight int, face font.Face) *ArenaRenderer {
	return &ArenaRenderer{
		Colors: ArenaColors{
			Background:   config.BackgroundColor,
			Grid:         config.GridColor,
			Player:       config.PlayerColor,
			Aim:          config.AimColor,
			Key:          config.KeyColor,
			Heart:        config.HeartColor,
			Ammo:         config.AmmoColor,
			GoalLocked:   config.GoalLockedColor,
			GoalOpen:     config.GoalOpenColor,
			ResetReady:   config.ResetReadyColor,
			ResetCool:    config.ResetCoolColor,
			PlayerBullet: config.PlayerBulletColor,
			EnemyBullet:  config.EnemyBulletColor,
			HealthFill:   config.HealthFillColor,
			HealthBack:   config.HealthBackColor,
			Text:         config.TextLightColor,
			StrokeWidth:  2,
		},
		viewport: utils.Viewport{
			Scale:  config.PixelsPerMeter,
			Width:  screenWidth,
			Height: screenHeight,
		},
		fontFace: face,
	}
}

// Viewport возвращает проекцию последнего кадра, чтобы экран мог
// перевести курсор в мировые координаты.
func (r *ArenaRenderer) Viewport() utils.Viewport {
	return r.viewport
}

// Focus центрирует камеру на игроке; в режиме от первого лица масштаб крупнее.
func (r *ArenaRenderer) Focus(v app.View) {
	r.viewport.Follow(v.Player.X, v.Player.Z)
	r.viewport.Scale = config.PixelsPerMeter
	if v.Session.CameraMode == component.CameraFirst {
		r.viewport.Scale *= firstPersonZoom
	}
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, v app.View) {
	r.Focus(v)
	screen.Fill(r.Colors.Background)
	r.drawGrid(screen)
	r.drawGoal(screen, v)
	r.drawResetSpot(screen, v)
	for _, it := range v.Items {
		r.drawItem(screen, it)
	}
	for _, e := range v.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range v.Projectiles {
		r.drawProjectile(screen, p)
	}
	r.drawPlayer(screen, v)
}

func (r *ArenaRenderer) drawGrid(screen *ebiten.Image) {
	vp := r.viewport
	halfW := float64(vp.Width) / 2 / vp.Scale
	halfH := float64(vp.Height) / 2 / vp.Scale

	for x := math.Floor((vp.CenterX-halfW)/gridStep) * gridStep; x <= vp.CenterX+halfW; x += gridStep {
		sx, _ := vp.ToScreen(x, 0)
		vector.StrokeLine(screen, sx, 0, sx, float32(vp.Height), 1, r.Colors.Grid, false)
	}
	for z := math.Floor((vp.CenterZ-halfH)/gridStep) * gridStep; z <= vp.CenterZ+halfH; z += gridStep {
		_, sy := vp.ToScreen(0, z)
		vector.StrokeLine(screen, 0, sy, float32(vp.Width), sy, 1, r.Colors.Grid, false)
	}
}

func (r *ArenaRenderer) drawGoal(screen *ebiten.Image, v app.View) {
	sx, sy := r.viewport.ToScreen(v.Goal.X, v.Goal.Z)
	radius := float32(config.GoalRadius * r.viewport.Scale)
	c := r.Colors.GoalLocked
	if v.GoalUnlocked {
		c = r.Colors.GoalOpen
	}
	vector.DrawFilledCircle(screen, sx, sy, radius, DarkenColor(c), true)
	vector.StrokeCircle(screen, sx, sy, radius, r.Colors.StrokeWidth, c, true)
	r.label(screen, "GOAL", sx, sy)
}

func (r *ArenaRenderer) drawResetSpot(screen *ebiten.Image, v app.View) {
	if v.ResetSpot == nil {
		return
	}
	sx, sy := r.viewport.ToScreen(v.ResetSpot.X, v.ResetSpot.Z)
	c := r.Colors.ResetCool
	if v.ResetReady {
		c = r.Colors.ResetReady
	}
	vector.StrokeCircle(screen, sx, sy, float32(config.ResetSpotRadius*r.viewport.Scale), r.Colors.StrokeWidth, c, true)
}

func (r *ArenaRenderer) drawItem(screen *ebiten.Image, it component.ItemSpawn) {
	if !r.viewport.Visible(it.Position.X, it.Position.Z, itemDrawRadius) {
		return
	}
	sx, sy := r.viewport.ToScreen(it.Position.X, it.Position.Z)
	size := float32(itemDrawRadius * r.viewport.Scale)
	switch it.Kind {
	case component.ItemKey:
		vector.DrawFilledCircle(screen, sx, sy, size, r.Colors.Key, true)
	case component.ItemHeart:
		vector.DrawFilledCircle(screen, sx-size/2, sy, size*0.7, r.Colors.Heart, true)
		vector.DrawFilledCircle(screen, sx+size/2, sy, size*0.7, r.Colors.Heart, true)
	case component.ItemAmmo:
		vector.DrawFilledRect(screen, sx-size, sy-size/2, size*2, size, r.Colors.Ammo, true)
	}
}

func (r *ArenaRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	size := e.Radius
	if size <= 0 {
		size = enemyDrawRadius
	}
	if !r.viewport.Visible(e.Position.X, e.Position.Z, size) {
		return
	}
	sx, sy := r.viewport.ToScreen(e.Position.X, e.Position.Z)
	radius := float32(size * r.viewport.Scale)
	body := colorOr(e.Color, r.Colors.HealthBack)
	if !e.Moving {
		body = DarkenColor(body)
	}
	vector.DrawFilledCircle(screen, sx, sy, radius, body, true)

	fx, fy := r.viewport.ToScreen(
		e.Position.X+math.Sin(e.Yaw)*facingLineLength,
		e.Position.Z+math.Cos(e.Yaw)*facingLineLength,
	)
	vector.StrokeLine(screen, sx, sy, fx, fy, r.Colors.StrokeWidth, body, true)

	// полоска здоровья
	ratio := float32(1)
	if e.MaxHealth > 0 {
		ratio = float32(e.Health) / float32(e.MaxHealth)
	}
	bx := sx - healthBarWidth/2
	by := sy - radius - healthBarHeight - 4
	vector.DrawFilledRect(screen, bx, by, healthBarWidth, healthBarHeight, r.Colors.HealthBack, false)
	vector.DrawFilledRect(screen, bx, by, healthBarWidth*ratio, healthBarHeight, r.Colors.HealthFill, false)
}

func (r *ArenaRenderer) drawProjectile(screen *ebiten.Image, p component.Projectile) {
	if !p.Active {
		return
	}
	sx, sy := r.viewport.ToScreen(p.Position.X, p.Position.Z)
	c := r.Colors.PlayerBullet
	if p.Owner == component.OwnerEnemy {
		c = r.Colors.EnemyBullet
	}
	radius := float32(math.Max(p.Radius*r.viewport.Scale, 2))
	vector.DrawFilledCircle(screen, sx, sy, radius, c, true)
}

func (r *ArenaRenderer) drawPlayer(screen *ebiten.Image, v app.View) {
	sx, sy := r.viewport.ToScreen(v.Player.X, v.Player.Z)
	ax, ay := r.viewport.ToScreen(
		v.Player.X+math.Sin(v.PlayerYaw)*aimLineLength,
		v.Player.Z+math.Cos(v.PlayerYaw)*aimLineLength,
	)
	vector.StrokeLine(screen, sx, sy, ax, ay, 1, r.Colors.Aim, true)
	vector.DrawFilledCircle(screen, sx, sy, float32(config.PlayerRadius*r.viewport.Scale), r.Colors.Player, true)
}

func (r *ArenaRenderer) label(screen *ebiten.Image, s string, x, y float32) {
	if r.fontFace == nil {
		return
	}
	b := text.BoundString(r.fontFace, s)
	text.Draw(screen, s, r.fontFace, int(x)-b.Dx()/2, int(y)+b.Dy()/2, color.White)
}
