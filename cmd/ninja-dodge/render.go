package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ninja-dodge/component"
	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/engine"
	"github.com/lixenwraith/ninja-dodge/parameter"
	"github.com/lixenwraith/ninja-dodge/status"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// hudRows are reserved above the playfield
const hudRows = 2

var (
	styleDefault = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

var hazardGlyphs = [component.HazardKindCount][component.DirectionCount]rune{
	component.HazardKunai:        {'↓', '←', '→'},
	component.HazardShuriken:     {'✦', '✦', '✦'},
	component.HazardFireball:     {'●', '●', '●'},
	component.HazardSenbon:       {'|', '-', '-'},
	component.HazardExplosiveTag: {'▣', '▣', '▣'},
}

var enemyGlyphs = [component.EnemyKindCount]rune{
	component.EnemyGenin:  'g',
	component.EnemyChunin: 'C',
	component.EnemyJonin:  'J',
}

var powerUpGlyphs = [component.PowerUpKindCount]rune{
	component.PowerUpSpeed:      '»',
	component.PowerUpShield:     'O',
	component.PowerUpSlowTime:   '◷',
	component.PowerUpHealth:     '+',
	component.PowerUpMultiShot:  '≡',
	component.PowerUpInvincible: '★',
}

// fieldDim is the share of an entity's color kept behind the pause and game-over overlays
const fieldDim = 0.35

// fieldColor dims the playfield whenever the simulation is not running
func fieldColor(mode core.Mode, c core.RGB) core.RGB {
	if mode.Simulating() {
		return c
	}
	return core.RGBBlack.Blend(c, fieldDim)
}

func toColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// viewport maps world coordinates onto the terminal cells below the HUD
type viewport struct {
	cols, rows int
	world      vmath.Rect
}

func newViewport(screenW, screenH int, world vmath.Rect) viewport {
	rows := screenH - hudRows
	if rows < 1 {
		rows = 1
	}
	if screenW < 1 {
		screenW = 1
	}
	return viewport{cols: screenW, rows: rows, world: world}
}

// cell returns the terminal cell for a world point, clamped to the field
func (v viewport) cell(p vmath.Vec2) (int, int) {
	x := int((p.X - v.world.X) / v.world.W * float64(v.cols))
	y := int((p.Y - v.world.Y) / v.world.H * float64(v.rows))
	x = max(0, min(v.cols-1, x))
	y = max(0, min(v.rows-1, y))
	return x, y + hudRows
}

// span returns the inclusive cell range covered by a world rect, at least one cell
func (v viewport) span(r vmath.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.cell(r.Pos())
	x1, y1 = v.cell(vmath.Vec2{X: r.Right() - 0.001, Y: r.Bottom() - 0.001})
	return
}

// renderer draws session views to a tcell screen
type renderer struct {
	screen    tcell.Screen
	metrics   *status.Registry
	showDebug bool
	fps       int
}

func newRenderer(screen tcell.Screen, metrics *status.Registry) *renderer {
	return &renderer{screen: screen, metrics: metrics}
}

func (r *renderer) draw(v engine.View) {
	r.screen.Clear()
	w, h := r.screen.Size()
	vp := newViewport(w, h, v.World)

	switch v.Mode {
	case core.ModeSplash:
		r.drawSplash(w, h, v)
	case core.ModeMenu:
		r.drawMenu(w, h, v)
	case core.ModeSettings:
		r.drawSettings(w, h, v)
	case core.ModeAchievements:
		r.drawAchievements(w, h, v)
	case core.ModePlaying, core.ModePaused, core.ModeGameOver:
		r.drawField(vp, v)
		r.drawHUD(w, v)
		if v.Mode == core.ModePaused {
			r.drawPaused(w, h)
		}
		if v.Mode == core.ModeGameOver {
			r.drawGameOver(w, h, v)
		}
	}

	if v.Settings.ShowFPS {
		r.text(w-10, h-1, fmt.Sprintf("%3d fps", r.fps), styleDim)
	}
	if r.showDebug {
		r.drawDebug(w)
	}
	r.screen.Show()
}

func (r *renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *renderer) centered(w, y int, s string, style tcell.Style) {
	x := (w - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	r.text(x, y, s, style)
}

func (r *renderer) fill(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *renderer) drawSplash(w, h int, v engine.View) {
	mid := h / 2
	r.centered(w, mid-2, "N I N J A   D O D G E", styleTitle)
	r.centered(w, mid, "survive the storm of blades", styleDim)
	dots := strings.Repeat(".", (v.ModeTicks/10)%4)
	r.centered(w, mid+2, "loading"+dots, styleDim)
}

func (r *renderer) drawMenu(w, h int, v engine.View) {
	mid := h / 2
	r.centered(w, mid-5, "NINJA DODGE", styleTitle)
	r.centered(w, mid-3, fmt.Sprintf("High score: %d", v.HighScore), styleDefault)
	lines := []string{
		"[Enter] Start",
		"[S] Settings",
		"[A] Achievements",
		"[Q] Quit",
	}
	for i, l := range lines {
		r.centered(w, mid-1+i, l, styleDefault)
	}
	r.centered(w, mid+5, "arrows/wasd move  space dash  z special  p pause", styleDim)
}

func (r *renderer) drawSettings(w, h int, v engine.View) {
	mid := h / 2
	r.centered(w, mid-4, "SETTINGS", styleTitle)

	const barWidth = 20
	filled := int(v.Settings.Volume*barWidth + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	r.centered(w, mid-2, fmt.Sprintf("Volume  [-/+]  %s %3.0f%%", bar, v.Settings.Volume*100), styleDefault)
	r.centered(w, mid-1, fmt.Sprintf("Muted   [M]    %v", onOff(v.Settings.Muted)), styleDefault)
	r.centered(w, mid, fmt.Sprintf("FPS     [F]    %v", onOff(v.Settings.ShowFPS)), styleDefault)
	r.centered(w, mid+2, "[Esc] Back", styleDim)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (r *renderer) drawAchievements(w, h int, v engine.View) {
	top := h/2 - len(v.Achievements)/2 - 2
	r.centered(w, top, "ACHIEVEMENTS", styleTitle)
	unlocked := 0
	for i, a := range v.Achievements {
		mark, style := "[ ]", styleDim
		if a.Unlocked {
			mark, style = "[x]", styleDefault
			unlocked++
		}
		r.centered(w, top+2+i, fmt.Sprintf("%s %-14s %s", mark, a.Title, a.Description), style)
	}
	r.centered(w, top+3+len(v.Achievements), fmt.Sprintf("%d/%d unlocked   [Esc] Back", unlocked, len(v.Achievements)), styleDim)
}

func (r *renderer) drawField(vp viewport, v engine.View) {
	// Boundary markers at the field corners
	r.screen.SetContent(0, hudRows, '┌', nil, styleBorder)
	r.screen.SetContent(vp.cols-1, hudRows, '┐', nil, styleBorder)
	r.screen.SetContent(0, hudRows+vp.rows-1, '└', nil, styleBorder)
	r.screen.SetContent(vp.cols-1, hudRows+vp.rows-1, '┘', nil, styleBorder)

	for i := range v.Particles {
		p := &v.Particles[i]
		x, y := vp.cell(p.Pos)
		style := styleDefault.Foreground(toColor(fieldColor(v.Mode, p.Color.Scale(p.Fade()))))
		r.screen.SetContent(x, y, component.ParticleSpecs[p.Kind].Glyph, nil, style)
	}

	for i := range v.PowerUps {
		pu := &v.PowerUps[i]
		x0, y0, x1, y1 := vp.span(pu.Box)
		style := styleDefault.Foreground(toColor(fieldColor(v.Mode, component.PowerUpSpecs[pu.Kind].Color))).Bold(true)
		r.fill(x0, y0, x1, y1, powerUpGlyphs[pu.Kind], style)
	}

	for i := range v.Hazards {
		hz := &v.Hazards[i]
		x0, y0, x1, y1 := vp.span(hz.Box)
		style := styleDefault.Foreground(toColor(fieldColor(v.Mode, hz.Color)))
		r.fill(x0, y0, x1, y1, hazardGlyphs[hz.Kind][hz.Dir], style)
	}

	for i := range v.Enemies {
		e := &v.Enemies[i]
		x0, y0, x1, y1 := vp.span(e.Box)
		style := styleDefault.Foreground(toColor(fieldColor(v.Mode, e.Spec().Color))).Bold(true)
		r.fill(x0, y0, x1, y1, enemyGlyphs[e.Kind], style)
	}

	r.drawPlayer(vp, v)
}

func (r *renderer) drawPlayer(vp viewport, v engine.View) {
	p := &v.Player
	color := core.RGBWhite
	switch {
	case p.Status.Active(component.StatusInvincible):
		color = core.RGBGold
	case p.Status.Active(component.StatusShield):
		color = core.RGBBlue
	case p.Special.Active:
		color = core.RGBPurple
	case p.Dash.Active:
		color = core.RGBCyan
	}
	if p.Dead() {
		color = core.RGBRed.Scale(0.5)
	}
	x0, y0, x1, y1 := vp.span(p.Box)
	style := styleDefault.Background(toColor(fieldColor(v.Mode, color))).Foreground(tcell.ColorBlack)
	r.fill(x0, y0, x1, y1, ' ', style)
	cx, cy := vp.cell(p.Center())
	r.screen.SetContent(cx, cy, '@', nil, style)
}

func (r *renderer) drawHUD(w int, v engine.View) {
	r.fill(0, 0, w-1, hudRows-1, ' ', styleHUD)

	hearts := strings.Repeat("♥", v.Player.Health) + strings.Repeat("·", max(0, v.Player.MaxHealth-v.Player.Health))
	line := fmt.Sprintf(" Score %-6d Level %-3d Stage %d  %s  %5.1fs  Best %d",
		v.Score, v.Level, v.Stage, hearts, v.Elapsed.Seconds(), v.HighScore)
	r.text(0, 0, line, styleHUD)

	var parts []string
	parts = append(parts, abilityLabel("dash", v.Player.Dash))
	parts = append(parts, abilityLabel("special", v.Player.Special))
	for k := component.StatusKind(0); k < component.StatusCount; k++ {
		if rem := v.Player.Status.Remaining(k); v.Player.Status.Active(k) {
			parts = append(parts, fmt.Sprintf("%s %.1fs", k, ticksToSeconds(rem)))
		}
	}
	r.text(0, 1, " "+strings.Join(parts, "  "), styleHUD)
}

func abilityLabel(name string, a component.Ability) string {
	switch {
	case a.Active:
		return name + " ACTIVE"
	case a.Ready():
		return name + " ready"
	default:
		return fmt.Sprintf("%s %.1fs", name, ticksToSeconds(a.Cooldown))
	}
}

func ticksToSeconds(ticks int) float64 {
	return float64(ticks) / parameter.TicksPerSecond
}

func (r *renderer) drawPaused(w, h int) {
	mid := h / 2
	r.centered(w, mid-1, " PAUSED ", styleTitle.Reverse(true))
	r.centered(w, mid+1, "[P] Resume   [Esc] Menu", styleDefault)
}

func (r *renderer) drawGameOver(w, h int, v engine.View) {
	mid := h / 2
	r.centered(w, mid-4, " GAME OVER ", styleTitle.Reverse(true))
	r.centered(w, mid-2, fmt.Sprintf("Score %d   Level %d   Survived %.1fs", v.Score, v.Level, v.Elapsed.Seconds()), styleDefault)
	r.centered(w, mid-1, fmt.Sprintf("Power-ups %d   Dashes %d   Enemies defeated %d", v.PowerUpsCollected, v.DashCount, v.EnemiesDefeated), styleDefault)
	if v.NewHighScore {
		r.centered(w, mid+1, "NEW HIGH SCORE!", styleTitle)
	} else {
		r.centered(w, mid+1, fmt.Sprintf("High score %d", v.HighScore), styleDim)
	}
	r.centered(w, mid+3, "[R] Restart   [Esc] Menu", styleDefault)
}

func (r *renderer) drawDebug(w int) {
	if r.metrics == nil {
		return
	}
	entries := r.metrics.Snapshot()
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Key)+len(e.Value)+3)
	}
	x := w - width - 1
	if x < 0 {
		x = 0
	}
	style := styleDim.Background(tcell.ColorBlack)
	for i, e := range entries {
		r.text(x, hudRows+i, fmt.Sprintf(" %s %*s ", e.Key, width-len(e.Key)-3, e.Value), style)
	}
}
