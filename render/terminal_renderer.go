package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sky-dodger/component"
	"github.com/lixenwraith/sky-dodger/engine"
	"github.com/lixenwraith/sky-dodger/parameter"
	"github.com/lixenwraith/sky-dodger/score"
	"github.com/lixenwraith/sky-dodger/system"
	"github.com/lixenwraith/sky-dodger/terrain"
	"github.com/lixenwraith/sky-dodger/vmath"
)

// Options toggles optional scene layers
type Options struct {
	Stars       bool
	Decorations bool
	Seed        uint64 // Starfield layout
}

// Overlay carries host state that is not part of the simulation
type Overlay struct {
	Paused bool
	Muted  bool
}

type star struct {
	fx, fy float64 // Fractions of the sky area
}

// TerminalRenderer draws simulation snapshots onto a tcell screen
// It only reads snapshots, all state it owns is presentation state
type TerminalRenderer struct {
	screen      tcell.Screen
	camera      *Camera
	mesh        *terrain.Mesh
	decorations []terrain.Decoration
	stars       []star
	opts        Options

	width, height int
	zbuf          []float64
}

// NewTerminalRenderer creates a renderer for a fixed mesh and decoration set
func NewTerminalRenderer(screen tcell.Screen, mesh *terrain.Mesh, decorations []terrain.Decoration, opts Options) *TerminalRenderer {
	w, h := screen.Size()
	r := &TerminalRenderer{
		screen:      screen,
		camera:      NewCamera(w, max(h-parameter.HUDRows, 0)),
		mesh:        mesh,
		decorations: decorations,
		opts:        opts,
	}
	r.Resize(w, h)

	rng := vmath.NewFastRand(opts.Seed)
	r.stars = make([]star, parameter.StarCount)
	for i := range r.stars {
		r.stars[i] = star{fx: rng.Float64(), fy: rng.Float64()}
	}
	return r
}

// Camera exposes the chase camera
func (r *TerminalRenderer) Camera() *Camera {
	return r.camera
}

// Resize adapts buffers to a new terminal size
func (r *TerminalRenderer) Resize(width, height int) {
	r.width, r.height = width, height
	viewH := max(height-parameter.HUDRows, 0)
	r.camera.Resize(width, viewH)
	r.zbuf = make([]float64, width*viewH)
}

// ResetCamera snaps the camera back, used on restart
func (r *TerminalRenderer) ResetCamera() {
	r.camera.Reset()
}

// RenderFrame draws one frame and shows it
func (r *TerminalRenderer) RenderFrame(s engine.Snapshot, ov Overlay) {
	r.screen.Clear()
	for i := range r.zbuf {
		r.zbuf[i] = math.Inf(1)
	}

	r.camera.Follow(s.Pose)
	proj := r.camera.Projection()

	r.drawSky()
	r.drawTerrain(proj)
	if r.opts.Decorations {
		r.drawDecorations(proj)
	}
	for i := range s.Obstacles {
		r.drawObstacle(proj, &s.Obstacles[i])
	}
	r.drawAircraft(proj, s)

	r.drawHUD(s, ov)
	r.drawLeaderboard(s)

	switch {
	case s.Phase == engine.PhaseGameOver:
		r.drawGameOver(s)
	case ov.Paused:
		r.drawBanner(parameter.PausedBanner)
	}

	r.screen.Show()
}

// plot writes a scene cell if it is nearer than what is already there
func (r *TerminalRenderer) plot(x, y int, depth float64, ch rune, fg RGB) {
	if !r.camera.InView(x, y) {
		return
	}
	idx := y*r.width + x
	if depth >= r.zbuf[idx] {
		return
	}
	r.zbuf[idx] = depth
	style := tcell.StyleDefault.Background(RGBToTcell(RgbSky)).Foreground(RGBToTcell(Fog(fg, depth, r.camera.Far)))
	r.screen.SetContent(x, y+parameter.HUDRows, ch, nil, style)
}

func (r *TerminalRenderer) drawSky() {
	skyStyle := tcell.StyleDefault.Background(RGBToTcell(RgbSky))
	viewH := r.camera.Height
	for y := 0; y < viewH; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y+parameter.HUDRows, ' ', nil, skyStyle)
		}
	}

	if !r.opts.Stars {
		return
	}
	starStyle := skyStyle.Foreground(RGBToTcell(RgbStar))
	for _, st := range r.stars {
		x := int(st.fx * float64(r.width))
		y := int(st.fy * float64(viewH) / 2)
		r.screen.SetContent(x, y+parameter.HUDRows, parameter.StarRune, nil, starStyle)
	}
}

func (r *TerminalRenderer) drawTerrain(proj Projection) {
	if r.mesh == nil {
		return
	}
	n := r.mesh.Resolution + 1
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			wx, wz := r.mesh.WorldXZ(i, j)
			h := r.mesh.At(i, j)
			x, y, depth, ok := proj.Project(vmath.Vec3F{X: wx, Y: h, Z: wz})
			if !ok {
				continue
			}
			r.plot(x, y, depth, parameter.TerrainRune, TerrainColor(h, r.mesh.MinHeight, r.mesh.MaxHeight))
		}
	}
}

func (r *TerminalRenderer) drawDecorations(proj Projection) {
	for _, d := range r.decorations {
		color := DecorationColor(d.Kind)
		glyph := parameter.RockRune
		top := d.Position
		if d.Kind == terrain.DecorationTree {
			glyph = parameter.TreeRune
			top.Y += d.Trunk + d.Shape.Size
		} else {
			top.Y += d.Shape.Size
		}
		r.drawColumn(proj, d.Position, top, glyph, color)
	}
}

// drawColumn draws a vertical stroke between two projected points
func (r *TerminalRenderer) drawColumn(proj Projection, base, top vmath.Vec3F, glyph rune, color RGB) {
	bx, by, bd, ok1 := proj.Project(base)
	_, ty, _, ok2 := proj.Project(top)
	if !ok1 {
		return
	}
	if !ok2 {
		ty = by
	}
	if ty > by {
		ty, by = by, ty
	}
	for y := ty; y <= by; y++ {
		r.plot(bx, y, bd, glyph, color)
	}
}

var obstacleGlyphs = [component.ShapeKindCount]rune{
	component.ShapeRing:     parameter.RingRune,
	component.ShapeWall:     parameter.WallRune,
	component.ShapePoly:     parameter.PolyRune,
	component.ShapeCombined: parameter.ComboRune,
}

func (r *TerminalRenderer) drawObstacle(proj Projection, o *component.ObstacleComponent) {
	glyph := parameter.PolyRune
	if int(o.Kind) < len(obstacleGlyphs) {
		glyph = obstacleGlyphs[o.Kind]
	}
	color := ObstacleColor(o.Kind)

	if o.Kind == component.ShapeCombined {
		for _, p := range o.Parts {
			r.drawBox(proj, p.Bounds().Translate(o.Position), glyph, color, false)
		}
		return
	}
	r.drawBox(proj, o.Bounds(), glyph, color, o.Kind == component.ShapeRing)
}

// drawBox fills the screen rectangle covering a projected box, outline only when hollow
func (r *TerminalRenderer) drawBox(proj Projection, b vmath.AABB, glyph rune, color RGB, hollow bool) {
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	nearest := math.Inf(1)
	visible := false

	for _, c := range b.Corners() {
		x, y, depth, ok := proj.Project(c)
		if !ok {
			continue
		}
		visible = true
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
		nearest = math.Min(nearest, depth)
	}
	if !visible {
		return
	}

	minX, maxX = max(minX, 0), min(maxX, r.camera.Width-1)
	minY, maxY = max(minY, 0), min(maxY, r.camera.Height-1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			edge := x == minX || x == maxX || y == minY || y == maxY
			if hollow && !edge {
				continue
			}
			r.plot(x, y, nearest, glyph, color)
		}
	}
}

func (r *TerminalRenderer) drawAircraft(proj Projection, s engine.Snapshot) {
	x, y, depth, ok := proj.Project(s.Pose.Position)
	if !ok {
		return
	}
	color := RgbAircraft
	if s.Phase == engine.PhaseGameOver {
		color = Scale(color, 0.5)
	}
	// Aircraft always draws over scenery at its own cell
	r.plot(x, y, math.Min(depth, proj.near), parameter.AircraftRune, color)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= r.width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

func (r *TerminalRenderer) drawHUD(s engine.Snapshot, ov Overlay) {
	style := tcell.StyleDefault.Background(RgbPanelBg).Foreground(RgbHUD)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	speed := vmath.V3FMag(s.Velocity)
	hud := fmt.Sprintf(" SCORE %d  SPD %.1f  ALT %.0f  NEXT %.2fs  OBS %d  HI %d",
		int(s.Score), speed, s.Altitude, s.Field.Interval, s.Field.Count, bestScore(s.Leaderboard))
	if ov.Muted {
		hud += "  [muted]"
	}
	r.drawText(0, 0, hud, style)
}

func (r *TerminalRenderer) drawLeaderboard(s engine.Snapshot) {
	if r.width < parameter.LeaderboardWidth*2 {
		return
	}
	x := r.width - parameter.LeaderboardWidth
	y := parameter.HUDRows + 1
	title := tcell.StyleDefault.Background(RgbPanelBg).Foreground(RgbHighScore)
	body := tcell.StyleDefault.Background(RgbPanelBg).Foreground(RgbHUDDim)

	r.drawText(x, y, pad(" HIGH SCORES", parameter.LeaderboardWidth), title)
	for i := 0; i < parameter.LeaderboardCapacity; i++ {
		line := fmt.Sprintf(" %d. ---", i+1)
		if i < len(s.Leaderboard) {
			e := s.Leaderboard[i]
			line = fmt.Sprintf(" %d. %-4d %s", i+1, e.Score, shortTime(e.Timestamp))
		}
		r.drawText(x, y+1+i, pad(line, parameter.LeaderboardWidth), body)
	}
}

func (r *TerminalRenderer) drawGameOver(s engine.Snapshot) {
	lines := []string{
		parameter.GameOverTitle,
		"",
		crashCause(s.LastCrash),
		fmt.Sprintf("Final score: %d", s.FinalScore),
	}
	if s.NewHighScore {
		lines = append(lines, "NEW HIGH SCORE!")
	}
	lines = append(lines, "", parameter.RestartHint)

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4

	top := (r.height - len(lines)) / 2
	left := (r.width - width) / 2
	box := tcell.StyleDefault.Background(RgbPanelBg).Foreground(RgbHUD)
	for i, l := range lines {
		style := box
		switch {
		case i == 0:
			style = box.Foreground(RgbGameOver).Bold(true)
		case l == "NEW HIGH SCORE!":
			style = box.Foreground(RgbHighScore).Bold(true)
		}
		r.drawText(left, top+i, center(l, width), style)
	}
}

func (r *TerminalRenderer) drawBanner(text string) {
	style := tcell.StyleDefault.Background(RgbPanelBg).Foreground(RgbHighScore).Bold(true)
	r.drawText((r.width-len([]rune(text)))/2, r.height/2, text, style)
}

func crashCause(c system.Collision) string {
	switch c.Result {
	case system.CollisionGround:
		return "Crashed into the ground"
	case system.CollisionObstacle:
		return fmt.Sprintf("Hit a %s", c.Kind)
	default:
		return ""
	}
}

func bestScore(entries []score.Entry) int {
	if len(entries) == 0 {
		return 0
	}
	return entries[0].Score
}

// shortTime trims the date off a leaderboard timestamp when it fits the layout
func shortTime(ts string) string {
	if len(ts) == len(parameter.ScoreTimestampLayout) {
		return ts[5:16]
	}
	return ts
}

func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return string([]rune(s)[:width])
	}
	return s + spaces(width-n)
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return spaces(left) + s + spaces(width-n-left)
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}
