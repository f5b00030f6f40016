package render

import (
	"math"

	"github.com/akmonengine/feather2d"
	"github.com/akmonengine/feather2d/actor"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// a terminal cell is about twice as tall as it is wide
	cellAspect = 2.0

	bodyRune      = 'o'
	outlineRune   = '·'
	containerRune = '.'
	cornerRune    = '+'
)

var (
	styleBody      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatic    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	stylePolygon   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleContainer = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Terminal draws the world as characters on a tcell screen.
// World +y points up the screen.
type Terminal struct {
	screen tcell.Screen

	// Half size of the visible world square
	Extent float64
	// World point drawn at the middle of the screen, ignored when FollowContainer is set
	Center          mgl64.Vec2
	FollowContainer bool

	// Status is printed on the first row, if not empty
	Status string
}

func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:          screen,
		Extent:          1.0,
		FollowContainer: true,
	}
}

func (t *Terminal) Render(w *feather2d.World) error {
	width, height := t.screen.Size()
	if width <= 0 || height <= 0 {
		return ErrNoSpace
	}

	t.screen.Clear()

	view := t.viewport(w, width, height)

	if w.Container != nil {
		t.drawRing(view, w.Container.Position(), w.Container.Radius(), containerRune, styleContainer)
	}

	for _, body := range w.Bodies {
		switch body.Shape.Type() {
		case actor.ShapeTypePolygon:
			t.drawPolygon(view, body.WorldCorners())
		default:
			style := styleBody
			if body.InverseMass() == 0 {
				style = styleStatic
			}
			t.drawRing(view, body.Position(), body.Radius(), outlineRune, style)
			t.set(view, body.Position(), bodyRune, style)
		}
	}

	if t.Status != "" {
		for i, r := range []rune(t.Status) {
			if i >= width {
				break
			}
			t.screen.SetContent(i, 0, r, nil, styleStatus)
		}
	}

	t.screen.Show()

	return nil
}

// viewport maps world coordinates to cells for one frame
type viewport struct {
	center        mgl64.Vec2
	originX       float64
	originY       float64
	cellsPerUnit  float64
	width, height int
}

func (t *Terminal) viewport(w *feather2d.World, width, height int) viewport {
	center := t.Center
	if t.FollowContainer && w.Container != nil {
		center = w.Container.Position()
	}

	extent := t.Extent
	if !(extent > 0) {
		extent = 1
	}

	// fit the square [-extent, extent]² in the screen
	rows := math.Min(float64(width)/cellAspect, float64(height))

	return viewport{
		center:       center,
		originX:      float64(width) / 2,
		originY:      float64(height) / 2,
		cellsPerUnit: rows / (2 * extent),
		width:        width,
		height:       height,
	}
}

// toCell returns the cell showing a world point, ok is false when it is off screen
func (v viewport) toCell(p mgl64.Vec2) (x, y int, ok bool) {
	d := p.Sub(v.center)
	x = int(math.Floor(v.originX + d.X()*v.cellsPerUnit*cellAspect))
	y = int(math.Floor(v.originY - d.Y()*v.cellsPerUnit))

	return x, y, x >= 0 && y >= 0 && x < v.width && y < v.height
}

func (t *Terminal) set(v viewport, p mgl64.Vec2, r rune, style tcell.Style) {
	if x, y, ok := v.toCell(p); ok {
		t.screen.SetContent(x, y, r, nil, style)
	}
}

func (t *Terminal) drawRing(v viewport, center mgl64.Vec2, radius float64, r rune, style tcell.Style) {
	// one sample per cell along the circumference
	samples := int(2*math.Pi*radius*v.cellsPerUnit*cellAspect) + 8
	for i := range samples {
		angle := 2 * math.Pi * float64(i) / float64(samples)
		t.set(v, center.Add(actor.Rotate(mgl64.Vec2{radius, 0}, angle)), r, style)
	}
}

func (t *Terminal) drawPolygon(v viewport, corners []mgl64.Vec2) {
	for i, from := range corners {
		to := corners[(i+1)%len(corners)]
		edge := to.Sub(from)

		samples := int(edge.Len()*v.cellsPerUnit*cellAspect) + 2
		for s := range samples {
			t.set(v, from.Add(edge.Mul(float64(s)/float64(samples))), outlineRune, stylePolygon)
		}
	}

	for _, corner := range corners {
		t.set(v, corner, cornerRune, stylePolygon)
	}
}
