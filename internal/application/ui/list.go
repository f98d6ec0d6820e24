package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/retromenu/internal/application/input"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
	"github.com/younwookim/retromenu/internal/infrastructure/font"
)

// Base sizes before scaling
const (
	buttonWidthPx  = 300
	buttonHeightPx = 70
	buttonMarginPx = 30
)

// Navigation keys
var (
	KeysUp     = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	KeysDown   = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	KeysSelect = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace}
)

// Item is one entry of a ListLayer
type Item struct {
	Label string
	Key   string
}

// ListLayer shows a title above a vertical column of buttons, the whole
// block centered on screen. Keyboard navigation wraps around and is
// debounced on the time passed to Update; the mouse selects by hovering and
// activates by clicking. Lists too tall for the screen get smaller buttons.
type ListLayer struct {
	font     font.Font
	cfg      *config.Config
	title    string
	items    []Item
	onSelect func(Item)

	buttons  []Button
	titleY   int
	selected int

	// Debouncing runs on game time so replays behave like the recording
	debounce float64
	elapsed  float64
	lastNav  float64
	navved   bool
}

// NewListLayer lays out items below title; onSelect runs for the activated item
func NewListLayer(f font.Font, cfg *config.Config, title string, items []Item, onSelect func(Item)) *ListLayer {
	l := &ListLayer{
		font:     f,
		cfg:      cfg,
		title:    title,
		items:    items,
		onSelect: onSelect,
		debounce: float64(cfg.Menu.DebounceMS) / 1000,
	}
	l.layout()
	return l
}

func (l *ListLayer) layout() {
	bw := l.cfg.ScaleValue(buttonWidthPx)
	bh := l.cfg.ScaleValue(buttonHeightPx)
	margin := l.cfg.ScaleValue(buttonMarginPx)
	titleH := int(l.font.Height())

	n := len(l.items)
	total := titleH + margin + n*bh + max(n-1, 0)*margin

	// Long lists shrink buttons and gaps alike to fit between top and bottom margins
	if avail := l.cfg.ScreenHeight - 2*margin; n > 0 && total > avail {
		k := float64(avail-titleH) / float64(n*(bh+margin))
		bh = max(int(float64(bh)*k), 1)
		margin = max(int(float64(margin)*k), 0)
		total = titleH + margin + n*bh + (n-1)*margin
	}

	startY := (l.cfg.ScreenHeight - total) / 2
	l.titleY = startY

	x := (l.cfg.ScreenWidth - bw) / 2
	y0 := startY + titleH + margin
	l.buttons = make([]Button, n)
	for i, it := range l.items {
		y := y0 + i*(bh+margin)
		l.buttons[i] = Button{
			Rect:    image.Rect(x, y, x+bw, y+bh),
			Label:   it.Label,
			OnClick: func() { l.onSelect(it) },
		}
	}
}

// Z implements layer.Layer
func (l *ListLayer) Z() layer.Z { return layer.ZMenu }

// Selected returns the highlighted index
func (l *ListLayer) Selected() int { return l.selected }

// SetSelected highlights index i, ignoring out of range values
func (l *ListLayer) SetSelected(i int) {
	if i >= 0 && i < len(l.buttons) {
		l.selected = i
	}
}

// Buttons returns the laid out buttons
func (l *ListLayer) Buttons() []Button { return l.buttons }

// TitleY returns the top of the title line
func (l *ListLayer) TitleY() int { return l.titleY }

// SelectedRect implements layer.Selection
func (l *ListLayer) SelectedRect() (image.Rectangle, bool) {
	if len(l.buttons) == 0 {
		return image.Rectangle{}, false
	}
	return l.buttons[l.selected].Rect, true
}

// Update advances the clock navigation is debounced on
func (l *ListLayer) Update(dt float64) {
	l.elapsed += dt
}

// Draw implements layer.Layer
func (l *ListLayer) Draw(screen *ebiten.Image) {
	th := l.cfg.Theme
	tw, _ := l.font.Measure(l.title)
	l.font.Draw(screen, l.title, float64((l.cfg.ScreenWidth-int(tw))/2), float64(l.titleY), th.Title.Color())

	for i := range l.buttons {
		fill := th.ButtonNormal.Color()
		if i == l.selected {
			fill = th.ButtonSelected.Color()
		}
		l.buttons[i].Draw(screen, l.font, fill, th.Font.Color())
	}
}

// OnInput implements layer.InputHandler
func (l *ListLayer) OnInput(ev input.Event) bool {
	if len(l.buttons) == 0 {
		return false
	}

	switch ev.Type {
	case input.EventMouseMotion:
		if i := l.buttonAt(ev.X, ev.Y); i >= 0 {
			l.selected = i
		}
		return false
	case input.EventMouseButtonDown:
		if ev.Button != ebiten.MouseButtonLeft {
			return false
		}
		if i := l.buttonAt(ev.X, ev.Y); i >= 0 {
			l.selected = i
			l.buttons[i].Activate()
			return true
		}
		return false
	case input.EventKeyDown:
	default:
		return false
	}

	if l.navved && l.elapsed-l.lastNav < l.debounce {
		return false
	}
	l.lastNav = l.elapsed
	l.navved = true

	n := len(l.buttons)
	switch {
	case ev.IsKeyDown(KeysUp...):
		l.selected = (l.selected - 1 + n) % n
	case ev.IsKeyDown(KeysDown...):
		l.selected = (l.selected + 1) % n
	case ev.IsKeyDown(KeysSelect...):
		l.buttons[l.selected].Activate()
	default:
		return false
	}
	return true
}

func (l *ListLayer) buttonAt(x, y int) int {
	for i := range l.buttons {
		if l.buttons[i].Contains(x, y) {
			return i
		}
	}
	return -1
}
