package universal

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
	"github.com/younwookim/retromenu/internal/infrastructure/font"
)

var (
	colorStarText       = color.RGBA{90, 90, 120, 255}
	colorBackgroundText = color.RGBA{60, 60, 80, 255}
)

// starMarginPx is the base top/bottom margin of the star field
const starMarginPx = 20

// StarArt is the ASCII star field spread over the whole screen
var StarArt = []string{
	"     .       +  ':.  .      *              '            *  '",
	"                  '::._                                      ",
	"                    '._)                 * +              ' ",
	"                          .              .        |         ",
	"           .      o.               +            - o -.      ",
	" o'          '    .    /  .         o             |         ",
	"    .  *   '          /                         +           ",
	"   .                 *          '                      .    ",
	"                 .             .             .  .           ",
	"   *         .   .       .                   | '.           ",
	"  +          '+                .           - o -            ",
	"          .                                . |              ",
	"            '  '     ..                   +  .  . +.        ",
	"  .                              |          .-.             ",
	" '                 .'  * '     - o -         ) )            ",
	" +        '   .                   |          '-'         '  ",
	"                       +      .'                   '.       ",
	" .           .           o      .       . .      .          ",
	"                       '       . +~~                       .",
}

// BackgroundArt is drawn from the vertical middle of the screen downwards
var BackgroundArt = []string{
	"         /\\                  /\\            ",
	"    /\\  /  \\      /\\        /  \\    /\\    ",
	"   /  \\/    \\    /  \\  /\\  /    \\  /  \\   ",
	"  /    \\     \\__/    \\/  \\/      \\/    \\  ",
}

// Stretch pads the gaps between the characters of line with extra spaces so
// it spans roughly targetWidth pixels. Lines already wide enough and lines
// with fewer than two characters are returned unchanged.
func Stretch(line string, f font.Font, targetWidth int) string {
	current, _ := f.Measure(line)
	if current >= float64(targetWidth) {
		return line
	}
	runes := []rune(line)
	gaps := len(runes) - 1
	if gaps <= 0 {
		return line
	}
	space, _ := f.Measure(" ")
	if space <= 0 {
		return line
	}
	extra := int(math.Ceil((float64(targetWidth) - current) / (float64(gaps) * space)))
	pad := strings.Repeat(" ", extra)

	var b strings.Builder
	b.WriteRune(runes[0])
	for _, r := range runes[1:] {
		b.WriteString(pad)
		b.WriteRune(r)
	}
	return b.String()
}

// StarArtLayer draws StarArt evenly spaced between the top and bottom margins
type StarArtLayer struct {
	font font.Font
	cfg  *config.Config
	art  []string
}

// NewStarArtLayer creates a star field layer
func NewStarArtLayer(f font.Font, cfg *config.Config) *StarArtLayer {
	return &StarArtLayer{font: f, cfg: cfg, art: StarArt}
}

func (l *StarArtLayer) Z() layer.Z { return layer.ZStarArt }
func (l *StarArtLayer) Persistent() bool { return true }
func (l *StarArtLayer) Update(dt float64) {}

func (l *StarArtLayer) Draw(screen *ebiten.Image) {
	margin := l.cfg.ScaleValue(starMarginPx)
	available := float64(l.cfg.ScreenHeight - 2*margin)
	spacing := available
	if n := len(l.art); n > 1 {
		spacing = available / float64(n-1)
	}
	cx := l.cfg.ScreenWidth / 2
	for i, line := range l.art {
		y := float64(margin) + float64(i)*spacing
		font.DrawCentered(screen, l.font, Stretch(line, l.font, l.cfg.ScreenWidth), cx, int(y), colorStarText)
	}
}

// BackgroundArtLayer stacks BackgroundArt lines starting at mid-screen
type BackgroundArtLayer struct {
	font font.Font
	cfg  *config.Config
	art  []string
}

// NewBackgroundArtLayer creates a background art layer
func NewBackgroundArtLayer(f font.Font, cfg *config.Config) *BackgroundArtLayer {
	return &BackgroundArtLayer{font: f, cfg: cfg, art: BackgroundArt}
}

func (l *BackgroundArtLayer) Z() layer.Z { return layer.ZBackgroundArt }
func (l *BackgroundArtLayer) Persistent() bool { return true }
func (l *BackgroundArtLayer) Update(dt float64) {}

func (l *BackgroundArtLayer) Draw(screen *ebiten.Image) {
	y := float64(l.cfg.ScreenHeight) * 0.5
	cx := l.cfg.ScreenWidth / 2
	for _, line := range l.art {
		font.DrawCentered(screen, l.font, line, cx, int(y), colorBackgroundText)
		y += l.font.Height()
	}
}
