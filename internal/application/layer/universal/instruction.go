package universal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
	"github.com/younwookim/retromenu/internal/infrastructure/font"
)

const (
	instructionLeftPx   = 20
	instructionBottomPx = 40
)

// InstructionText is the help line shown in every scene
const InstructionText = "Use W/S to navigate, Enter to select, Q/Esc to return."

// InstructionLayer prints InstructionText in the bottom-left corner
type InstructionLayer struct {
	font font.Font
	cfg  *config.Config
	text string
}

// NewInstructionLayer creates an instruction layer
func NewInstructionLayer(f font.Font, cfg *config.Config) *InstructionLayer {
	return &InstructionLayer{font: f, cfg: cfg, text: InstructionText}
}

func (l *InstructionLayer) Z() layer.Z { return layer.ZInstructions }
func (l *InstructionLayer) Update(dt float64) {}

func (l *InstructionLayer) Draw(screen *ebiten.Image) {
	x := l.cfg.ScaleValue(instructionLeftPx)
	y := l.cfg.ScreenHeight - l.cfg.ScaleValue(instructionBottomPx)
	l.font.Draw(screen, l.text, float64(x), float64(y), l.cfg.Theme.Instruction.Color())
}
