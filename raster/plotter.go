package raster

type phase int

const (
	phaseNeedLine phase = iota
	phaseForward
	phaseReturn
	phaseDone
)

// Plotter is a lazy, restartable pixel-scan motion generator.
// It is single-consumer and not concurrency-safe: one goroutine pulls
// motions via Next until exhausted.
type Plotter struct {
	cfg Config

	axisY bool
	uni   bool

	lineCount  int
	lineLength int

	initialDir  int
	initialPos  int
	initialLine int
	dLine       int

	initialX, initialY float64

	line  int
	dir   int
	pos   int
	low   int
	high  int
	phase phase
}

// NewPlotter builds a Plotter over cfg, computing its starting corner via
// the first non-blank line scan.
func NewPlotter(cfg Config) *Plotter {
	p := &Plotter{cfg: cfg}
	p.axisY = cfg.Traversal&YAxis != 0
	p.uni = cfg.Traversal&Unidirectional != 0
	bottom := cfg.Traversal&Bottom != 0
	right := cfg.Traversal&Right != 0

	if p.axisY {
		p.lineCount = cfg.Width
		p.lineLength = cfg.Height

		if right {
			p.initialLine, p.dLine = cfg.Width-1, -1
		} else {
			p.initialLine, p.dLine = 0, 1
		}
		if bottom {
			p.initialPos, p.initialDir = cfg.Height-1, -1
		} else {
			p.initialPos, p.initialDir = 0, 1
		}
	} else {
		p.lineCount = cfg.Height
		p.lineLength = cfg.Width

		if bottom {
			p.initialLine, p.dLine = cfg.Height-1, -1
		} else {
			p.initialLine, p.dLine = 0, 1
		}
		if right {
			p.initialPos, p.initialDir = cfg.Width-1, -1
		} else {
			p.initialPos, p.initialDir = 0, 1
		}
	}

	p.line = p.initialLine
	p.dir = p.initialDir
	p.phase = phaseNeedLine

	p.calculateFirstPixel()

	return p
}

// InitialX and InitialY return the scene coordinates of the corner the
// plotter will begin scanning from.
func (p *Plotter) InitialX() float64 { return p.initialX }
func (p *Plotter) InitialY() float64 { return p.initialY }

func (p *Plotter) calculateFirstPixel() {
	line := p.initialLine
	for i := 0; i < p.lineCount; i++ {
		low := p.leftmostNotEqual(line)
		if low != -1 {
			high := p.rightmostNotEqual(line)
			pos := low
			if p.initialDir < 0 {
				pos = high
			}
			p.initialX, p.initialY = p.scene(line, pos)

			return
		}
		line += p.dLine
	}
	p.initialX, p.initialY = p.scene(p.initialLine, p.initialPos)
}

func (p *Plotter) pix(line, pos int) int {
	if p.axisY {
		return p.cfg.at(line, pos)
	}

	return p.cfg.at(pos, line)
}

func (p *Plotter) scene(line, pos int) (float64, float64) {
	if p.axisY {
		return p.cfg.OffsetX + float64(line)*p.cfg.Step, p.cfg.OffsetY + float64(pos)*p.cfg.Step
	}

	return p.cfg.OffsetX + float64(pos)*p.cfg.Step, p.cfg.OffsetY + float64(line)*p.cfg.Step
}

func (p *Plotter) leftmostNotEqual(line int) int {
	for pos := 0; pos < p.lineLength; pos++ {
		if p.pix(line, pos) != p.cfg.SkipPixel {
			return pos
		}
	}

	return -1
}

func (p *Plotter) rightmostNotEqual(line int) int {
	for pos := p.lineLength - 1; pos >= 0; pos-- {
		if p.pix(line, pos) != p.cfg.SkipPixel {
			return pos
		}
	}

	return -1
}

func (p *Plotter) overscanPixels() int {
	if p.cfg.Overscan == nil {
		return 0
	}

	return p.cfg.Overscan.Pixels(p.lineLength, p.cfg.Step)
}

// Next pulls the next motion from the generator. It returns ok=false once
// every line has been exhausted, including on a blank image.
func (p *Plotter) Next() (Motion, bool) {
	for {
		switch p.phase {
		case phaseDone:
			return Motion{}, false

		case phaseNeedLine:
			if p.line < 0 || p.line >= p.lineCount {
				p.phase = phaseDone

				continue
			}

			low := p.leftmostNotEqual(p.line)
			if low == -1 {
				sx, sy := p.scene(p.line, p.pos)
				p.line += p.dLine

				return Motion{SceneX: sx, SceneY: sy, Emit: 0}, true
			}
			high := p.rightmostNotEqual(p.line)

			if next := p.line + p.dLine; next >= 0 && next < p.lineCount {
				if nlow := p.leftmostNotEqual(next); nlow != -1 {
					if nhigh := p.rightmostNotEqual(next); nhigh > high {
						high = nhigh
					}
					if nlow < low {
						low = nlow
					}
				}
			}

			ov := p.overscanPixels()
			p.low, p.high = low-ov, high+ov
			if p.dir > 0 {
				p.pos = p.low
			} else {
				p.pos = p.high
			}
			p.phase = phaseForward

		case phaseForward:
			if (p.dir > 0 && p.pos > p.high) || (p.dir < 0 && p.pos < p.low) {
				if p.uni {
					p.dir = -p.dir
					if p.dir > 0 {
						p.pos = p.low
					} else {
						p.pos = p.high
					}
					p.phase = phaseReturn

					continue
				}
				p.dir = -p.dir
				p.line += p.dLine
				p.phase = phaseNeedLine

				continue
			}

			value := p.pix(p.line, p.pos)
			emit := 0
			if value != p.cfg.SkipPixel {
				emit = p.cfg.filter(value)
			}
			sx, sy := p.scene(p.line, p.pos)
			p.pos += p.dir

			return Motion{SceneX: sx, SceneY: sy, Emit: emit}, true

		case phaseReturn:
			if (p.dir > 0 && p.pos > p.high) || (p.dir < 0 && p.pos < p.low) {
				p.dir = p.initialDir
				p.line += p.dLine
				p.phase = phaseNeedLine

				continue
			}

			value := p.pix(p.line, p.pos)
			emit := p.cfg.altFilter(value)
			sx, sy := p.scene(p.line, p.pos)
			p.pos += p.dir

			return Motion{SceneX: sx, SceneY: sy, Emit: emit}, true
		}
	}
}

// All drains the generator, returning every motion it yields. Intended for
// small test fixtures; callers driving real hardware should pull with Next.
func (p *Plotter) All() []Motion {
	var out []Motion
	for {
		m, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}
