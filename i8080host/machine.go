package i8080host

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/go8080/invaders/i8080"
	"github.com/go8080/invaders/internal/logger"
)

// clockHz and framesPerSecond fix the real-time rate spec.md §5 requires
// the driver preserve: ~2,000,000 simulated cycles per second delivered
// as two interrupts per ~16ms frame (mid-screen and end-of-vblank
// proxies), rather than any particular thread layout.
const (
	clockHz         = 2000000
	framesPerSecond = 60

	cyclesPerFrame    = clockHz / framesPerSecond
	cyclesPerHalfDraw = cyclesPerFrame / 2
)

// buttons maps host keys to the cabinet's coin/start/fire/move switches,
// same layout the teacher's InvadersMachine used for port 1.
var buttons = map[sdl.Keycode]struct {
	port uint8
	mask uint8
}{
	sdl.K_c:      {1, 0x01}, // coin
	sdl.K_RETURN: {1, 0x04}, // P1 start
	sdl.K_SPACE:  {1, 0x10}, // P1 fire
	sdl.K_LEFT:   {1, 0x20}, // P1 left
	sdl.K_RIGHT:  {1, 0x40}, // P1 right
}

// Machine is the single-threaded Space Invaders driver spec.md §5
// describes as the alternative to a two-thread design: it advances the
// CPU a budgeted number of cycles, services an interrupt, and repeats,
// interleaving host input and presentation in the same loop.
type Machine struct {
	cpu    *i8080.CPU
	io     *i8080.ArcadeIO
	screen *screen

	nextInterrupt uint8
	debug         bool
}

// Config holds the knobs cmd/invaders8080 exposes on the command line.
type Config struct {
	Scale    int
	Debug    bool
	Headless bool
}

// New constructs a Machine around cpu, which must already have the ROM
// loaded at address 0. In headless mode no window is created and Run
// drives the CPU for exactly one simulated second before returning,
// which is enough to smoke-test a ROM without a display.
func New(cpu *i8080.CPU, cfg Config) (*Machine, error) {
	io := i8080.NewArcadeIO()
	cpu.AttachIO(io)

	m := &Machine{cpu: cpu, io: io, nextInterrupt: 1, debug: cfg.Debug}

	if cfg.Headless {
		return m, nil
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, err
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 2
	}
	scr, err := newScreen(scale)
	if err != nil {
		sdl.Quit()
		return nil, err
	}
	m.screen = scr
	return m, nil
}

// Close releases the SDL window and subsystems, a no-op in headless mode.
func (m *Machine) Close() {
	if m.screen != nil {
		m.screen.destroy()
		sdl.Quit()
	}
}

// Run drives the cabinet until the window is closed (interactive mode)
// or one simulated second has elapsed (headless mode), per §5's
// single-threaded budgeted-cycles-per-frame design.
func (m *Machine) Run() error {
	if m.screen == nil {
		return m.runHeadless()
	}

	frameDuration := time.Second / framesPerSecond
	running := true
	for running {
		start := time.Now()
		running = m.pollEvents()

		if err := m.runOneFrame(); err != nil {
			return err
		}
		m.screen.draw(m.cpu.Memory())

		if elapsed := time.Since(start); elapsed < frameDuration {
			time.Sleep(frameDuration - elapsed)
		}
	}
	return nil
}

func (m *Machine) runHeadless() error {
	for frame := 0; frame < int(framesPerSecond); frame++ {
		if err := m.runOneFrame(); err != nil {
			return err
		}
	}
	return nil
}

// runOneFrame advances the CPU through two half-frame cycle budgets,
// raising the mid-screen and end-of-screen interrupts (1 and 2,
// alternating per §5) between them.
func (m *Machine) runOneFrame() error {
	for half := 0; half < 2; half++ {
		if err := m.runCycles(cyclesPerHalfDraw); err != nil {
			return err
		}
		if m.cpu.InterruptsEnabled() {
			m.cpu.RaiseInterrupt(m.nextInterrupt)
		}
		if m.nextInterrupt == 1 {
			m.nextInterrupt = 2
		} else {
			m.nextInterrupt = 1
		}
	}
	return nil
}

func (m *Machine) runCycles(budget int) error {
	spent := 0
	for spent < budget {
		cycles, err := m.cpu.Step()
		if err != nil {
			logger.Logf("cpu", "halted at pc=%04X: %v", m.cpu.PC(), err)
			return err
		}
		spent += cycles
		if m.debug {
			logger.Logf("cpu", "pc=%04X af=%04X bc=%04X de=%04X hl=%04X sp=%04X",
				m.cpu.PC(), m.cpu.AF(), m.cpu.BC(), m.cpu.DE(), m.cpu.HL(), m.cpu.SP())
		}
	}
	return nil
}

func (m *Machine) pollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if btn, ok := buttons[e.Keysym.Sym]; ok {
				m.io.SetInputBit(btn.port, btn.mask, e.Type == sdl.KEYDOWN)
			}
		}
	}
	return true
}
