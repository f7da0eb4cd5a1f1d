// Package i8080host is the Space Invaders cabinet's host collaborator:
// the SDL2 window, keyboard input, and the real-time driver loop that
// spec.md §5 leaves external to the core. It is the only package in this
// repository that imports SDL — the i8080 package remains free of any
// windowing dependency.
package i8080host

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Rotated arcade framebuffer dimensions: the cabinet's monitor is
// physically 224x256 and the ROM draws to it in that orientation, but
// video RAM stores it column-major per spec.md §6, so the natural
// presentation dimensions swap width and height back to landscape.
const (
	frameWidth  = 256
	frameHeight = 224

	videoRAMStart = 0x2400
	videoRAMEnd   = 0x4000
)

var (
	colorOff = sdl.Color{R: 0, G: 0, B: 0, A: 0xFF}
	colorOn  = sdl.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// screen owns the SDL window, renderer and streaming texture used to
// present one video-RAM snapshot per frame.
type screen struct {
	win *sdl.Window
	ren *sdl.Renderer
	tex *sdl.Texture

	pixels []byte // frameWidth*frameHeight RGBA8888, row-major
}

func newScreen(scale int) (*screen, error) {
	win, err := sdl.CreateWindow(
		"Space Invaders",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(frameWidth*scale), int32(frameHeight*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, err
	}

	ren, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		win.Destroy()
		return nil, err
	}
	if err := ren.SetLogicalSize(int32(frameWidth), int32(frameHeight)); err != nil {
		ren.Destroy()
		win.Destroy()
		return nil, err
	}

	tex, err := ren.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA8888),
		sdl.TEXTUREACCESS_STREAMING, int32(frameWidth), int32(frameHeight))
	if err != nil {
		ren.Destroy()
		win.Destroy()
		return nil, err
	}

	return &screen{
		win:    win,
		ren:    ren,
		tex:    tex,
		pixels: make([]byte, frameWidth*frameHeight*4),
	}, nil
}

func (s *screen) destroy() {
	s.tex.Destroy()
	s.ren.Destroy()
	s.win.Destroy()
}

// draw decodes the video-RAM slice per spec.md §6 (byte i contributes 8
// vertical pixels bit-0-topmost, rotated 90° counter-clockwise into
// (x,y) = bit y%8 of byte 0x2400+x*32+y/8) into an RGBA framebuffer and
// presents it.
func (s *screen) draw(mem *[65536]uint8) {
	for x := 0; x < frameHeight; x++ {
		for byteRow := 0; byteRow < frameWidth/8; byteRow++ {
			b := mem[videoRAMStart+x*32+byteRow]
			for bit := 0; bit < 8; bit++ {
				y := byteRow*8 + bit
				lit := b&(1<<uint(bit)) != 0
				col := colorOff
				if lit {
					col = colorOn
				}
				// presented landscape: rotate (x,y) 90deg CCW so column
				// x (0..223) becomes screen row, y (0..255) the column.
				px := y
				py := frameHeight - 1 - x
				s.setPixel(px, py, col)
			}
		}
	}

	s.tex.Update(nil, s.pixels, frameWidth*4)
	s.ren.Clear()
	s.ren.Copy(s.tex, nil, nil)
	s.ren.Present()
}

func (s *screen) setPixel(x, y int, c sdl.Color) {
	if x < 0 || x >= frameWidth || y < 0 || y >= frameHeight {
		return
	}
	i := (y*frameWidth + x) * 4
	s.pixels[i] = c.R
	s.pixels[i+1] = c.G
	s.pixels[i+2] = c.B
	s.pixels[i+3] = c.A
}
