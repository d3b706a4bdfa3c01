// This file is part of Orbital.
//
// Orbital is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Orbital is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Orbital.  If not, see <https://www.gnu.org/licenses/>.


// Package display presents the pixel buffer of a simulation in an SDL
// window.
//
// SDL functions must be called from the main thread. NewDisplay(), Service()
// and Destroy() must only be called from the main thread. SetPixels() and
// Quit() are safe to call from any goroutine.
package display

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/orbital/logger"
	"github.com/jetsetilly/orbital/store"
)

const windowTitle = "Orbital"

// number of bytes per pixel in the texture
const pixelDepth = 4

// Display is an SDL window showing the pixel buffer.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int
	height int

	// the most recent pixels given to SetPixels(). dirty is true if the
	// pixels have not yet been presented
	crit    sync.Mutex
	staging []byte
	dirty   bool

	// set when the window has been closed or the escape key pressed
	quit atomic.Bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
// The window is the size of the pixel buffer multiplied by scale.
func NewDisplay(width int, height int, scale float32) (*Display, error) {
	if scale <= 0 {
		scale = 1.0
	}

	disp := &Display{
		width:   width,
		height:  height,
		staging: make([]byte, width*height*pixelDepth),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	disp.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(float32(width)*scale), int32(float32(height)*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("display: %w", err)
	}

	disp.renderer, err = sdl.CreateRenderer(disp.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		disp.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("display: %w", err)
	}

	disp.texture, err = disp.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), int32(width), int32(height))
	if err != nil {
		disp.renderer.Destroy()
		disp.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("display: %w", err)
	}

	logger.Logf(logger.Allow, "display", "window %dx%d (scale %.2f)", width, height, scale)

	disp.renderer.Clear()
	disp.renderer.Present()

	return disp, nil
}

// SetPixels copies the pixel buffer for presentation by the next call to
// Service(). Pixel row zero is at the bottom of the window.
func (disp *Display) SetPixels(pb store.PixelBuffer) error {
	if pb.Width != disp.width || pb.Height != disp.height {
		return fmt.Errorf("display: pixel buffer is %dx%d but window is %dx%d", pb.Width, pb.Height, disp.width, disp.height)
	}

	disp.crit.Lock()
	defer disp.crit.Unlock()
	pb.ToABGR(disp.staging, disp.width*pixelDepth)
	disp.dirty = true

	return nil
}

// Quit returns true once the window has been closed or the escape key has
// been pressed.
func (disp *Display) Quit() bool {
	return disp.quit.Load()
}

// Service handles pending window events and presents any new pixels.
func (disp *Display) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			disp.quit.Store(true)

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				disp.quit.Store(true)
			}
		}
	}

	if err := disp.present(); err != nil {
		logger.Log(logger.Allow, "display", err)
	}
}

func (disp *Display) present() error {
	disp.crit.Lock()
	defer disp.crit.Unlock()

	if !disp.dirty {
		return nil
	}
	disp.dirty = false

	pixels, pitch, err := disp.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}

	// the texture pitch can be wider than a row of the staging buffer
	rowSize := disp.width * pixelDepth
	for y := range disp.height {
		copy(pixels[y*pitch:y*pitch+rowSize], disp.staging[y*rowSize:(y+1)*rowSize])
	}
	disp.texture.Unlock()

	err = disp.renderer.Copy(disp.texture, nil, nil)
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	disp.renderer.Present()

	return nil
}

// Destroy the window and release all SDL resources. Errors are written to
// output.
func (disp *Display) Destroy(output io.Writer) {
	err := disp.texture.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = disp.renderer.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = disp.window.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	sdl.Quit()
}
