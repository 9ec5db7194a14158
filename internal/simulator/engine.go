package simulator

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// RGB is a color triple in wire order.
type RGB [3]uint8

var (
	defaultTextColor = RGB{244, 244, 245}
	defaultModule    = RGB{200, 230, 255}
)

// RotationSource yields the module that owns the display right now.
type RotationSource interface {
	Active(ctx context.Context, now time.Time) (*Module, error)
}

// DisplayStatus is the display half of the status endpoint payload.
type DisplayStatus struct {
	Running      bool     `json:"running"`
	TargetFPS    int      `json:"target_fps"`
	ActualFPS    float64  `json:"actual_fps"`
	LastFrameTS  *float64 `json:"last_frame_ts"`
	LastSource   string   `json:"last_source"`
	LastModule   *string  `json:"last_module"`
	DebugActive  bool     `json:"debug_active"`
	DebugPattern *string  `json:"debug_pattern"`
	DebugUntil   *float64 `json:"debug_until"`
	ManualActive bool     `json:"manual_active"`
	ManualUntil  *float64 `json:"manual_until"`
	Brightness   int      `json:"brightness"`
}

// Preview is the wire form of the current frame.
type Preview struct {
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	LitPixels int      `json:"lit_pixels"`
	Frame     [][]int  `json:"frame"`
	Colors    [][]*RGB `json:"colors"`
}

// Engine owns the virtual display: it advances one frame per tick, arbitrating
// between manual overrides, diagnostic patterns and the module rotation, in
// that priority order.
type Engine struct {
	mu       sync.Mutex
	rotation RotationSource

	targetFPS  int
	brightness int
	running    bool

	frame  [GridHeight][GridWidth]bool
	colors [GridHeight][GridWidth]*RGB

	manualFrame [GridHeight][GridWidth]bool
	manualColor RGB
	manualUntil time.Time

	debugPattern   string
	debugUntil     time.Time
	debugInterval  time.Duration
	debugStep      int
	debugSteppedAt time.Time

	lastSource  string
	lastModule  *string
	lastFrameAt time.Time
	actualFPS   float64
}

func NewEngine(rotation RotationSource, targetFPS int) *Engine {
	if targetFPS <= 0 {
		targetFPS = 20
	}
	return &Engine{
		rotation:   rotation,
		targetFPS:  targetFPS,
		brightness: 200,
		lastSource: "none",
	}
}

// Run drives the render loop at the target frame rate until ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	ticker := time.NewTicker(time.Second / time.Duration(e.targetFPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.mu.Lock()
			e.running = false
			e.mu.Unlock()
			return ctx.Err()
		case now := <-ticker.C:
			e.Tick(ctx, now)
		}
	}
}

// Tick renders one frame. Exposed for tests; Run calls it on its own clock.
func (e *Engine) Tick(ctx context.Context, now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case now.Before(e.manualUntil):
		e.setFrame(e.manualFrame, e.manualColor)
		e.lastSource = "manual"
		e.lastModule = nil

	case now.Before(e.debugUntil):
		if e.debugSteppedAt.IsZero() || now.Sub(e.debugSteppedAt) >= e.debugInterval {
			e.debugStep++
			e.debugSteppedAt = now
		}
		e.setFrame(patternFrame(e.debugPattern, e.debugStep), patternColors[e.debugPattern])
		e.lastSource = "debug"
		e.lastModule = nil

	default:
		e.renderRotation(ctx, now)
	}

	if !e.lastFrameAt.IsZero() {
		if dt := now.Sub(e.lastFrameAt).Seconds(); dt > 0 {
			inst := 1 / dt
			if e.actualFPS == 0 {
				e.actualFPS = inst
			} else {
				e.actualFPS = 0.8*e.actualFPS + 0.2*inst
			}
		}
	}
	e.lastFrameAt = now
}

func (e *Engine) renderRotation(ctx context.Context, now time.Time) {
	module, err := e.rotation.Active(ctx, now)
	if err != nil || module == nil {
		e.setFrame([GridHeight][GridWidth]bool{}, defaultModule)
		e.lastSource = "none"
		e.lastModule = nil
		return
	}

	color := defaultModule
	if hex, ok := module.Settings["color"].(string); ok {
		if parsed, ok := parseHexColor(hex); ok {
			color = parsed
		}
	}

	e.setFrame(renderText(module.Name), color)
	e.lastSource = "module"
	key := module.Key
	e.lastModule = &key
}

func (e *Engine) setFrame(frame [GridHeight][GridWidth]bool, color RGB) {
	e.frame = frame
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			if frame[y][x] {
				c := color
				e.colors[y][x] = &c
			} else {
				e.colors[y][x] = nil
			}
		}
	}
}

func (e *Engine) ShowText(text string, seconds int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.manualFrame = renderText(text)
	e.manualColor = defaultTextColor
	e.manualUntil = time.Now().Add(time.Duration(seconds) * time.Second)
}

func (e *Engine) Draw(pixels [][]int, seconds int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var frame [GridHeight][GridWidth]bool
	for y := 0; y < GridHeight && y < len(pixels); y++ {
		for x := 0; x < GridWidth && x < len(pixels[y]); x++ {
			frame[y][x] = pixels[y][x] != 0
		}
	}
	e.manualFrame = frame
	e.manualColor = defaultTextColor
	e.manualUntil = time.Now().Add(time.Duration(seconds) * time.Second)
}

func (e *Engine) SetBrightness(brightness int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.brightness = brightness
}

func (e *Engine) StartPattern(pattern string, seconds, intervalMS int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.debugPattern = pattern
	e.debugUntil = time.Now().Add(time.Duration(seconds) * time.Second)
	e.debugInterval = time.Duration(intervalMS) * time.Millisecond
	e.debugStep = 0
	e.debugSteppedAt = time.Time{}
}

func (e *Engine) StopPattern() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.debugUntil = time.Time{}
}

// Snapshot copies the current frame into wire form.
func (e *Engine) Snapshot() Preview {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := Preview{
		Width:  GridWidth,
		Height: GridHeight,
		Frame:  make([][]int, GridHeight),
		Colors: make([][]*RGB, GridHeight),
	}
	for y := 0; y < GridHeight; y++ {
		p.Frame[y] = make([]int, GridWidth)
		p.Colors[y] = make([]*RGB, GridWidth)
		for x := 0; x < GridWidth; x++ {
			if e.frame[y][x] {
				p.Frame[y][x] = 1
				p.LitPixels++
				if c := e.colors[y][x]; c != nil {
					copied := *c
					p.Colors[y][x] = &copied
				}
			}
		}
	}
	return p
}

func (e *Engine) Status(now time.Time) DisplayStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := DisplayStatus{
		Running:      e.running,
		TargetFPS:    e.targetFPS,
		ActualFPS:    e.actualFPS,
		LastSource:   e.lastSource,
		LastModule:   e.lastModule,
		Brightness:   e.brightness,
		ManualActive: now.Before(e.manualUntil),
		DebugActive:  now.Before(e.debugUntil),
	}
	if !e.lastFrameAt.IsZero() {
		ts := float64(e.lastFrameAt.UnixMilli()) / 1000
		s.LastFrameTS = &ts
	}
	if s.ManualActive {
		until := float64(e.manualUntil.UnixMilli()) / 1000
		s.ManualUntil = &until
	}
	if s.DebugActive {
		pattern := e.debugPattern
		until := float64(e.debugUntil.UnixMilli()) / 1000
		s.DebugPattern = &pattern
		s.DebugUntil = &until
	}
	return s
}

// parseHexColor reads "#rrggbb".
func parseHexColor(s string) (RGB, bool) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, false
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{uint8(n >> 16), uint8(n >> 8), uint8(n)}, true
}
