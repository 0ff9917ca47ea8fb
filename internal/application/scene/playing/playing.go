// Package playing provides the balloon gameplay scene.
package playing

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/balloon/internal/application/replay"
	"github.com/younwookim/balloon/internal/application/scene"
	"github.com/younwookim/balloon/internal/application/state"
	"github.com/younwookim/balloon/internal/application/system"
	"github.com/younwookim/balloon/internal/domain/entity"
	"github.com/younwookim/balloon/internal/domain/scenegraph"
	"github.com/younwookim/balloon/internal/infrastructure/logger"
	"github.com/younwookim/balloon/internal/infrastructure/render"
)

var (
	clearColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	sceneLight = scenegraph.Light{
		Kind:      scenegraph.LightHemisphere,
		Direction: mgl32.Vec3{0, 0, -1},
		Energy:    mgl32.Vec3{1, 1, 0.95},
	}
)

// Renderer is what a PlayMode draws through
type Renderer interface {
	SetLight(l scenegraph.Light)
	Clear(c color.Color)
	SetDepthTest(enabled bool)
	DrawScene(s *scenegraph.Scene, cam *scenegraph.Camera)
	DrawText(proj mgl32.Mat4, text string, anchor, xBasis, yBasis mgl32.Vec3, c color.RGBA)
}

// Options configures a PlayMode. The zero value plays without input,
// recording or replay, which is what tests use.
type Options struct {
	Logger *zap.Logger

	// Input is polled once per Update. Ignored while replaying.
	Input *system.InputSystem
	// Replayer, when set, feeds recorded frames instead of live input
	Replayer *replay.Replayer
	// RecordPath, when set, records every frame and saves on exit
	RecordPath string

	// Viewport is the size used for pointer motion until the first Draw
	Viewport image.Point
	// SetCursorMode defaults to ebiten.SetCursorMode
	SetCursorMode func(ebiten.CursorModeType)
}

// PlayMode steers the balloon through the collectibles to the needle.
type PlayMode struct {
	scene *scenegraph.Scene
	b     Bindings
	log   *zap.Logger

	left, right, up, down entity.Button

	phase          state.Phase
	collected      int
	swing          float32
	swollenTimer   float32
	resetRequested bool
	timesPlayed    int

	balloonBaseRotation mgl32.Quat
	balloonBasePosition mgl32.Vec3
	knotBaseRotation    mgl32.Quat
	knotBasePosition    mgl32.Vec3
	cameraBasePosition  mgl32.Vec3

	input         *system.InputSystem
	replayer      *replay.Replayer
	recorder      *Recorder
	recordPath    string
	screen        *render.Screen
	viewport      image.Point
	setCursorMode func(ebiten.CursorModeType)
}

// New creates a PlayMode on a private copy of s.
// It fails if the balloon or knot is missing or the scene does not have exactly one camera.
func New(s *scenegraph.Scene, opts Options) (*PlayMode, error) {
	sc := s.Clone()
	b, err := Resolve(sc)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	setCursorMode := opts.SetCursorMode
	if setCursorMode == nil {
		setCursorMode = ebiten.SetCursorMode
	}

	p := &PlayMode{
		scene:        sc,
		b:            b,
		log:          log.With(zap.String("scene", sc.Name)),
		phase:        state.PhaseCollecting,
		swollenTimer: swellDuration,
		timesPlayed:  1,

		balloonBaseRotation: b.Balloon.Rotation,
		balloonBasePosition: b.Balloon.Position,
		knotBaseRotation:    b.Knot.Rotation,
		knotBasePosition:    b.Knot.Position,
		cameraBasePosition:  b.Camera.Transform.Position,

		input:         opts.Input,
		replayer:      opts.Replayer,
		recordPath:    opts.RecordPath,
		screen:        render.NewScreen(),
		viewport:      opts.Viewport,
		setCursorMode: setCursorMode,
	}
	b.Balloon.Scale = uniform(balloonScale)

	if opts.RecordPath != "" {
		session := uuid.New()
		p.recorder = NewRecorder(session, sc.Name)
		p.log.Info("Recording enabled",
			zap.String("path", opts.RecordPath),
			zap.Stringer("session", session),
		)
	}

	p.log.Debug("PlayMode ready",
		zap.Int("transforms", len(sc.Transforms)),
		zap.Int("drawables", len(sc.Drawables)),
	)
	return p, nil
}

// HandleEvent applies one input event and reports whether it was consumed.
// windowSize scales pointer motion.
func (p *PlayMode) HandleEvent(evt system.Event, windowSize image.Point) bool {
	switch e := evt.(type) {
	case system.KeyEvent:
		if e.Down && e.Key == system.KeyConfirm {
			p.resetRequested = true
			return true
		}
		btn := p.button(e.Key)
		if btn == nil {
			return false
		}
		if e.Down {
			btn.Press()
		} else {
			btn.Release()
		}
		return true

	case system.MotionEvent:
		if !e.Captured {
			return false
		}
		if windowSize.Y <= 0 {
			return true
		}
		h := float32(windowSize.Y)
		mx, my := e.XRel/h, -e.YRel/h
		cam := p.b.Camera
		rot := cam.Transform.Rotation.
			Mul(mgl32.QuatRotate(-mx*cam.Fovy, mgl32.Vec3{0, 1, 0})).
			Mul(mgl32.QuatRotate(my*cam.Fovy, mgl32.Vec3{1, 0, 0}))
		cam.Transform.Rotation = rot.Normalize()
		return true
	}
	return false
}

func (p *PlayMode) button(k system.Key) *entity.Button {
	switch k {
	case system.KeyLeft:
		return &p.left
	case system.KeyRight:
		return &p.right
	case system.KeyUp:
		return &p.up
	case system.KeyDown:
		return &p.down
	default:
		return nil
	}
}

// Step advances the simulation by elapsed seconds.
// A zero step only clears the key-down counters.
func (p *PlayMode) Step(elapsed float32) {
	defer p.clearDowns()
	if elapsed == 0 {
		return
	}

	if p.resetRequested && p.phase == state.PhasePopped {
		p.restart()
	}

	p.swing += elapsed / swingPeriod
	p.swing -= float32(math.Floor(float64(p.swing)))

	p.b.Balloon.Rotation = p.balloonBaseRotation.Mul(
		wobble(balloonSwingDeg, p.swing, mgl32.Vec3{1, 0, 0}))

	knotSwing := p.swing

	move := system.Displacement(p.left, p.right, p.up, p.down, system.MoveSpeed(p.collected))
	p.b.Balloon.Position = p.b.Balloon.Position.Add(move)
	p.b.Knot.Position = p.b.Knot.Position.Add(move)
	p.b.Camera.Transform.Position = p.b.Camera.Transform.Position.Add(move)

	switch p.phase {
	case state.PhaseSwollen:
		p.swollenTimer -= elapsed
		if p.swollenTimer >= 0 {
			p.swell()
			knotSwing = p.swing * swollenSwingRate
		} else {
			p.collected++
			p.phase = state.PhaseCollecting
			p.log.Debug("Swell finished", zap.Int("collected", p.collected))
		}

	case state.PhaseCollecting:
		if p.collected < collectibleCount {
			if system.WithinRadius(p.b.Balloon.Position, p.b.Collectibles[p.collected], pickupRadius) {
				p.phase = state.PhaseSwollen
				p.swollenTimer = swellDuration
				p.log.Debug("Collectible reached", zap.String("node", CollectibleName(p.collected)))
			}
		} else if system.WithinRadius(p.b.Balloon.Position, p.b.Needle, needleRadius) {
			p.phase = state.PhasePopped
			pop := uniform(popGrowth)
			p.b.Balloon.Scale = p.b.Balloon.Scale.Add(pop)
			p.b.Knot.Scale = p.b.Knot.Scale.Add(pop)
			p.log.Info("Balloon popped", zap.Int("timesPlayed", p.timesPlayed))
		}
	}

	p.b.Knot.Rotation = p.knotBaseRotation.Mul(
		wobble(knotSwingDeg, knotSwing, mgl32.Vec3{0, 0, 1}))
}

func (p *PlayMode) swell() {
	grow := uniform(swellGrowth)
	p.b.Balloon.Scale = p.b.Balloon.Scale.Add(grow)
	p.b.Knot.Scale = p.b.Knot.Scale.Add(grow)
	p.b.Balloon.Position[2] += balloonRise
	p.b.Knot.Position[2] += balloonRise
	p.b.Camera.Transform.Position[2] += cameraRise
}

// restart puts the balloon back at the start. The camera keeps its orientation.
func (p *PlayMode) restart() {
	p.resetRequested = false
	p.phase = state.PhaseCollecting
	p.b.Balloon.Position = p.balloonBasePosition
	p.b.Knot.Position = p.knotBasePosition
	p.b.Balloon.Scale = uniform(balloonScale)
	p.b.Knot.Scale = uniform(knotScale)
	p.b.Camera.Transform.Position = p.cameraBasePosition
	p.collected = 0
	p.swollenTimer = swellDuration
	p.timesPlayed++
	p.log.Info("Restarted", zap.Int("timesPlayed", p.timesPlayed))
}

func (p *PlayMode) clearDowns() {
	p.left.ClearDowns()
	p.right.ClearDowns()
	p.up.ClearDowns()
	p.down.ClearDowns()
}

// Render draws the scene and the text overlay for a target of the given size.
func (p *PlayMode) Render(size image.Point, r Renderer) {
	aspect := float32(1)
	if size.Y > 0 {
		aspect = float32(size.X) / float32(size.Y)
	}
	p.b.Camera.Aspect = aspect

	r.SetLight(sceneLight)
	r.Clear(clearColor)
	r.SetDepthTest(true)
	r.DrawScene(p.scene, p.b.Camera)

	r.SetDepthTest(false)
	proj := mgl32.Scale3D(1/aspect, 1, 1)
	for _, line := range Overlay(p.phase == state.PhasePopped, p.timesPlayed) {
		anchor := mgl32.Vec3{-aspect + line.X*textHeight, -1 + line.Y*textHeight, 0}
		s := line.Scale * textHeight
		r.DrawText(proj, line.Text, anchor, mgl32.Vec3{s, 0, 0}, mgl32.Vec3{0, s, 0}, line.Color)
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *PlayMode) Update(dt float64) (scene.Scene, error) {
	elapsed := float32(dt)
	var events []system.Event

	switch {
	case p.replayer != nil:
		frame, ok := p.replayer.Next()
		if !ok {
			p.log.Info("Replay finished", zap.Int("frames", p.replayer.TotalFrames()))
			return nil, replay.ErrFinished
		}
		elapsed = frame.Elapsed
		events = frame.Events
	case p.input != nil:
		events = p.input.Poll()
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(elapsed, events)
	}

	for _, evt := range events {
		p.HandleEvent(evt, p.viewport)
	}
	p.Step(elapsed)

	return nil, nil // nil = stay on this scene
}

// Draw renders the scene to the screen (implements scene.Scene)
func (p *PlayMode) Draw(screen *ebiten.Image) {
	p.viewport = screen.Bounds().Size()
	p.screen.SetTarget(screen)
	p.Render(p.viewport, p.screen)
}

// OnEnter captures the pointer so mouse motion steers the camera (implements scene.Scene)
func (p *PlayMode) OnEnter() {
	if p.replayer != nil {
		return
	}
	p.setCursorMode(ebiten.CursorModeCaptured)
}

// OnExit releases the pointer and saves an active recording (implements scene.Scene)
func (p *PlayMode) OnExit() {
	if p.replayer == nil {
		p.setCursorMode(ebiten.CursorModeVisible)
	}
	p.saveRecording()
}

// saveRecording saves the current recording to file
func (p *PlayMode) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()

	filename := p.recordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Error("Failed to save recording", zap.String("path", filename), zap.Error(err))
		return
	}
	p.log.Info("Recording saved",
		zap.String("path", filename),
		zap.Int("frames", p.recorder.FrameCount()),
	)
}

// Phase returns the current phase
func (p *PlayMode) Phase() state.Phase { return p.phase }

// Collected returns how many collectibles have been fully swallowed this play-through
func (p *PlayMode) Collected() int { return p.collected }

// TimesPlayed returns the 1-based play-through counter
func (p *PlayMode) TimesPlayed() int { return p.timesPlayed }

// ResetRequested reports whether a restart is pending
func (p *PlayMode) ResetRequested() bool { return p.resetRequested }

// Scene returns the PlayMode's own copy of the scene
func (p *PlayMode) Scene() *scenegraph.Scene { return p.scene }

// Bindings returns the resolved scene references
func (p *PlayMode) Bindings() Bindings { return p.b }

func wobble(amplitudeDeg, swing float32, axis mgl32.Vec3) mgl32.Quat {
	angle := mgl32.DegToRad(amplitudeDeg * float32(math.Sin(float64(swing*2*math.Pi))))
	return mgl32.QuatRotate(angle, axis)
}

func uniform(v float32) mgl32.Vec3 {
	return mgl32.Vec3{v, v, v}
}
