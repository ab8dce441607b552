package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/chazu/dovetail/pkg/engine"
	"github.com/chazu/dovetail/pkg/geom"
	"github.com/chazu/dovetail/pkg/joint"
	"github.com/chazu/dovetail/pkg/kernel"
	"github.com/chazu/dovetail/pkg/kernel/sdfx"
	"github.com/chazu/dovetail/pkg/prefs"
	"github.com/chazu/dovetail/pkg/tessellate"
)

// Board colors sent to the frontend alongside the meshes.
const (
	pinBoardColor  = "#C89F6B" // lighter stock
	tailBoardColor = "#8B5E3C" // darker stock
)

// App is the Wails backend. It exposes methods to the frontend via
// bindings. The frontend owns the render loop and the form; the App
// owns recomputation, assembly state and preference persistence.
type App struct {
	ctx    context.Context
	engine *engine.Engine
	kernel kernel.Kernel
	store  prefs.Store

	mu       sync.Mutex
	params   joint.Params
	assembly joint.AssemblyState
	lastGood *JointResult // retained so a failed recomputation never blanks the view
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// JointResult is the full recomputation result returned to the
// frontend: the exact layout for the dimension readout, the flat part
// outlines for the 2-D diagram, and the board meshes for the 3-D view.
type JointResult struct {
	Layout    *joint.JointLayout `json:"layout,omitempty"`
	PinParts  []geom.Part        `json:"pinParts"`
	TailParts []geom.Part        `json:"tailParts"`
	Meshes    []MeshData         `json:"meshes"`
	Errors    []EvalErrorData    `json:"errors"`
}

func emptyResult() JointResult {
	return JointResult{
		PinParts:  []geom.Part{},
		TailParts: []geom.Part{},
		Meshes:    []MeshData{},
		Errors:    []EvalErrorData{},
	}
}

// NewApp creates a new App with an engine, the sdfx kernel and the
// default preference store.
func NewApp() *App {
	store, err := prefs.DefaultFileStore()
	a := &App{
		engine: engine.NewEngine(),
		kernel: sdfx.New(),
		params: joint.DefaultParams(),
	}
	if err != nil {
		// No config directory: run without persistence.
		log.Warn().Err(err).Msg("preferences disabled")
	} else {
		a.store = store
	}
	return a
}

// startup is called by Wails on app startup. The context is saved so
// Wails runtime methods can be called later; stored preferences
// become the initial parameters.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	if a.store == nil {
		return
	}
	p, err := a.store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("could not load preferences")
		return
	}
	a.mu.Lock()
	a.params = p
	a.mu.Unlock()
}

// LoadParams returns the parameters the form should show: the stored
// preferences, or the defaults on first launch.
func (a *App) LoadParams() joint.Params {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.params
}

// Compute recomputes the joint from form parameters. On failure the
// errors are reported and the previous good geometry is returned
// unchanged, so the render loop always has something to draw.
func (a *App) Compute(params joint.Params) JointResult {
	a.mu.Lock()
	offset := a.assembly.Offset
	a.mu.Unlock()

	result, err := a.compute(params, offset)
	if err != nil {
		log.Error().Err(err).Msg("recompute failed")
		return a.failed(EvalErrorData{Message: err.Error()})
	}

	a.mu.Lock()
	a.params = params
	a.lastGood = &result
	a.mu.Unlock()

	if a.store != nil {
		if err := a.store.Save(params); err != nil {
			log.Warn().Err(err).Msg("could not save preferences")
		}
	}
	return result
}

// Evaluate runs a parameter script and recomputes from its
// parameters. A script that declares no joint clears nothing: the
// last good geometry stays.
func (a *App) Evaluate(source string) JointResult {
	params, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (timeout, panic).
		log.Error().Err(err).Msg("script evaluation failed")
		return a.failed(EvalErrorData{Message: err.Error()})
	}
	if len(evalErrs) > 0 {
		data := make([]EvalErrorData, len(evalErrs))
		for i, e := range evalErrs {
			data[i] = EvalErrorData{Line: e.Line, Col: e.Col, Message: e.Message}
		}
		return a.failed(data...)
	}
	if params == nil {
		return a.failed()
	}
	return a.Compute(*params)
}

// SetAssembled sets the animation target and returns the offset the
// frontend should ease toward.
func (a *App) SetAssembled(assembled bool) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	if assembled {
		a.assembly.Mode = joint.Assembled
	} else {
		a.assembly.Mode = joint.Exploded
	}
	_, variant, err := a.params.Resolve()
	if err != nil {
		return 0
	}
	return joint.TargetOffset(a.assembly.Mode, a.params.Depth, variant)
}

// StepAssembly advances the assembly offset by at most delta toward
// the current target, clamped, and returns the new offset. Called by
// the frontend's animation loop each frame.
func (a *App) StepAssembly(delta float64) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, variant, err := a.params.Resolve()
	if err != nil {
		return a.assembly.Offset
	}
	a.assembly.Step(delta, a.params.Depth, variant)
	return a.assembly.Offset
}

// compute is the pure recomputation pipeline: layout, part outlines,
// board meshes.
func (a *App) compute(params joint.Params, offset float64) (JointResult, error) {
	layout, variant, err := params.Resolve()
	if err != nil {
		return JointResult{}, err
	}

	parts, err := joint.BuildParts(layout, params.Width, params.Height, params.Depth, variant)
	if err != nil {
		return JointResult{}, err
	}

	meshes, err := tessellate.Boards(parts, params.Width, params.Height, params.Depth, offset, variant, a.kernel)
	if err != nil {
		return JointResult{}, err
	}

	result := emptyResult()
	result.Layout = &layout
	result.PinParts = append(result.PinParts, parts.PinParts...)
	result.TailParts = append(result.TailParts, parts.TailParts...)
	for _, m := range meshes {
		color := pinBoardColor
		if m.Name == tessellate.TailBoardName {
			color = tailBoardColor
		}
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			Name:     m.Name,
			Color:    color,
		})
	}
	return result, nil
}

// failed builds an error result that carries the last good geometry
// forward.
func (a *App) failed(errs ...EvalErrorData) JointResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := emptyResult()
	if a.lastGood != nil {
		result.Layout = a.lastGood.Layout
		result.PinParts = append(result.PinParts, a.lastGood.PinParts...)
		result.TailParts = append(result.TailParts, a.lastGood.TailParts...)
		result.Meshes = append(result.Meshes, a.lastGood.Meshes...)
	}
	result.Errors = append(result.Errors, errs...)
	return result
}
