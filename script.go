package uno

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script actions.
const (
	ActionScreenshot = "screenshot"
	ActionMove       = "move"
	ActionPress      = "press"
	ActionRelease    = "release"
	ActionClick      = "click"
	ActionDrag       = "drag"
	ActionWait       = "wait"
	ActionDev        = "dev"
)

// ScriptRunner sequences injected input and screenshots across frames for
// automated runs. Attach to a Table via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script and returns a ScriptRunner ready to
// be attached to a Table via SetScriptRunner.
//
//	{"steps": [
//	  {"action": "move", "x": 400, "y": 60},
//	  {"action": "wait", "frames": 10},
//	  {"action": "click", "x": 400, "y": 60},
//	  {"action": "screenshot", "label": "drawn"}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case ActionScreenshot, ActionMove, ActionPress, ActionRelease,
			ActionClick, ActionDrag, ActionWait, ActionDev:
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the table. The runner's step
// method is called from Table.Update right after input collection. When
// exitWhenDone is set, Update returns ebiten.Termination once the script has
// finished and its screenshots are written.
func (t *Table) SetScriptRunner(runner *ScriptRunner, exitWhenDone bool) {
	t.runner = runner
	t.exitOnDone = exitWhenDone
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Table.Update.
func (r *ScriptRunner) step(t *Table) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(t.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case ActionScreenshot:
		t.Screenshot(st.Label)
	case ActionMove:
		t.InjectMove(st.X, st.Y)
	case ActionPress:
		t.InjectPress(st.X, st.Y)
	case ActionRelease:
		t.InjectRelease(st.X, st.Y)
	case ActionClick:
		t.InjectClick(st.X, st.Y)
	case ActionDrag:
		t.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case ActionDev:
		t.InjectKey(DevToggleKey)
	case ActionWait:
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(t.injectQueue) == 0 {
		r.done = true
	}
}
