package uno

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "dev"},
			{"action": "screenshot", "label": "after-click"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	if _, err := LoadScript([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScript_Empty(t *testing.T) {
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadScript_UnknownAction(t *testing.T) {
	if _, err := LoadScript([]byte(`{"steps": [{"action": "teleport"}]}`)); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerStep_Click(t *testing.T) {
	tbl := &Table{}
	runner, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	tbl.SetScriptRunner(runner, false)

	runner.step(tbl)
	if tbl.PendingInjected() != 2 {
		t.Fatalf("expected 2 queued frames, got %d", tbl.PendingInjected())
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	tbl.collectInput()
	runner.step(tbl)
	tbl.collectInput()
	runner.step(tbl)
	if !runner.Done() {
		t.Error("runner should be done after the queue drained")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	tbl := &Table{}
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1 executes the wait; frames 2 and 3 count down.
	for i := 0; i < 3; i++ {
		runner.step(tbl)
		if tbl.PendingScreenshots() != 0 {
			t.Fatalf("screenshot queued too early on frame %d", i+1)
		}
	}
	runner.step(tbl)
	if len(tbl.screenshotQueue) != 1 || tbl.screenshotQueue[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", tbl.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_MoveAndDev(t *testing.T) {
	tbl := &Table{}
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "move", "x": 7, "y": 8},
		{"action": "dev"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(tbl)
	tbl.collectInput()
	if e := tbl.Events()[0]; e.Type != InputPointerMotion || e.ScreenX != 7 || e.ScreenY != 8 {
		t.Errorf("move = %+v", e)
	}
	runner.step(tbl)
	tbl.collectInput()
	if e := tbl.Events()[0]; e.Type != InputKeyPress || e.Key != DevToggleKey {
		t.Errorf("dev = %+v", e)
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	tbl := &Table{}
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 0, "fromY": 0, "toX": 90, "toY": 0, "frames": 4}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(tbl)
	if tbl.PendingInjected() != 4 {
		t.Errorf("expected 4 queued frames, got %d", tbl.PendingInjected())
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	tbl := &Table{}
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 1, "y": 1},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(tbl) // queues click
	runner.step(tbl) // blocked: queue not empty
	if tbl.PendingScreenshots() != 0 {
		t.Fatal("screenshot should wait for injected input")
	}
	tbl.collectInput()
	tbl.collectInput()
	runner.step(tbl)
	if len(tbl.screenshotQueue) != 1 || tbl.screenshotQueue[0] != "after" {
		t.Errorf("expected screenshot 'after', got %v", tbl.screenshotQueue)
	}
}

func TestScriptExitWhenDone(t *testing.T) {
	tbl := newTestTable(t)
	runner, err := LoadScript([]byte(`{"steps": [{"action": "move", "x": 1, "y": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	tbl.SetScriptRunner(runner, true)

	// Frame 1 queues the move; frame 2 replays it and finishes.
	if err := tbl.Update(); err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	if err := tbl.Update(); err == nil {
		t.Error("expected termination once the script is done")
	}
}
