package state

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (r *recordingState) Enter()                    { *r.log = append(*r.log, r.name+":enter") }
func (r *recordingState) Update(deltaTime float64)  { *r.log = append(*r.log, r.name+":update") }
func (r *recordingState) Draw(screen *ebiten.Image) { *r.log = append(*r.log, r.name+":draw") }
func (r *recordingState) Exit()                     { *r.log = append(*r.log, r.name+":exit") }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}

	sm := NewStateMachine()
	sm.Update(0.1)
	sm.Draw(nil)

	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)
	sm.Draw(nil)
	sm.SetState(nil)

	want := []string{"a:enter", "a:update", "a:exit", "b:enter", "b:draw", "b:exit"}
	if !reflect.DeepEqual(log, want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	if sm.Current() != nil {
		t.Fatal("current state must be nil")
	}
}
