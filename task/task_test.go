package task

import (
	"JuliaRender/pixel"
	"errors"
	"testing"
)

func TestAddTasksForImageIsRowMajor(t *testing.T) {
	todo := NewTask(3, 2)
	todo.AddTasksForImage()

	want := []Coordinate{
		{Column: 0, Row: 0}, {Column: 1, Row: 0}, {Column: 2, Row: 0},
		{Column: 0, Row: 1}, {Column: 1, Row: 1}, {Column: 2, Row: 1},
	}
	if len(todo.Tasks) != len(want) {
		t.Fatalf("queued %d coordinates, want %d", len(todo.Tasks), len(want))
	}
	for i := range want {
		if todo.Tasks[i] != want[i] {
			t.Errorf("task %d = %s, want %s", i, &todo.Tasks[i], &want[i])
		}
	}
}

func TestTaskProcessing(t *testing.T) {
	todo := NewTask(2, 2)
	todo.AddTasksForImage()

	processed := 0
	for {
		coordinate, err := todo.GetNextTask()
		if err != nil {
			if !errors.Is(err, ErrNoMoreTasks) {
				t.Fatalf("unexpected error: %v", err)
			}
			break
		}
		todo.AddResult(pixel.FromHex(uint32(coordinate.Row*2 + coordinate.Column)))
		processed++
	}

	if processed != 4 || !todo.Done() {
		t.Fatalf("processed %d coordinates, done = %t", processed, todo.Done())
	}
	if !todo.Results.Complete() {
		t.Errorf("results incomplete: %s", todo.Results)
	}
	// Results are appended in the order coordinates were handed out
	if got := todo.Results.At(1, 1).Bytes()[2]; got != 3 {
		t.Errorf("result at (1, 1) has blue %d, want 3", got)
	}
}
