package task

import (
	"JuliaRender/pixel"
	"errors"
	"fmt"
)

var ErrNoMoreTasks = errors.New("no more tasks")

// Task is the ordered list of pixels making up one image together with the colors computed for them so far.
type Task struct {
	CurrentTask int
	Height      int
	Results     *pixel.Buffer
	Tasks       []Coordinate
	Width       int
}

func NewTask(width int, height int) Task {
	return Task{
		Height:  height,
		Results: pixel.NewBuffer(width, height),
		Tasks:   make([]Coordinate, 0, width*height),
		Width:   width,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("Width: %d ", t.Width)
	output += fmt.Sprintf("Height: %d ", t.Height)
	output += fmt.Sprintf("Result Count: %d ", t.Results.Len())
	output += fmt.Sprintf("Task Count: %d}", len(t.Tasks))
	return output
}

func (t *Task) AddTaskForPixel(coordinate Coordinate) {
	t.Tasks = append(t.Tasks, coordinate)
}

func (t *Task) AddTasksForRow(row int) {
	for c := 0; c < t.Width; c++ {
		t.AddTaskForPixel(Coordinate{Column: c, Row: row})
	}
}

// AddTasksForImage queues every pixel of the image, top row first and left to right within a row.
func (t *Task) AddTasksForImage() {
	for r := 0; r < t.Height; r++ {
		t.AddTasksForRow(r)
	}
}

// GetNextTask
// Returns the current coordinate to be processed. Make sure to return the result to the AddResult method before
// calling this method again
func (t *Task) GetNextTask() (Coordinate, error) {
	if t.CurrentTask >= len(t.Tasks) {
		return Coordinate{}, ErrNoMoreTasks
	}
	return t.Tasks[t.CurrentTask], nil
}

// AddResult
// When returning a result the CurrentTask value is incremented so the next call to the GetNextTask method will return
// the next coordinate in order
func (t *Task) AddResult(color pixel.Color) {
	t.Results.Append(color)
	t.CurrentTask++
}

func (t *Task) Done() bool {
	return t.CurrentTask >= len(t.Tasks)
}
