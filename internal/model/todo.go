package model

import "time"

// TitleMaxLength matches the width of the todos.title column.
const TitleMaxLength = 100

// Todo is a single row of the todos table.
//
// FinishedOn is non-nil if and only if Done is true.
type Todo struct {
	ID         int64      `json:"id" db:"id"`
	Title      string     `json:"title" db:"title"`
	Done       bool       `json:"done" db:"done"`
	Created    time.Time  `json:"created" db:"created"`
	FinishedOn *time.Time `json:"finished_on" db:"finished_on"`
}

// ApplyUpdate copies the provided fields of req onto t and recomputes
// FinishedOn.
//
// A todo that becomes done is stamped with now; a todo that stays done keeps
// its original completion time; a todo that is not done has no completion time.
func (t *Todo) ApplyUpdate(req *UpdateTodoRequest, now time.Time) {
	if title, ok := req.Title.Get(); ok {
		t.Title = title
	}
	if done, ok := req.Done.Get(); ok {
		t.Done = done
	}

	switch {
	case !t.Done:
		t.FinishedOn = nil
	case t.FinishedOn == nil:
		finished := now
		t.FinishedOn = &finished
	}
}

// TodoResponse wraps a single todo: {"todo": {...}}.
type TodoResponse struct {
	Todo *Todo `json:"todo"`
}

// TodoListResponse wraps every todo: {"todos": [...]}.
type TodoListResponse struct {
	Todos []Todo `json:"todos"`
}

// DeleteTodoResponse is returned after a successful delete: {"result": true}.
type DeleteTodoResponse struct {
	Result bool `json:"result"`
}
