package domain

// TaskTotal is the logged minutes for one task name
type TaskTotal struct {
	Name    string
	Minutes int
}

// NewTaskTotal creates a TaskTotal
func NewTaskTotal(name string, minutes int) TaskTotal {
	return TaskTotal{Name: name, Minutes: minutes}
}

// String returns the task name for display purposes.
func (t TaskTotal) String() string {
	return t.Name
}
