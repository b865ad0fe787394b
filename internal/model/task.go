package model

// Task is the domain model for a todo entry.
// It has no identifier: two tasks are the same task when Name and Deadline match.
type Task struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"` // ISO date, 2006-01-02
}

// Matches reports whether t and o share the (Name, Deadline) identity.
func (t Task) Matches(o Task) bool {
	return t.Name == o.Name && t.Deadline == o.Deadline
}

// Valid reports whether every field is present.
func (t Task) Valid() bool {
	return t.Name != "" && t.Description != "" && t.Deadline != ""
}
