// Package app holds the application context: the one authoritative task
// collection, the store it is persisted to, and the operations the UI drives.
//
// The collection is kept in persisted order (oldest first). The visible list
// is derived from it newest first, so freshly added tasks land on top and a
// reload shows the same order the session ended with.
package app

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/taskboard/internal/model"
)

// DefaultDeleteDelay is how long a deleted card fades before it is committed.
const DefaultDeleteDelay = 300 * time.Millisecond

var ErrIncomplete = errors.New("all fields are required")

// Store persists the task collection.
type Store interface {
	LoadAll() []model.Task
	Append(t model.Task) error
	Remove(t model.Task) error
}

// NodeID identifies a visible node for the lifetime of the process.
type NodeID int

// Node is the visible representation of one task.
type Node struct {
	ID     NodeID
	Task   model.Task
	Fading bool
}

// Form is the raw content of the add-task form.
type Form struct {
	Name        string
	Description string
	Deadline    string
}

// Task trims the form and builds a task, or returns ErrIncomplete.
func (f Form) Task() (model.Task, error) {
	t := model.Task{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Deadline:    strings.TrimSpace(f.Deadline),
	}
	if !t.Valid() {
		return model.Task{}, ErrIncomplete
	}
	return t, nil
}

type Options struct {
	Logger      *log.Logger
	DeleteDelay time.Duration
}

type App struct {
	store Store
	log   *log.Logger
	delay time.Duration

	nodes       []Node // persisted order
	nextID      NodeID
	placeholder bool
}

func New(store Store, opts Options) *App {
	a := &App{
		store: store,
		log:   opts.Logger,
		delay: opts.DeleteDelay,
	}
	if a.log == nil {
		a.log = log.New(io.Discard)
	}
	if a.delay <= 0 {
		a.delay = DefaultDeleteDelay
	}
	return a
}

// Boot replaces the collection with what the store holds and recomputes the
// empty-state. It returns the number of tasks loaded.
func (a *App) Boot() int {
	tasks := a.store.LoadAll()
	a.nodes = a.nodes[:0]
	for _, t := range tasks {
		a.nodes = append(a.nodes, a.newNode(t))
	}
	a.UpdateEmptyState()
	a.log.Debug("booted", "tasks", len(tasks))
	return len(tasks)
}

func (a *App) newNode(t model.Task) Node {
	a.nextID++
	return Node{ID: a.nextID, Task: t}
}

// DeleteDelay is the fade duration between BeginRemove and CommitRemove.
func (a *App) DeleteDelay() time.Duration { return a.delay }

// Nodes returns the visible nodes, newest first.
func (a *App) Nodes() []Node {
	out := make([]Node, len(a.nodes))
	for i, n := range a.nodes {
		out[len(a.nodes)-1-i] = n
	}
	return out
}

func (a *App) Len() int { return len(a.nodes) }

// UpdateEmptyState recomputes whether the placeholder is shown and returns it.
func (a *App) UpdateEmptyState() bool {
	a.placeholder = len(a.nodes) == 0
	return a.placeholder
}

// PlaceholderVisible reports the empty-state as of the last UpdateEmptyState.
func (a *App) PlaceholderVisible() bool { return a.placeholder }

// Submit validates the form, persists the task and puts it on top of the
// visible list. Incomplete forms change nothing and return ErrIncomplete.
func (a *App) Submit(f Form) (Node, error) {
	t, err := f.Task()
	if err != nil {
		a.log.Debug("submission aborted", "err", err)
		return Node{}, err
	}
	if err := a.store.Append(t); err != nil {
		a.log.Error("persist task", "name", t.Name, "err", err)
		return Node{}, err
	}
	n := a.newNode(t)
	a.nodes = append(a.nodes, n)
	a.UpdateEmptyState()
	a.log.Info("task added", "name", t.Name, "deadline", t.Deadline)
	return n, nil
}

func (a *App) index(id NodeID) int {
	for i, n := range a.nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// BeginRemove starts the fade of node id. It reports false when the node is
// gone or already fading, in which case no commit should be scheduled.
func (a *App) BeginRemove(id NodeID) bool {
	i := a.index(id)
	if i < 0 || a.nodes[i].Fading {
		return false
	}
	a.nodes[i].Fading = true
	return true
}

// CommitRemove detaches node id together with every node sharing its
// (name, deadline), removes the matching records from the store and
// recomputes the empty-state. Committing a node that is already gone is a
// no-op and reports false.
func (a *App) CommitRemove(id NodeID) (bool, error) {
	i := a.index(id)
	if i < 0 {
		return false, nil
	}
	t := a.nodes[i].Task
	if err := a.store.Remove(t); err != nil {
		a.nodes[i].Fading = false
		a.log.Error("remove task", "name", t.Name, "err", err)
		return false, err
	}
	kept := a.nodes[:0]
	for _, n := range a.nodes {
		if !n.Task.Matches(t) {
			kept = append(kept, n)
		}
	}
	a.nodes = kept
	a.UpdateEmptyState()
	a.log.Info("task removed", "name", t.Name, "deadline", t.Deadline)
	return true, nil
}
