package jsonstore

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/taskboard/internal/model"
	"github.com/idilsaglam/taskboard/internal/store/slot"
)

// JSON-backed task storage. The whole collection lives in one slot as a
// JSON array and every call re-reads then rewrites it: last writer wins.

// DefaultKey is the slot the collection is stored under.
const DefaultKey = "tasks"

//go:embed tasks.schema.json
var schemaSource string

var tasksSchema = jsonschema.MustCompileString("https://taskboard.local/tasks.schema.json", schemaSource)

type Store struct {
	slot slot.Slot
	key  string
	log  *log.Logger
}

// New returns a store over s. An empty key means DefaultKey; a nil logger discards.
func New(s slot.Slot, key string, logger *log.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{slot: s, key: key, log: logger}
}

// LoadAll returns the persisted tasks in stored order.
// Missing, unreadable or malformed data reads as an empty collection.
func (s *Store) LoadAll() []model.Task {
	raw, ok, err := s.slot.Get(s.key)
	if err != nil {
		s.log.Debug("slot unreadable, treating as empty", "key", s.key, "err", err)
		return []model.Task{}
	}
	if !ok {
		return []model.Task{}
	}
	tasks, err := decode(raw)
	if err != nil {
		s.log.Debug("slot malformed, treating as empty", "key", s.key, "err", err)
		return []model.Task{}
	}
	return tasks
}

// Append adds t at the end of the persisted collection.
func (s *Store) Append(t model.Task) error {
	tasks := s.LoadAll()
	tasks = append(tasks, t)
	return s.Replace(tasks)
}

// Remove drops every persisted task matching t on (name, deadline).
// Without a match the collection is written back unchanged.
func (s *Store) Remove(t model.Task) error {
	tasks := s.LoadAll()
	kept := tasks[:0]
	for _, it := range tasks {
		if !it.Matches(t) {
			kept = append(kept, it)
		}
	}
	return s.Replace(kept)
}

// Replace overwrites the persisted collection with tasks.
func (s *Store) Replace(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.slot.Set(s.key, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

func decode(raw string) ([]model.Task, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := tasksSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}
