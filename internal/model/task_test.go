package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_Matches(t *testing.T) {
	base := Task{Name: "Buy milk", Description: "2%", Deadline: "2025-01-05"}

	tests := []struct {
		name  string
		other Task
		want  bool
	}{
		{"same task", base, true},
		{"different description still matches", Task{Name: "Buy milk", Description: "whole", Deadline: "2025-01-05"}, true},
		{"different name", Task{Name: "Buy bread", Description: "2%", Deadline: "2025-01-05"}, false},
		{"different deadline", Task{Name: "Buy milk", Description: "2%", Deadline: "2025-01-06"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Matches(tt.other))
		})
	}
}

func TestTask_Valid(t *testing.T) {
	assert.True(t, Task{Name: "a", Description: "b", Deadline: "2025-01-05"}.Valid())
	assert.False(t, Task{Name: "a", Deadline: "2025-01-05"}.Valid())
	assert.False(t, Task{Description: "b", Deadline: "2025-01-05"}.Valid())
	assert.False(t, Task{Name: "a", Description: "b"}.Valid())
}
