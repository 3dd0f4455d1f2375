package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		watched int
		want    Status
	}{
		{"nothing watched", 10, 0, StatusToDo},
		{"partially watched", 10, 4, StatusInProgress},
		{"one left", 10, 9, StatusInProgress},
		{"all watched", 10, 10, StatusFinished},
		{"over-counted", 10, 12, StatusFinished},
		{"single episode watched", 1, 1, StatusFinished},
		{"empty series", 0, 0, StatusToDo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.total, tt.watched))
		})
	}
}
