package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindInvalid, KindOf(Invalid("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("no such row")))
	assert.Equal(t, KindConflict, KindOf(Conflict("in use")))
	assert.Equal(t, Kind(0), KindOf(errors.New("db exploded")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("update inspection: %w", NotFound("Inspection not found"))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestMessageFormatting(t *testing.T) {
	err := Invalid("Question with ID %s not found", "42")
	assert.EqualError(t, err, "Question with ID 42 not found")
}
