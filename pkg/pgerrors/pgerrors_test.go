package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	unique := &pq.Error{Code: CodeUniqueViolation}
	serialization := &pq.Error{Code: CodeSerializationFailure}
	deadlock := &pq.Error{Code: CodeDeadlockDetected}
	fk := &pq.Error{Code: CodeForeignKeyViolation}

	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", unique)))
	assert.False(t, IsUniqueViolation(serialization))

	assert.True(t, IsForeignKeyViolation(fk))

	assert.True(t, IsRetryable(serialization))
	assert.True(t, IsRetryable(fmt.Errorf("a: %w", fmt.Errorf("b: %w", deadlock))))
	assert.False(t, IsRetryable(unique))

	assert.Equal(t, "", Code(errors.New("plain")))
	assert.False(t, IsRetryable(nil))
}
