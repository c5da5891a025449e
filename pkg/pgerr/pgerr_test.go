package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pq.Error{Code: UniqueViolation})
	serialization := fmt.Errorf("commit: %w", &pq.Error{Code: SerializationFailure})
	deadlock := &pq.Error{Code: DeadlockDetected}
	fk := &pq.Error{Code: ForeignKeyViolation}
	plain := errors.New("connection refused")

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(serialization))

	assert.True(t, IsSerializationFailure(serialization))
	assert.True(t, IsSerializationFailure(deadlock))
	assert.False(t, IsSerializationFailure(unique))

	assert.True(t, IsForeignKeyViolation(fk))

	assert.Empty(t, Code(plain))
	assert.Empty(t, Code(nil))
}
