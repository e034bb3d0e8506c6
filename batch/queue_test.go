package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_DedupesAndPreservesOrder(t *testing.T) {
	q := NewQueue()
	q.Add("176-111")
	q.Add("176-222")
	q.Add("176-111")
	q.Add("  176-222  ")
	q.Add("")
	q.Add("   ")

	assert.Equal(t, 2, q.Len())

	var out []string
	for q.HasNext() {
		out = append(out, q.Next())
	}
	assert.Equal(t, []string{"176-111", "176-222"}, out)
}
