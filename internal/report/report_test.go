package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_PlainWhenNoColor(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)
	r.Reportf("entry %d not found", 4)
	assert.Equal(t, "error: entry 4 not found\n", buf.String())
}
