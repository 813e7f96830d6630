package matcher_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gofind-io/gofind/internal/matcher"
)

func TestPrinter(t *testing.T) {
	t.Parallel()

	output := &bytes.Buffer{}
	printer := matcher.NewPrinter(output)

	assert.True(t, printer.HasSideEffects())

	assert.True(t, printer.Matches(newFileEntry("testdata/abbbc")))
	assert.True(t, printer.Matches(newFileEntry("testdata/sub/ABBBC")))

	assert.Equal(t, "testdata/abbbc\ntestdata/sub/ABBBC\n", output.String())
}
