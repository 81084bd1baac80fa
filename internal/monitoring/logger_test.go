package monitoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	orig := Logf
	defer func() { Logf = orig }()

	var got string
	SetLogger(func(format string, v ...interface{}) { got = fmt.Sprintf(format, v...) })
	Logf("inflated %d maps", 3)
	assert.Equal(t, "inflated 3 maps", got)

	SetLogger(nil)
	assert.NotPanics(t, func() { Logf("muted %s", "line") })
}
