package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dumpfiles/internal/ui/style"
)

func TestColorsAreHex(t *testing.T) {
	for _, c := range []string{
		string(style.Iris),
		string(style.Slate),
		string(style.Green),
		string(style.Red),
		string(style.Yellow),
	} {
		assert.Regexp(t, `^#[0-9A-F]{6}$`, c)
	}
}
