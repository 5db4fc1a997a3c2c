package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dumpfiles/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	sentinel := zerr.New("import not found")

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "standard error",
			err:  errors.New("plain"),
			want: []string{"plain"},
		},
		{
			name: "standard wrapping stops the walk",
			err:  fmt.Errorf("outer: %w", sentinel),
			want: []string{"outer: import not found"},
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("EOF"), "read manifest"), "failed to load asset catalog"),
			want: []string{"failed to load asset catalog", "read manifest", "EOF"},
		},
		{
			name: "metadata is appended sorted",
			err:  zerr.With(zerr.With(sentinel, "import", "vars"), "file", "/src/app.scss"),
			want: []string{"import not found (file=/src/app.scss, import=vars)"},
		},
		{
			name: "joined errors are flattened",
			err:  errors.Join(zerr.New("failed to dump asset"), zerr.Wrap(errors.New("disk full"), "write")),
			want: []string{"failed to dump asset", "write", "disk full"},
		},
		{
			name: "empty zerr message is skipped",
			err:  zerr.Wrap(errors.New("inner"), ""),
			want: []string{"inner"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	got := logger.FormatErrorEntries([]string{"top\nsecond line", "cause\ncontinued", "root"})

	want := "Error: top\n" +
		"       second line\n" +
		"\n" +
		"  Caused by:\n" +
		"    → cause\n" +
		"      continued\n" +
		"    → root"
	assert.Equal(t, want, got)
}
