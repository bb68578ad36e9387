package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Select(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantOut string
	}{
		{"valid", "3\n", 3, ""},
		{"trims spaces", "  2 \n", 2, ""},
		{"low bound", "0\n", 0, ""},
		{"not a number", "abc\n1\n", 1, "Please enter a number."},
		{"out of range", "7\n-1\n4\n", 4, "Choose an option between 0 and 6."},
		{"blank line", "\n5\n", 5, "Please enter a number."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out, NewStyles(&out))

			got, err := p.Select(0, 6)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestPrompter_Select_EOF(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("x\n"), &out, NewStyles(&out))

	_, err := p.Select(0, 1)
	require.ErrorIs(t, err, io.EOF)
}
