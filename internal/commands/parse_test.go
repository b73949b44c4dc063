package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want Invocation
	}{
		{"qtbug 12345", Invocation{Name: "qtbug", Object: "12345"}},
		{"  symdoc   RFile  Open ", Invocation{Name: "symdoc", Object: "RFile Open"}},
		{"qdoc QString::split from 5.2", Invocation{Name: "qdoc", Object: "QString::split", Source: "5.2"}},
		{"qdoc from from from 5.2", Invocation{Name: "qdoc", Object: "from from", Source: "5.2"}},
		{"qdoc QString from", Invocation{Name: "qdoc", Object: "QString"}},
		{"qtbug", Invocation{Name: "qtbug"}},
		{"symdoc fromage", Invocation{Name: "symdoc", Object: "fromage"}},
		{"symdoc copy from file", Invocation{Name: "symdoc", Object: "copy from file"}},
		{"xref-linux a from b from c", Invocation{Name: "xref-linux", Object: "a from b from c"}},
		{"nosuch text from here", Invocation{Name: "nosuch", Object: "text from here"}},
	}

	r := NewBuiltinRegistry()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := r.ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLineEmpty(t *testing.T) {
	_, err := NewBuiltinRegistry().ParseLine(" \t ")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestInvocationArgs(t *testing.T) {
	assert.Equal(t, []string{"x"}, Invocation{Name: "qtbug", Object: "x"}.Args())
	assert.Equal(t, []string{"x", "5.2"}, Invocation{Name: "qdoc", Object: "x", Source: "5.2"}.Args())
}
