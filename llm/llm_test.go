package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripThink(t *testing.T) {
	tTable := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "think block removed",
			in:   "<think>musing about the question</think>\nRTO is the recovery time objective.",
			want: "RTO is the recovery time objective.",
		},
		{
			name: "no think block untouched",
			in:   "plain answer",
			want: "plain answer",
		},
		{
			name: "empty answer after think",
			in:   "<think>only thoughts</think>",
			want: "",
		},
	}

	for _, tc := range tTable {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripThink(tc.in))
		})
	}
}
