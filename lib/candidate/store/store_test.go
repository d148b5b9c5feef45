package candidatestore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"jane":       "jane",
		"100%":       `100\%`,
		"job_title":  `job\_title`,
		`back\slash`: `back\\slash`,
		"%_%":        `\%\_\%`,
	}
	for input, expected := range cases {
		require.Equal(t, expected, escapeLike(input), input)
	}
}
