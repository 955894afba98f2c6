package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		data string
		want Format
	}{
		{"ios array", `[]`, FormatIOS},
		{"ios array with records", `[{"startTime":"x"}]`, FormatIOS},
		{"standard", `{"timelineObjects": []}`, FormatStandard},
		{"semantic", `{"semanticSegments": []}`, FormatSemantic},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			format, err := Detect([]byte(tc.data))
			require.NoError(t, err)
			assert.Equal(t, tc.want, format)
		})
	}
}

func TestDetectUnrecognized(t *testing.T) {
	_, err := Detect([]byte(`{"locations": []}`))
	assert.ErrorIs(t, err, ErrUnrecognizedFormat)

	_, err = Detect([]byte(`"just a string"`))
	assert.ErrorIs(t, err, ErrUnrecognizedFormat)
}

func TestDetectInvalidJSON(t *testing.T) {
	for _, data := range []string{``, `[1,2`, `{"timelineObjects":`} {
		_, err := Detect([]byte(data))
		assert.Error(t, err, "input %q", data)
		assert.NotErrorIs(t, err, ErrUnrecognizedFormat)
	}
}

func TestParserFor(t *testing.T) {
	assert.NotNil(t, ParserFor(FormatIOS))
	assert.NotNil(t, ParserFor(FormatStandard))
	assert.NotNil(t, ParserFor(FormatSemantic))
	assert.Nil(t, ParserFor(Format("bogus")))
}
