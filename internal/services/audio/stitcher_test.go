package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedProbe(seconds float64) ProbeFunc {
	return func(data []byte) (float64, error) {
		return seconds, nil
	}
}

func TestStitcher_ConcatenatesInOrder(t *testing.T) {
	stitcher := NewStitcher(WithProbe(fixedProbe(12.5)))

	data, seconds, err := stitcher.Stitch([][]byte{
		[]byte("AAA"),
		[]byte("BB"),
		[]byte("CCCC"),
	})

	require.NoError(t, err)
	assert.Equal(t, "AAABBCCCC", string(data))
	assert.Equal(t, 12.5, seconds)
}

func TestStitcher_RejectsEmptyInput(t *testing.T) {
	stitcher := NewStitcher(WithProbe(fixedProbe(1)))

	_, _, err := stitcher.Stitch(nil)
	require.Error(t, err)

	_, _, err = stitcher.Stitch([][]byte{})
	require.Error(t, err)
}

func TestStitcher_RejectsMissingSegmentAudio(t *testing.T) {
	stitcher := NewStitcher(WithProbe(fixedProbe(1)))

	_, _, err := stitcher.Stitch([][]byte{
		[]byte("AAA"),
		nil,
		[]byte("CCC"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "segment 2")
}

func TestStitcher_ProbeFailureFailsStitch(t *testing.T) {
	stitcher := NewStitcher(WithProbe(func(data []byte) (float64, error) {
		return 0, errors.New("not decodable")
	}))

	_, _, err := stitcher.Stitch([][]byte{[]byte("AAA")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "measuring stitched audio")
}

func TestStitcher_ProbeReceivesStitchedStream(t *testing.T) {
	var probed []byte
	stitcher := NewStitcher(WithProbe(func(data []byte) (float64, error) {
		probed = data
		return float64(len(data)), nil
	}))

	data, seconds, err := stitcher.Stitch([][]byte{[]byte("12"), []byte("34")})

	require.NoError(t, err)
	assert.Equal(t, data, probed)
	assert.Equal(t, 4.0, seconds)
}

func TestMP3Duration_RejectsGarbage(t *testing.T) {
	_, err := MP3Duration([]byte("definitely not an mp3 stream"))
	require.Error(t, err)
}
