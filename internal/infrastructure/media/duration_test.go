package media

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(name string, payload []byte) []byte {
	out := make([]byte, 8, 8+len(payload))
	binary.BigEndian.PutUint32(out[:4], uint32(8+len(payload)))
	copy(out[4:8], name)
	return append(out, payload...)
}

func mvhdV0(timescale, duration uint32) []byte {
	payload := make([]byte, 20)
	// version 0, flags 0, creation/modification zeroed
	binary.BigEndian.PutUint32(payload[12:16], timescale)
	binary.BigEndian.PutUint32(payload[16:20], duration)
	return box("mvhd", payload)
}

func mvhdV1(timescale uint32, duration uint64) []byte {
	payload := make([]byte, 32)
	payload[0] = 1
	binary.BigEndian.PutUint32(payload[20:24], timescale)
	binary.BigEndian.PutUint64(payload[24:32], duration)
	return box("mvhd", payload)
}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestProbeDuration_Version0(t *testing.T) {
	data := box("ftyp", []byte("isom\x00\x00\x02\x00"))
	data = append(data, box("moov", mvhdV0(1000, 42000))...)

	d, err := probeDuration(writeFile(t, data))
	require.NoError(t, err)
	assert.InDelta(t, 42.0, d, 0.001)
}

func TestProbeDuration_Version1(t *testing.T) {
	data := box("ftyp", []byte("isom\x00\x00\x02\x00"))
	data = append(data, box("moov", mvhdV1(90000, 13500000))...)

	d, err := probeDuration(writeFile(t, data))
	require.NoError(t, err)
	assert.InDelta(t, 150.0, d, 0.001)
}

func TestProbeDuration_SkipsLeadingBoxes(t *testing.T) {
	data := box("ftyp", []byte("isom\x00\x00\x02\x00"))
	data = append(data, box("free", make([]byte, 64))...)
	data = append(data, box("moov", mvhdV0(600, 1200))...)

	d, err := probeDuration(writeFile(t, data))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 0.001)
}

func TestProbeDuration_NotMP4(t *testing.T) {
	_, err := probeDuration(writeFile(t, []byte("RIFF not an iso bmff file at all")))
	require.Error(t, err)
}

func TestProbeDuration_ZeroTimescale(t *testing.T) {
	data := box("moov", mvhdV0(0, 1000))
	_, err := probeDuration(writeFile(t, data))
	require.Error(t, err)
}
