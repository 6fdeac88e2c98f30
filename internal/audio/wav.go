package audio

import (
	"errors"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Format is the stereo 16-bit layout PCM and WAV produce.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// WAV encodes s as a WAV file in memory.
func WAV(s beep.Streamer, format beep.Format) ([]byte, error) {
	var f memFile
	if err := wav.Encode(&f, s, format); err != nil {
		return nil, err
	}
	return f.buf, nil
}

// memFile is an in-memory io.WriteSeeker; the WAV encoder seeks back
// to patch the header sizes.
type memFile struct {
	buf []byte
	pos int
}

func (f *memFile) Write(p []byte) (int, error) {
	if end := f.pos + len(p); end > len(f.buf) {
		f.buf = append(f.buf, make([]byte, end-len(f.buf))...)
	}
	n := copy(f.buf[f.pos:], p)
	f.pos += n
	return n, nil
}

func (f *memFile) Seek(offset int64, whence int) (int64, error) {
	var base int
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = f.pos
	case io.SeekEnd:
		base = len(f.buf)
	default:
		return 0, errors.New("invalid whence")
	}
	next := base + int(offset)
	if next < 0 {
		return 0, errors.New("negative position")
	}
	f.pos = next
	return int64(next), nil
}
