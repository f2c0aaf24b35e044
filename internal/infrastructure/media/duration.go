package media

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// probeDuration reads the duration of an MP4/MOV file from its movie header
// box. Only the ISO base media format is understood; anything else reports an
// error and the caller treats duration as unknown.
func probeDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	moov, err := findBox(f, "moov")
	if err != nil {
		return 0, err
	}
	mvhd, err := findBox(io.LimitReader(f, moov), "mvhd")
	if err != nil {
		return 0, err
	}
	if mvhd < 20 {
		return 0, errors.New("mvhd box truncated")
	}

	buf := make([]byte, 4)
	if _, err := io.ReadFull(f, buf); err != nil {
		return 0, err
	}
	version := buf[0]

	switch version {
	case 0:
		// 32-bit timescale and duration after creation/modification times
		body := make([]byte, 16)
		if _, err := io.ReadFull(f, body); err != nil {
			return 0, err
		}
		timescale := binary.BigEndian.Uint32(body[8:12])
		duration := binary.BigEndian.Uint32(body[12:16])
		if timescale == 0 {
			return 0, errors.New("mvhd timescale is zero")
		}
		return float64(duration) / float64(timescale), nil
	case 1:
		body := make([]byte, 28)
		if _, err := io.ReadFull(f, body); err != nil {
			return 0, err
		}
		timescale := binary.BigEndian.Uint32(body[16:20])
		duration := binary.BigEndian.Uint64(body[20:28])
		if timescale == 0 {
			return 0, errors.New("mvhd timescale is zero")
		}
		return float64(duration) / float64(timescale), nil
	default:
		return 0, fmt.Errorf("unsupported mvhd version %d", version)
	}
}

// findBox scans top-level boxes until it finds the named one, leaving the
// reader positioned at its payload. It returns the payload size.
func findBox(r io.Reader, name string) (int64, error) {
	header := make([]byte, 8)
	for {
		if _, err := io.ReadFull(r, header); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, fmt.Errorf("box %q not found", name)
			}
			return 0, err
		}
		size := int64(binary.BigEndian.Uint32(header[:4]))
		payload := size - 8
		if size == 1 {
			// 64-bit largesize follows the type
			ext := make([]byte, 8)
			if _, err := io.ReadFull(r, ext); err != nil {
				return 0, err
			}
			payload = int64(binary.BigEndian.Uint64(ext)) - 16
		}
		if payload < 0 {
			return 0, errors.New("malformed box size")
		}
		if string(header[4:8]) == name {
			return payload, nil
		}
		if _, err := io.CopyN(io.Discard, r, payload); err != nil {
			return 0, err
		}
	}
}
