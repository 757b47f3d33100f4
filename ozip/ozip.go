// Package ozip converts OZIP firmware containers to plain ZIP archives.
//
// An OZIP container starts with a 12 byte magic number. The archive
// itself begins at PayloadOffset, where only the first AES block is
// enciphered (ECB, no padding); every byte after it is stored as is.
package ozip

import (
	"errors"
	"fmt"
	"io"

	"github.com/YoshihikoAbe/ozip2zip/keyring"
)

const (
	Magic         = "OPPOENCRYPT!"
	PayloadOffset = 0x1050
	BlockSize     = keyring.BlockSize
	ChunkSize     = 0x4000
)

type ozipError string

func (e ozipError) Error() string {
	return "ozip2zip/ozip: " + string(e)
}

var (
	ErrFormat      error = ozipError("magic not match [" + Magic + "]")
	ErrKeyNotFound error = ozipError("can't find the key")
	ErrTruncated   error = ozipError("truncated container")
	ErrWrite       error = ozipError("could not write output")
)

func writeError(err error) error {
	return fmt.Errorf("%w: %w", ErrWrite, err)
}

// readAt reads exactly len(b) bytes at offset. A short read yields short.
func readAt(rd io.ReadSeeker, b []byte, offset int64, short error) error {
	if _, err := rd.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	if _, err := io.ReadFull(rd, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return short
		}
		return err
	}
	return nil
}

func CheckMagic(rd io.ReadSeeker) error {
	magic := make([]byte, len(Magic))
	if err := readAt(rd, magic, 0, ErrFormat); err != nil {
		return err
	}
	if string(magic) != Magic {
		return ErrFormat
	}
	return nil
}

// ReadProbe returns the first block of the payload.
func ReadProbe(rd io.ReadSeeker) ([]byte, error) {
	probe := make([]byte, BlockSize)
	if err := readAt(rd, probe, PayloadOffset, ErrTruncated); err != nil {
		return nil, err
	}
	return probe, nil
}

// Identify checks the container header and searches ks for its key
// without producing any output.
func Identify(rd io.ReadSeeker, ks keyring.KeySource) (keyring.Key, error) {
	if err := CheckMagic(rd); err != nil {
		return keyring.Key{}, err
	}
	probe, err := ReadProbe(rd)
	if err != nil {
		return keyring.Key{}, err
	}
	key, ok := ks.Candidates().Resolve(probe)
	if !ok {
		return keyring.Key{}, ErrKeyNotFound
	}
	return key, nil
}

// Convert identifies the key of the container in rd and writes the
// decrypted archive to wr. Nothing is written unless a key was found.
func Convert(wr io.Writer, rd io.ReadSeeker, ks keyring.KeySource) (keyring.Key, error) {
	key, err := Identify(rd, ks)
	if err != nil {
		return key, err
	}
	return key, Decrypt(wr, rd, key)
}
