package ozip

import (
	"errors"
	"io"

	"github.com/YoshihikoAbe/ozip2zip/keyring"
)

// Decrypt writes the archive stored in rd to wr. The first block at
// PayloadOffset is deciphered with key, the rest is copied unchanged.
func Decrypt(wr io.Writer, rd io.ReadSeeker, key keyring.Key) error {
	block, err := ReadProbe(rd)
	if err != nil {
		return err
	}

	key.DecryptBlock(block, block)
	if _, err := wr.Write(block); err != nil {
		return writeError(err)
	}
	return copyChunks(wr, rd)
}

// Encrypt builds an OZIP container from the archive in rd. The region
// between the magic number and PayloadOffset is zero filled.
func Encrypt(wr io.Writer, rd io.Reader, key keyring.Key) error {
	block := make([]byte, BlockSize)
	if _, err := io.ReadFull(rd, block); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return err
	}

	header := make([]byte, PayloadOffset)
	copy(header, Magic)
	if _, err := wr.Write(header); err != nil {
		return writeError(err)
	}

	key.EncryptBlock(block, block)
	if _, err := wr.Write(block); err != nil {
		return writeError(err)
	}
	return copyChunks(wr, rd)
}

// copyChunks copies rd to wr until EOF. Unlike io.Copy it keeps write
// failures apart from read failures.
func copyChunks(wr io.Writer, rd io.Reader) error {
	buf := make([]byte, ChunkSize)
	for {
		n, err := rd.Read(buf)
		if n > 0 {
			if _, werr := wr.Write(buf[:n]); werr != nil {
				return writeError(werr)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
