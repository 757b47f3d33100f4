package keyring

import (
	"crypto/aes"
	"encoding/hex"
	"strconv"
)

const (
	KeySize   = 16
	BlockSize = aes.BlockSize
)

type keyringError string

func (e keyringError) Error() string {
	return "ozip2zip/keyring: " + string(e)
}

// Key is a single AES-128 candidate key.
type Key [KeySize]byte

func ParseKey(s string) (Key, error) {
	var k Key
	if len(s) != hex.EncodedLen(KeySize) {
		return k, keyringError("invalid key length: " + strconv.Itoa(len(s)) + " != " + strconv.Itoa(hex.EncodedLen(KeySize)))
	}
	if _, err := hex.Decode(k[:], []byte(s)); err != nil {
		return k, keyringError("invalid key: " + err.Error())
	}
	return k, nil
}

func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(b []byte) error {
	key, err := ParseKey(string(b))
	if err != nil {
		return err
	}
	*k = key
	return nil
}

// Label returns the device models a built-in key is known to be used by,
// or an empty string.
func (k Key) Label() string {
	return labels[k]
}

// DecryptBlock deciphers exactly one block under k.
func (k Key) DecryptBlock(dst, src []byte) {
	block, _ := aes.NewCipher(k[:])
	block.Decrypt(dst, src)
}

// EncryptBlock enciphers exactly one block under k.
func (k Key) EncryptBlock(dst, src []byte) {
	block, _ := aes.NewCipher(k[:])
	block.Encrypt(dst, src)
}

// Table is an ordered list of candidate keys. Earlier entries win.
type Table []Key

func (t Table) Candidates() Table {
	return t
}

// Index returns the position of k in t, or -1.
func (t Table) Index(k Key) int {
	for i, key := range t {
		if key == k {
			return i
		}
	}
	return -1
}

var labels = map[Key]string{
	Default[0]: "R9s / R9s Plus / R11",
	Default[1]: "R11s / R11s Plus",
	Default[6]: "Find X",
	Default[7]: "Find X",
}

// Default is the built-in candidate table. It must not be modified.
var Default = Table{
	{0xD6, 0xDC, 0xCF, 0x0A, 0xD5, 0xAC, 0xD4, 0xE0, 0x29, 0x2E, 0x52, 0x2D, 0xB7, 0xC1, 0x38, 0x1E},
	{0xD7, 0xDB, 0xCE, 0x1A, 0xD4, 0xAF, 0xDC, 0xE1, 0x39, 0x3E, 0x51, 0x21, 0xCB, 0xDC, 0x43, 0x21},
	{0x12, 0x34, 0x1E, 0xAA, 0xC4, 0xC1, 0x23, 0xCE, 0x19, 0x35, 0x56, 0xA1, 0xBB, 0xCC, 0x23, 0x2D},
	{0xD7, 0xDB, 0xCE, 0x1A, 0xD4, 0xAF, 0xDC, 0x1E, 0x39, 0x3E, 0x51, 0x21, 0xCB, 0xDC, 0x43, 0x21},
	{0xD6, 0xDC, 0xCF, 0x1A, 0xD5, 0xAC, 0xD4, 0xE0, 0x29, 0x4E, 0x52, 0x2D, 0xB7, 0xC2, 0x38, 0x1E},
	{0x01, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F},
	{0xD4, 0xD2, 0xCD, 0x61, 0xD4, 0xAF, 0xDC, 0xE1, 0x3B, 0x5E, 0x01, 0x22, 0x1B, 0xD1, 0x4D, 0x20},
	{0x26, 0x1C, 0xC7, 0x13, 0x1D, 0x7C, 0x14, 0x81, 0x29, 0x4E, 0x53, 0x2D, 0xB7, 0x52, 0x38, 0x1E},
}
