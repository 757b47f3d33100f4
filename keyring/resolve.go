package keyring

// Signature is the ZIP local file header prefix expected at the start
// of a correctly decrypted payload.
var Signature = [2]byte{0x50, 0x4B}

// Resolve tries every key in t against probe and returns the first one
// that deciphers it to a block starting with Signature.
func (t Table) Resolve(probe []byte) (Key, bool) {
	if len(probe) != BlockSize {
		return Key{}, false
	}

	buf := make([]byte, BlockSize)
	for _, key := range t {
		key.DecryptBlock(buf, probe)
		if buf[0] == Signature[0] && buf[1] == Signature[1] {
			return key, true
		}
	}
	return Key{}, false
}
