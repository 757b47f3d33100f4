package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/YoshihikoAbe/ozip2zip/keyring"
	"github.com/YoshihikoAbe/ozip2zip/ozip"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: make-test-container OUTPUT")
		os.Exit(2)
	}
	if err := write(os.Args[1]); err != nil {
		panic(err)
	}
}

// write creates a container holding "PK\x03\x04", 12 zero bytes and 100
// bytes of data, enciphered with the sequential test key
func write(name string) error {
	plain := append([]byte("PK\x03\x04"), make([]byte, 12)...)
	for i := 0; i < 100; i++ {
		plain = append(plain, byte(i))
	}

	buf := &bytes.Buffer{}
	if err := ozip.Encrypt(buf, bytes.NewReader(plain), keyring.Default[5]); err != nil {
		return err
	}
	return os.WriteFile(name, buf.Bytes(), 0644)
}
