package ozip

import (
	"os"

	"github.com/YoshihikoAbe/ozip2zip/keyring"
)

const DefaultSuffix = ".zip"

func OutputName(src, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return src + suffix
}

// ConvertFile converts the container at src into an archive at dst.
// dst is only created once a key has been found, and is removed again
// if the conversion fails.
func ConvertFile(src, dst string, ks keyring.KeySource) (key keyring.Key, err error) {
	in, err := os.Open(src)
	if err != nil {
		return key, err
	}
	defer in.Close()

	if key, err = Identify(in, ks); err != nil {
		return key, err
	}

	out, err := os.Create(dst)
	if err != nil {
		return key, writeError(err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = writeError(cerr)
		}
		if err != nil {
			os.Remove(dst)
		}
	}()

	err = Decrypt(out, in, key)
	return key, err
}

// EncryptFile packs the archive at src into a container at dst.
func EncryptFile(src, dst string, key keyring.Key) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return writeError(err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = writeError(cerr)
		}
		if err != nil {
			os.Remove(dst)
		}
	}()

	return Encrypt(out, in, key)
}
