package wallet

import (
	"encoding/base64"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// Encoding is a textual transport encoding of a binary field. It is fixed
// per call site and never negotiated per request.
type Encoding string

const (
	EncodingBase58 Encoding = "base58"
	EncodingBase64 Encoding = "base64"
)

var encodings = []Encoding{EncodingBase58, EncodingBase64}

func ParseEncoding(raw string) (Encoding, error) {
	for _, e := range encodings {
		if string(e) == raw {
			return e, nil
		}
	}

	return "", errors.Errorf("unknown encoding %q", raw)
}

func (e Encoding) String() string {
	return string(e)
}

func (e Encoding) Encode(b []byte) string {
	if e == EncodingBase58 {
		return base58.Encode(b)
	}

	return base64.StdEncoding.EncodeToString(b)
}

func (e Encoding) Decode(text string) ([]byte, error) {
	var (
		b   []byte
		err error
	)

	if e == EncodingBase58 {
		b, err = base58.Decode(text)
	} else {
		b, err = base64.StdEncoding.DecodeString(text)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidEncoding, e, err.Error())
	}

	return b, nil
}
