// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package formatting converts serialized bytes to and from text. The
// encodings are pure byte/string mappings with no coupling to the
// codec type graph.
package formatting

import (
	"errors"
	"strings"
)

// ErrInvalidEncoding is returned when an unknown encoding is requested
// or the text being decoded is malformed for the requested encoding.
var ErrInvalidEncoding = errors.New("invalid encoding")

type Encoding uint8

const (
	// Hex specifies a 0x-prefixed lowercase hexadecimal format
	Hex Encoding = iota
	// Base58 specifies the bitcoin base-58 alphabet with no checksum
	Base58
	// Base64 specifies standard base-64 with padding
	Base64
	// CB58 specifies base-58 with a 4 byte checksum suffix
	CB58
)

func (enc Encoding) String() string {
	switch enc {
	case Hex:
		return "hex"
	case Base58:
		return "base58"
	case Base64:
		return "base64"
	case CB58:
		return "cb58"
	default:
		return ErrInvalidEncoding.Error()
	}
}

func (enc Encoding) valid() bool {
	switch enc {
	case Hex, Base58, Base64, CB58:
		return true
	}
	return false
}

func (enc Encoding) MarshalJSON() ([]byte, error) {
	if !enc.valid() {
		return nil, ErrInvalidEncoding
	}
	return []byte("\"" + enc.String() + "\""), nil
}

func (enc *Encoding) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == "null" {
		return nil
	}
	switch strings.ToLower(str) {
	case "\"hex\"":
		*enc = Hex
	case "\"base58\"":
		*enc = Base58
	case "\"base64\"":
		*enc = Base64
	case "\"cb58\"":
		*enc = CB58
	default:
		return ErrInvalidEncoding
	}
	return nil
}

// Encode [bytes] to a string using the given encoding format.
func Encode(encoding Encoding, bytes []byte) (string, error) {
	switch encoding {
	case Hex:
		return encodeHex(bytes), nil
	case Base58:
		return encodeBase58(bytes), nil
	case Base64:
		return encodeBase64(bytes), nil
	case CB58:
		return encodeCB58(bytes)
	default:
		return "", ErrInvalidEncoding
	}
}

// Decode [str] to bytes using the given encoding.
// If [str] is the empty string, returns a nil byte slice and no error.
func Decode(encoding Encoding, str string) ([]byte, error) {
	if !encoding.valid() {
		return nil, ErrInvalidEncoding
	}
	if len(str) == 0 {
		return nil, nil
	}
	switch encoding {
	case Hex:
		return decodeHex(str)
	case Base58:
		return decodeBase58(str)
	case Base64:
		return decodeBase64(str)
	default:
		return decodeCB58(str)
	}
}
