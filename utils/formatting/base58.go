// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58/base58"

	"github.com/ava-labs/bcs/utils/hashing"
)

const (
	// checksumLen is the number of sha256 bytes appended before CB58
	// encoding.
	checksumLen = 4

	// maxCB58EncodeSize is the maximum length byte slice that can be
	// CB58-encoded.
	maxCB58EncodeSize = 16 * 1024 // 16 KiB
)

func encodeBase58(b []byte) string {
	return base58.Encode(b)
}

func decodeBase58(str string) ([]byte, error) {
	b, err := base58.Decode(str)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
	}
	return b, nil
}

func encodeCB58(b []byte) (string, error) {
	if len(b) > maxCB58EncodeSize {
		return "", fmt.Errorf("%w: byte slice length (%d) > maximum for cb58 (%d)",
			ErrInvalidEncoding, len(b), maxCB58EncodeSize)
	}
	checked := make([]byte, len(b)+checksumLen)
	copy(checked, b)
	copy(checked[len(b):], hashing.Checksum(b, checksumLen))
	return base58.Encode(checked), nil
}

func decodeCB58(str string) ([]byte, error) {
	decoded, err := base58.Decode(str)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
	}
	if len(decoded) < checksumLen {
		return nil, fmt.Errorf("%w: input string is smaller than the checksum size", ErrInvalidEncoding)
	}
	rawBytes := decoded[:len(decoded)-checksumLen]
	checksum := decoded[len(decoded)-checksumLen:]
	if !bytes.Equal(checksum, hashing.Checksum(rawBytes, checksumLen)) {
		return nil, fmt.Errorf("%w: invalid input checksum", ErrInvalidEncoding)
	}
	return rawBytes, nil
}
