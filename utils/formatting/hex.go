// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"encoding/hex"
	"fmt"
	"strings"
)

func encodeHex(b []byte) string {
	return fmt.Sprintf("0x%x", b)
}

func decodeHex(str string) ([]byte, error) {
	if !strings.HasPrefix(str, "0x") {
		return nil, fmt.Errorf("%w: missing 0x prefix to hex encoding", ErrInvalidEncoding)
	}
	b, err := hex.DecodeString(str[2:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
	}
	return b, nil
}
