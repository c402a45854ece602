package security

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

var codeSpan = big.NewInt(900000)

// LoginCode draws a 6-digit code uniformly from [100000, 999999].
func LoginCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpan)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
