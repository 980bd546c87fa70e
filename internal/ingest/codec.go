package ingest

import "encoding/base64"

// EncodeToText encodes an arbitrary payload as standard padded base64.
func EncodeToText(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeText is the inverse of EncodeToText.
func DecodeText(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
