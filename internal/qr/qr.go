package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

// ToolPayload is the string encoded into a tool's QR label. Scanners strip
// the prefix to recover the identifier.
func ToolPayload(toolID string) string {
	return "TOOL:" + toolID
}

// DataURI encodes the payload as a PNG QR code and returns it as a base64
// data URI suitable for direct embedding in an <img> tag.
func DataURI(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, imageSize)
	if err != nil {
		return "", fmt.Errorf("encode qr payload: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
