package helpers

import (
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRPayload is the content encoded in every ticket's QR code. The encoding is
// compact JSON: self-describing, round-trippable, and safe for owner names
// containing any delimiter character. Scanner apps depend on these field
// names, so they must stay stable.
type QRPayload struct {
	BookingID    uint   `json:"bookingId"`
	EventID      uint   `json:"eventId"`
	TicketNumber int    `json:"ticketNumber"`
	Owner        string `json:"owner"`
	TicketID     string `json:"ticketId"`
}

func (p QRPayload) Encode() (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func DecodeQRPayload(code string) (QRPayload, error) {
	var p QRPayload
	if err := json.Unmarshal([]byte(code), &p); err != nil {
		return QRPayload{}, fmt.Errorf("malformed qr payload: %w", err)
	}
	if p.BookingID == 0 || p.TicketNumber < 1 || p.TicketID == "" {
		return QRPayload{}, fmt.Errorf("incomplete qr payload")
	}
	return p, nil
}

// RenderQRPNG renders the payload string as a PNG image, size pixels square.
func RenderQRPNG(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
