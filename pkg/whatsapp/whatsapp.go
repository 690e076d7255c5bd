// Package whatsapp composes the customer notification message for an order
// and turns it into a dispatchable wa.me deep link. Nothing here performs
// network I/O; opening the link is the caller's job.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/dustore/pos-admin-api/pkg/money"
	"github.com/dustore/pos-admin-api/pkg/phone"
	"github.com/dustore/pos-admin-api/pkg/receipt"
)

// fallbackName addresses customers whose name is unknown.
const fallbackName = "Pelanggan"

// ComposeMessage renders the notification text for a receipt. nameOverride,
// when non-empty, replaces the receipt's customer name (the cashier can
// correct it at send time). Composing is pure: the same content always
// yields the same text.
func ComposeMessage(c *receipt.Content, nameOverride string) string {
	name := c.Customer
	if nameOverride != "" {
		name = nameOverride
	}
	if name == "" {
		name = fallbackName
	}

	lines := make([]string, 0, len(c.Lines))
	for _, line := range c.Lines {
		unit := money.Group(line.UnitPrice)
		if line.Quantity > 1 {
			lines = append(lines, fmt.Sprintf("- %dx %s (@ Rp %s)", line.Quantity, line.Name, unit))
		} else {
			lines = append(lines, fmt.Sprintf("- %s (Rp %s)", line.Name, unit))
		}
	}

	return fmt.Sprintf(`Halo %s,
Berikut detail pesanan Anda (#%s):

%s

Total: %s

Terima kasih telah berbelanja di %s!`,
		name, c.OrderNo, strings.Join(lines, "\n"), money.Rupiah(c.Total), c.Store.Name)
}

// BuildLink normalizes the raw phone number and percent-encodes the message
// into a wa.me deep link. Returns phone.ErrInvalidPhone for digit-free
// input; that check blocks the send action before anything is dispatched.
func BuildLink(rawPhone, message string) (string, error) {
	normalized, err := phone.Normalize(rawPhone)
	if err != nil {
		return "", err
	}
	return "https://wa.me/" + normalized + "?text=" + encodeMessage(message), nil
}

// encodeMessage percent-encodes like encodeURIComponent: spaces become %20,
// not "+", so messaging apps render them correctly.
func encodeMessage(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// LinkQR renders the deep link as a PNG QR code of size x size pixels, so a
// cashier screen can hand the prefilled chat to a phone camera.
func LinkQR(link string, size int) ([]byte, error) {
	return qrcode.Encode(link, qrcode.Medium, size)
}
