package checkout

import (
	"net/url"
	"strings"

	"kitis-shop/models"
)

// Mailto renders a composed order as a mailto: URL addressed to the
// shop's order inbox. This is not a Transport: the visitor's own mail
// client does the sending.
func Mailto(payload *models.OrderPayload, to string) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(to)
	b.WriteString("?subject=")
	b.WriteString(escapeComponent(payload.Subject))
	b.WriteString("&body=")
	b.WriteString(escapeComponent(payload.Body))
	return b.String()
}

// escapeComponent percent-encodes like encodeURIComponent; QueryEscape
// alone would turn spaces into '+', which mail clients show literally.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
