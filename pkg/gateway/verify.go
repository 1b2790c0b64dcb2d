package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Storefront clients have shipped with several naming conventions for the
// verification fields. Each field accepts an ordered list of aliases; the
// first one present in the request body wins.
var (
	paymentIDAliases = []string{"razorpay_payment_id", "payment_id", "paymentId", "razorpayPaymentId"}
	orderIDAliases   = []string{"razorpay_order_id", "order_id", "orderId", "razorpayOrderId"}
	signatureAliases = []string{"razorpay_signature", "signature", "razorpaySignature"}
)

// firstString resolves a field from the raw request body by trying each alias
// in order. Only non-empty string values count as present.
func firstString(body map[string]any, aliases []string) string {
	for _, key := range aliases {
		if v, ok := body[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// Signature computes the Razorpay order signature: HMAC-SHA256 over
// "<orderID>|<paymentID>" keyed by the shared secret, hex encoded.
func Signature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
