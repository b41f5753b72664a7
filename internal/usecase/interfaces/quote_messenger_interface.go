package interfaces

import "context"

// IQuoteMessenger hands a composed quote summary to an external messaging
// target (a WhatsApp deep link in the default implementation). Content is the
// only correctness concern; delivery is fire-and-forget.
type IQuoteMessenger interface {
	ShareQuote(ctx context.Context, mobile, message string) (shareLink string, err error)
}
