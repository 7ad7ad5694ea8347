package share

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"concierge/utils"
)

// MessageSender is the outbound transport: it takes the reseller's phone
// number and the compiled message body and delivers them however the host
// platform allows. The core treats it as an opaque sink.
type MessageSender interface {
	Send(ctx context.Context, phone, body string) error
}

// ShareFunc is a hook into the host's native share surface.
type ShareFunc func(ctx context.Context, title, text string) error

// LinkOpener follows a deep link (sms:...) on the host platform.
type LinkOpener func(ctx context.Context, link string) error

var (
	mobilePattern = regexp.MustCompile(`(?i)mobile`)
	applePattern  = regexp.MustCompile(`(?i)iphone|ipad`)
)

// SMSLink builds the message-app deep link for the given client. iOS wants
// "&" before the body parameter where everything else takes "?".
func SMSLink(phone, body, userAgent string) string {
	sep := "?"
	if applePattern.MatchString(userAgent) {
		sep = "&"
	}
	return "sms:" + phone + sep + "body=" + encodeBody(body)
}

// Message-app handlers expect percent-encoded spaces, not the
// form-encoding "+".
func encodeBody(body string) string {
	return strings.ReplaceAll(url.QueryEscape(body), "+", "%20")
}

// Dispatcher delivers a request message: the native share surface is tried
// first on mobile-classified clients, and the sms deep link is the fallback
// for share failures and desktop clients.
type Dispatcher struct {
	UserAgent string
	Share     ShareFunc // optional; nil skips straight to the deep link
	OpenLink  LinkOpener
	Logger    *zap.Logger
}

// Send implements MessageSender.
func (d *Dispatcher) Send(ctx context.Context, phone, body string) error {
	if phone == "" {
		return fmt.Errorf("share: no recipient phone number")
	}

	if d.Share != nil && mobilePattern.MatchString(d.UserAgent) {
		err := d.Share(ctx, "Ticket Request", body)
		if err == nil {
			return nil
		}
		d.logger().Debug("native share failed, falling back to sms link", zap.Error(err))
	}

	if d.OpenLink == nil {
		return fmt.Errorf("share: no link opener configured")
	}
	return d.OpenLink(ctx, SMSLink(phone, body, d.UserAgent))
}

func (d *Dispatcher) logger() *zap.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return utils.GetLogger()
}
