package smtp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/parkwatch/parkwatch/pkg/mailqueue"
)

// Client sends mail through a transactional SMTP provider.
type Client struct {
	dialer *gomail.Dialer
	from   string
	domain string
}

func NewClient(dialer *gomail.Dialer, from, domain string) *Client {
	return &Client{
		dialer: dialer,
		from:   from,
		domain: domain,
	}
}

// Send delivers a single message. The error is returned to the caller;
// the mail queue decides what to do with it.
func (c *Client) Send(p mailqueue.Payload) error {
	msg := gomail.NewMessage()
	msg.SetHeader("Message-ID", generateMessageID(c.domain))
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", p.To)
	msg.SetHeader("Subject", p.Subject)
	msg.SetBody("text/plain", p.Body)

	return c.dialer.DialAndSend(msg)
}

func generateMessageID(domain string) string {
	return fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)
}
