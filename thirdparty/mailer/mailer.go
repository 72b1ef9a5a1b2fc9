package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/muhammadheryan/foodhive/cmd/config"
	"github.com/muhammadheryan/foodhive/model"
	"gopkg.in/gomail.v2"
)

type Mail struct {
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(mail *Mail) error
}

type SMTPMailer struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password),
	}
}

func (m *SMTPMailer) Send(mail *Mail) error {
	return m.dialer.DialAndSend(newMessage(m.cfg, mail))
}

func newMessage(cfg config.SMTPConfig, mail *Mail) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", cfg.Email, cfg.SenderName)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/html", mail.HTML)
	return msg
}

var orderPlacedTmpl = template.Must(template.New("order_placed").Parse(`<p>Hi {{.OwnerName}},</p>
<p>{{.BuyerName}} ({{.BuyerEmail}}) just bought <b>{{.Quantity}} x {{.FoodName}}</b>
for a total of <b>${{.TotalPrice.StringFixed 2}}</b>.</p>
<p>Order id: {{.OrderID}}<br>Placed at: {{.CreatedAt.Format "2006-01-02 15:04 MST"}}</p>
<p>FoodHive</p>`))

// OrderPlacedMail builds the notification sent to a listing owner.
func OrderPlacedMail(event *model.OrderPlacedMessage) (*Mail, error) {
	if event.OwnerEmail == "" {
		return nil, fmt.Errorf("order %s has no owner email", event.OrderID)
	}

	var buf bytes.Buffer
	if err := orderPlacedTmpl.Execute(&buf, event); err != nil {
		return nil, err
	}
	return &Mail{
		To:      event.OwnerEmail,
		Subject: fmt.Sprintf("New order for %s", event.FoodName),
		HTML:    buf.String(),
	}, nil
}
