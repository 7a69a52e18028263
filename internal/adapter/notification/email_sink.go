package notification

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"strings"
	"text/template"
	"time"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/infrastructure/logger"
	"hiko_buyforme/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

var emailSubjects = map[entities.NotificationEvent]string{
	entities.EventQuoteSent:        "[HiKo] 구매대행 견적이 도착했습니다",
	entities.EventQuoteApproved:    "[HiKo] 견적 승인이 확인되었습니다",
	entities.EventPaymentConfirmed: "[HiKo] 결제가 확인되었습니다",
	entities.EventOrderShipped:     "[HiKo] 상품이 발송되었습니다",
	entities.EventOrderDelivered:   "[HiKo] 배송이 완료되었습니다",
}

var emailBody = template.Must(template.New("event").Parse(`{{.Name}}님, 안녕하세요.

상품: {{.Title}}
주문 번호: {{.RequestID}}
상태: {{.Status}}
{{- if .Total}}
견적 금액: {{.Total}}원 (v{{.QuoteVersion}})
{{- end}}
{{- if .ValidUntil}}
견적 유효기간: {{.ValidUntil}}
{{- end}}
{{- if .TrackingNumber}}
운송장 번호: {{.TrackingNumber}}{{if .TrackingURL}} ({{.TrackingURL}}){{end}}
{{- end}}

HiKo 드림
`))

type emailData struct {
	Name           string
	Title          string
	RequestID      string
	Status         string
	Total          int64
	QuoteVersion   int
	ValidUntil     string
	TrackingNumber string
	TrackingURL    string
}

// EmailSink mails the customer at the shipping email on every event.
// Requests without an email are skipped.
type EmailSink struct {
	sender    mailSender
	fromName  string
	fromEmail string
	log       *logger.Logger
}

var _ interfaces.INotificationSink = (*EmailSink)(nil)

func NewEmailSink(cfg SMTPConfig, log *logger.Logger) (*EmailSink, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15 * time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp", addr)
		}),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}
	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return newEmailSink(client, cfg.FromAddress, cfg.FromName, log), nil
}

func newEmailSink(sender mailSender, fromEmail, fromName string, log *logger.Logger) *EmailSink {
	if log == nil {
		log = logger.Nop()
	}
	return &EmailSink{sender: sender, fromEmail: fromEmail, fromName: fromName, log: log}
}

func (s *EmailSink) Notify(ctx context.Context, event entities.NotificationEvent, r entities.BuyForMeRequest) error {
	to := strings.TrimSpace(r.ShippingInfo.Email)
	if to == "" {
		s.log.Debug("email notification skipped", "request_id", r.ID, "event", string(event))
		return nil
	}
	msg, err := s.buildMessage(event, r, to)
	if err != nil {
		return err
	}
	if err := s.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (s *EmailSink) buildMessage(event entities.NotificationEvent, r entities.BuyForMeRequest, to string) (*gomail.Msg, error) {
	subject, ok := emailSubjects[event]
	if !ok {
		return nil, fmt.Errorf("no email template for event %q", event)
	}

	data := emailData{
		Name:      r.ShippingInfo.Name,
		Title:     r.ProductInfo.Title,
		RequestID: r.ID,
		Status:    string(r.Status),
	}
	if r.Quote != nil {
		data.Total = r.Quote.TotalAmount
		data.QuoteVersion = r.Quote.Version
		if event == entities.EventQuoteSent {
			data.ValidUntil = r.Quote.ValidUntil.Format("2006-01-02")
		}
	}
	if r.OrderInfo != nil {
		data.TrackingNumber = r.OrderInfo.TrackingNumber
		data.TrackingURL = r.OrderInfo.TrackingURL
	}

	var body bytes.Buffer
	if err := emailBody.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("render email: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body.String())
	return msg, nil
}
