package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/wneessen/go-mail"

	"shoplite_back_end/internal/models"
)

// Mailer sends order confirmations over SMTP. NewMailerFromEnv returns nil
// when SMTP_HOST is unset; callers treat a nil mailer as "email disabled".
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailerFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("⚠️  SMTP_HOST not set — confirmation emails disabled")
		return nil
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@shoplite.dev"
	}

	return &Mailer{
		host:     host,
		port:     port,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     from,
	}
}

func (m *Mailer) SendOrderConfirmation(to string, order models.Order) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Order confirmation " + order.ID)
	msg.SetBodyString(mail.TypeTextHTML, orderConfirmationHTML(order))

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Sending order confirmation to", to)
	return client.DialAndSend(msg)
}

func orderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%d</td>
				<td>%d</td>
				<td>%s</td>
				<td>%s</td>
			</tr>`, item.ProductID, item.Quantity, item.UnitPrice.StringFixed(2), lineTotal.StringFixed(2))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Your order is confirmed</h2>
	<p>Order %s placed at %s.</p>
	<table border="1" cellpadding="6" cellspacing="0">
		<thead>
			<tr><th>Product</th><th>Quantity</th><th>Unit price</th><th>Total</th></tr>
		</thead>
		<tbody>%s</tbody>
		<tfoot>
			<tr><td colspan="3" align="right"><b>Total:</b></td><td><b>%s</b></td></tr>
		</tfoot>
	</table>
</body>
</html>`, order.ID, order.CreatedAt.Format("2006-01-02 15:04"), itemsHTML, order.TotalAmount.StringFixed(2))
}
