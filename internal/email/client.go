package email

import (
	"crypto/tls"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wneessen/go-mail"
)

// Client sends transactional mail over SMTP.
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient creates a new email client.
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail sends a single HTML email.
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("create SMTP client (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}

// BookingInfo carries the booking details for the confirmation email.
type BookingInfo struct {
	ID             string
	GuestName      string
	GuestEmail     string
	StudioNameEn   string
	StudioNameAr   string
	StartDate      time.Time
	EndDate        time.Time
	DurationDays   int
	TotalPrice     decimal.Decimal
	OriginalPrice  decimal.Decimal
	SavingsPercent int
	CleaningFee    decimal.Decimal
}

// SendBookingConfirmation sends the bilingual confirmation email.
func (c *Client) SendBookingConfirmation(info BookingInfo) error {
	subject := fmt.Sprintf("Booking Confirmed | تم تأكيد الحجز — %s", c.fromName)
	htmlBody := confirmationHTML(info)

	return c.SendEmail(info.GuestEmail, subject, htmlBody)
}

// confirmationHTML renders the confirmation body. English first, Arabic
// below it right-to-left, matching the site's bilingual layout.
func confirmationHTML(info BookingInfo) string {
	savingsRowEn := ""
	savingsRowAr := ""
	if info.SavingsPercent > 0 {
		saved := info.OriginalPrice.Sub(info.TotalPrice.Sub(info.CleaningFee))
		savingsRowEn = fmt.Sprintf(`
			<tr>
				<td style="padding: 8px 0;"><strong>Long-stay discount (%d%%):</strong></td>
				<td style="padding: 8px 0; text-align: right; color: #28a745;">-%s</td>
			</tr>`, info.SavingsPercent, saved.StringFixed(2))
		savingsRowAr = fmt.Sprintf(`
			<tr>
				<td style="padding: 8px 0;"><strong>خصم الإقامة الطويلة (%d%%):</strong></td>
				<td style="padding: 8px 0; text-align: left; color: #28a745;">-%s</td>
			</tr>`, info.SavingsPercent, saved.StringFixed(2))
	}

	cleaningRowEn := ""
	cleaningRowAr := ""
	if info.CleaningFee.IsPositive() {
		cleaningRowEn = fmt.Sprintf(`
			<tr>
				<td style="padding: 8px 0;"><strong>Cleaning service:</strong></td>
				<td style="padding: 8px 0; text-align: right;">%s</td>
			</tr>`, info.CleaningFee.StringFixed(2))
		cleaningRowAr = fmt.Sprintf(`
			<tr>
				<td style="padding: 8px 0;"><strong>خدمة التنظيف:</strong></td>
				<td style="padding: 8px 0; text-align: left;">%s</td>
			</tr>`, info.CleaningFee.StringFixed(2))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Booking Confirmation</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px;">
		<tr>
			<td align="center">
				<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
					<tr>
						<td style="background-color: #1e3a5f; padding: 40px 20px; text-align: center;">
							<h1 style="color: #ffffff; margin: 0; font-size: 26px;">Booking Confirmed!</h1>
							<h2 style="color: #ffffff; margin: 10px 0 0 0; font-size: 22px;" dir="rtl">تم تأكيد حجزك!</h2>
						</td>
					</tr>

					<tr>
						<td style="padding: 40px 30px;">
							<p style="color: #333;">Dear %s,</p>
							<p style="color: #555;">Your booking has been confirmed. Here are the details:</p>

							<div style="background-color: #f8f9fa; border-left: 4px solid #1e3a5f; padding: 20px; margin-bottom: 20px;">
								<table width="100%%" cellpadding="0" cellspacing="0">
									<tr>
										<td style="padding: 8px 0;"><strong>Booking reference:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Studio:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Check-in:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Check-out:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Duration:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%d days</td>
									</tr>
									%s%s
									<tr style="border-top: 2px solid #1e3a5f;">
										<td style="padding: 15px 0 0 0;"><strong style="font-size: 18px;">Total:</strong></td>
										<td style="padding: 15px 0 0 0; text-align: right;"><strong style="font-size: 22px; color: #1e3a5f;">%s</strong></td>
									</tr>
								</table>
							</div>

							<div style="background-color: #f8f9fa; border-right: 4px solid #1e3a5f; padding: 20px;" dir="rtl">
								<p style="color: #333;">عزيزي %s،</p>
								<p style="color: #555;">تم تأكيد حجزك بنجاح. التفاصيل أدناه:</p>
								<table width="100%%" cellpadding="0" cellspacing="0">
									<tr>
										<td style="padding: 8px 0;"><strong>رقم الحجز:</strong></td>
										<td style="padding: 8px 0; text-align: left;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>الاستوديو:</strong></td>
										<td style="padding: 8px 0; text-align: left;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>تاريخ الدخول:</strong></td>
										<td style="padding: 8px 0; text-align: left;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>تاريخ الخروج:</strong></td>
										<td style="padding: 8px 0; text-align: left;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>المدة:</strong></td>
										<td style="padding: 8px 0; text-align: left;">%d يوماً</td>
									</tr>
									%s%s
									<tr style="border-top: 2px solid #1e3a5f;">
										<td style="padding: 15px 0 0 0;"><strong style="font-size: 18px;">الإجمالي:</strong></td>
										<td style="padding: 15px 0 0 0; text-align: left;"><strong style="font-size: 22px; color: #1e3a5f;">%s</strong></td>
									</tr>
								</table>
							</div>
						</td>
					</tr>

					<tr>
						<td style="background-color: #f8f9fa; padding: 30px; text-align: center; border-top: 1px solid #e0e0e0;">
							<p style="margin: 0 0 10px 0; color: #666; font-size: 14px;">
								Questions? Reply to this email or reach us on WhatsApp.
							</p>
							<p style="margin: 0; color: #999; font-size: 13px;" dir="rtl">
								لأي استفسار، يمكنك الرد على هذا البريد أو التواصل معنا عبر واتساب.
							</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>
	`,
		info.GuestName,
		info.ID,
		info.StudioNameEn,
		info.StartDate.Format("02/01/2006"),
		info.EndDate.Format("02/01/2006"),
		info.DurationDays,
		savingsRowEn,
		cleaningRowEn,
		info.TotalPrice.StringFixed(2),
		info.GuestName,
		info.ID,
		info.StudioNameAr,
		info.StartDate.Format("02/01/2006"),
		info.EndDate.Format("02/01/2006"),
		info.DurationDays,
		savingsRowAr,
		cleaningRowAr,
		info.TotalPrice.StringFixed(2),
	)
}
