package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/Abhishek-ak7/overseas-site-sub002/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a transactional email through SendGrid.
// An empty API key logs the message instead of sending, for local runs.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendGridApiKey == "" {
		log.Printf("[EMAIL] SendGrid key not set, skipping send to %s (%s)", toEmail, subject)
		return nil
	}

	from := mail.NewEmail(config.AppConfig.EmailFromName, config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[EMAIL] SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid rejected email: status %d", resp.StatusCode)
	}

	return nil
}

// getEmailTemplate wraps body content in the site's transactional layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0B3D91; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.content h2 { color: #0B3D91; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #F2A900; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #F2A900; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">
				%s
			</div>
			<div class="footer">
				%s &middot; This is an automated message, please do not reply.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent, config.AppConfig.EmailFromName)
}

// SendAppointmentConfirmation emails the booking reference after a consultation is booked
func SendAppointmentConfirmation(name, email, reference string, preferredDate time.Time, slot string) {
	body := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>Your consultation request has been received.</p>
		<div class="info-box">
			<p><strong>Booking Reference:</strong> %s</p>
			<p><strong>Preferred Date:</strong> %s</p>
			<p><strong>Slot:</strong> %s</p>
		</div>
		<p>Our counsellor will confirm the appointment shortly.</p>`,
		name, reference, preferredDate.Format("02 Jan 2006"), slot)

	if err := SendEmail(name, email, "Consultation Booking Received", getEmailTemplate("Booking Received", body)); err != nil {
		log.Printf("[EMAIL] Failed to send appointment confirmation to %s: %v", email, err)
	}
}

// SendAppointmentStatusUpdate emails the learner when an admin changes the booking status
func SendAppointmentStatusUpdate(name, email, reference, status string) {
	body := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>Your consultation booking <strong>%s</strong> is now <strong>%s</strong>.</p>`,
		name, reference, status)

	if err := SendEmail(name, email, "Consultation Booking Update", getEmailTemplate("Booking Update", body)); err != nil {
		log.Printf("[EMAIL] Failed to send appointment update to %s: %v", email, err)
	}
}

// SendAppointmentReminder emails a reminder the day before a confirmed consultation
func SendAppointmentReminder(name, email, reference string, preferredDate time.Time, slot string) {
	body := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>A reminder for your consultation tomorrow.</p>
		<div class="info-box">
			<p><strong>Booking Reference:</strong> %s</p>
			<p><strong>Date:</strong> %s</p>
			<p><strong>Slot:</strong> %s</p>
		</div>`,
		name, reference, preferredDate.Format("02 Jan 2006"), slot)

	if err := SendEmail(name, email, "Consultation Reminder", getEmailTemplate("Consultation Reminder", body)); err != nil {
		log.Printf("[EMAIL] Failed to send appointment reminder to %s: %v", email, err)
	}
}

// SendEnrollmentReceipt emails the payment receipt after a successful course purchase
func SendEnrollmentReceipt(name, email, courseTitle, receipt string, amount int64, currency string) {
	body := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>Your payment was successful and you are now enrolled in <strong>%s</strong>.</p>
		<div class="info-box">
			<p><strong>Receipt:</strong> %s</p>
			<p><strong>Amount:</strong> %.2f %s</p>
		</div>
		<a class="btn" href="%s">Start Learning</a>`,
		name, courseTitle, receipt, float64(amount)/100, currency, config.AppConfig.SiteBaseURL)

	if err := SendEmail(name, email, "Enrollment Confirmed", getEmailTemplate("Enrollment Confirmed", body)); err != nil {
		log.Printf("[EMAIL] Failed to send enrollment receipt to %s: %v", email, err)
	}
}
