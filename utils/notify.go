package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"time"

	"github.com/go-resty/resty/v2"

	"socialmentor/config"
	"socialmentor/models"
)

// NotifyDelivery announces a completed delivery to the configured webhook and
// emails the donor. Both channels are best-effort: the delivery already
// happened, so failures are logged and dropped. Intended to run in its own
// goroutine.
func NotifyDelivery(donation models.Donation, donor, volunteer models.PublicUser, peopleHelped *int) {
	sendDeliveryWebhook(donation, donor, volunteer, peopleHelped)
	sendDeliveryEmail(donation, donor, volunteer)
}

func sendDeliveryWebhook(donation models.Donation, donor, volunteer models.PublicUser, peopleHelped *int) {
	webhookURL := config.AppConfig.NotifyWebhookURL
	if webhookURL == "" {
		return
	}

	payload := map[string]interface{}{
		"event":       "donation.delivered",
		"donation_id": donation.ID,
		"category":    donation.Category,
		"donor":       donor.Username,
		"volunteer":   volunteer.Username,
		"recipient":   donation.RecipientName,
	}
	if peopleHelped != nil {
		payload["people_helped"] = *peopleHelped
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(webhookURL)
	if err != nil {
		log.Printf("Error calling delivery webhook: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("Delivery webhook returned %d: %s", resp.StatusCode(), resp.String())
	}
}

func sendDeliveryEmail(donation models.Donation, donor, volunteer models.PublicUser) {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword
	if from == "" || password == "" {
		return
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SocialMentor <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", donor.Email)
	msg += "Subject: Your donation was delivered\r\n\r\n"
	msg += fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif;">
				<h2>Good news, %s!</h2>
				<p>Your donation <b>%s</b> (%s) was delivered to <b>%s</b> by volunteer %s.</p>
				<p>Thank you for making a difference.</p>
			</body>
		</html>
	`, donor.Username, donation.Description, donation.Category, donation.RecipientName, volunteer.Username)

	auth := smtp.PlainAuth("", from, password, smtpHost)
	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{donor.Email}, []byte(msg)); err != nil {
		log.Printf("Error sending delivery email: %v", err)
	}
}
