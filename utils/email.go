package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

// senderName is the display name customers see on reminders and
// refund notices.
const senderName = "Sparklean Cleaning"

type smtpSettings struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func loadSMTPSettings() smtpSettings {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}

	return smtpSettings{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     from,
	}
}

// SendEmail delivers an HTML notification to a customer through the
// configured SMTP relay.
func SendEmail(to, subject, body string) error {
	settings := loadSMTPSettings()

	m := gomail.NewMessage()
	m.SetAddressHeader("From", settings.From, senderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(settings.Host, settings.Port, settings.User, settings.Password)
	return d.DialAndSend(m)
}
