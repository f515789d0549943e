package service

import (
	"arkan22/cloth-api/model"
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

func linkScheme() string {
	if viper.GetBool("host.ssl.enabled") {
		return "https"
	}

	return "http"
}

func sendMail(sendTo, subject, body string) error {
	from := viper.GetString("mail.sender")
	if sendTo == from {
		return errors.New("invalid email address")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", sendTo)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		viper.GetString("mail.host"),
		viper.GetInt("mail.port"),
		from,
		viper.GetString("mail.password"),
	)

	return d.DialAndSend(m)
}

// SendVerificationMail mails the signed link a fresh account has to open
// before logging in becomes possible.
func SendVerificationMail(t *model.VerificationToken, sendTo string) error {
	link := fmt.Sprintf("%v://%v/api/users/verify?user_id=%v&token=%v",
		linkScheme(), viper.GetString("host.domain"), t.UserID, t.Token)

	return sendMail(
		sendTo,
		"Verify your email address",
		fmt.Sprintf("Click <a href='%v'>here</a> to verify your account.<br><br>This link will expire in 10 minutes", link),
	)
}

// SendPasswordResetMail mails a reset link. The password itself never
// travels over email, the recipient picks a new one on the reset form.
func SendPasswordResetMail(t *model.VerificationToken, sendTo string) error {
	link := fmt.Sprintf("%v://%v/reset-password?user_id=%v&token=%v",
		linkScheme(), viper.GetString("host.domain"), t.UserID, t.Token)

	return sendMail(
		sendTo,
		"Reset your password",
		fmt.Sprintf("Click <a href='%v'>here</a> to choose a new password.<br><br>This link will expire in 10 minutes. If you didn't request this you can ignore this email", link),
	)
}
