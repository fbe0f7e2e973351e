package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendDebtReminder(ctx context.Context, email, name string, totalDebt decimal.Decimal, hasOverdueLoan bool) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Outstanding balance on your tool rentals")

	body := fmt.Sprintf("Hello %s,\n\nYou currently owe $%s in fines and damage charges on returned tools.", name, totalDebt.StringFixed(0))
	if hasOverdueLoan {
		body += "\n\nYou also have at least one loan past its due date. Please return the tool as soon as possible."
	}
	body += "\n\nNew loans are blocked until these debts are settled.\n\nToolRent"
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send debt reminder: %w", err)
	}
	return nil
}
