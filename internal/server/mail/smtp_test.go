package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"
)

func TestSend_Success(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	orig := sendMail
	sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}
	defer func() { sendMail = orig }()

	s := NewSMTPSender("smtp.example.com", "587", "user", "pass", "noreply@example.com")
	err := s.Send(context.Background(), "alice@x.com", "Hi", "body text")
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}

	if gotAddr != "smtp.example.com:587" {
		t.Fatalf("unexpected addr %q", gotAddr)
	}
	if gotFrom != "noreply@example.com" || len(gotTo) != 1 || gotTo[0] != "alice@x.com" {
		t.Fatalf("unexpected envelope: from=%q to=%v", gotFrom, gotTo)
	}
	if !strings.Contains(string(gotMsg), "Subject: Hi\r\n") {
		t.Fatalf("message missing subject header: %q", gotMsg)
	}
	if !strings.Contains(string(gotMsg), "\r\n\r\nbody text\r\n") {
		t.Fatalf("message missing body: %q", gotMsg)
	}
}

func TestSend_DeliveryError(t *testing.T) {
	orig := sendMail
	sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		return errors.New("relay refused")
	}
	defer func() { sendMail = orig }()

	s := NewSMTPSender("h", "25", "", "", "a@b")
	if err := s.Send(context.Background(), "c@d", "s", "b"); err == nil {
		t.Fatalf("expected delivery error")
	}
}

func TestSend_ContextExpiry(t *testing.T) {
	orig := sendMail
	sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		time.Sleep(time.Second)
		return nil
	}
	defer func() { sendMail = orig }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	s := NewSMTPSender("h", "25", "", "", "a@b")
	if err := s.Send(ctx, "c@d", "s", "b"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestVerificationBody_ContainsCode(t *testing.T) {
	body := VerificationBody("123456")
	if !strings.Contains(body, "123456") {
		t.Fatalf("body must contain the code: %q", body)
	}
}
