package contactService

import (
	"context"
	"fmt"
	"testing"

	contact "DigitalLab/internal/api/contact"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fakeMailer struct {
	calls   int
	lastTo  string
	sendErr error
}

func (f *fakeMailer) SendInquiry(name, email, service, message string) error {
	f.calls++
	f.lastTo = email
	return f.sendErr
}

func newTestContactService(mailer *fakeMailer) IContactService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewContactService(logger, mailer)
}

func TestSendInquiryDeliversMail(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestContactService(mailer)

	err := svc.SendInquiry(context.Background(), contact.SendInquiryRequest{
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Service: "SEO",
		Message: "We would like a quote for our site.",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, "jamie@example.com", mailer.lastTo)
}

func TestSendInquirySwallowsMailerFailure(t *testing.T) {
	mailer := &fakeMailer{sendErr: fmt.Errorf("smtp connect refused")}
	svc := newTestContactService(mailer)

	err := svc.SendInquiry(context.Background(), contact.SendInquiryRequest{
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Service: "SEO",
		Message: "We would like a quote for our site.",
	})

	// A broken relay must not turn into a visitor-facing error.
	assert.NoError(t, err)
	assert.Equal(t, 1, mailer.calls)
}
