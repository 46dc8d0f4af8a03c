package contactService

import (
	contact "DigitalLab/internal/api/contact"
	"DigitalLab/pkg/smtp"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IContactService interface {
	SendInquiry(ctx context.Context, req contact.SendInquiryRequest) error
}

type contactService struct {
	log    *logrus.Logger
	mailer smtp.ItfSmtp
}

func NewContactService(log *logrus.Logger, mailer smtp.ItfSmtp) IContactService {
	return &contactService{
		log:    log,
		mailer: mailer,
	}
}
