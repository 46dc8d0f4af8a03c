package contactService

import (
	contact "DigitalLab/internal/api/contact"
	contextPkg "DigitalLab/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// SendInquiry relays a visitor inquiry to the notification inbox. Delivery
// failures are logged but never surfaced; the visitor always gets a success
// so a broken mail relay cannot leak infrastructure details.
func (s *contactService) SendInquiry(ctx context.Context, req contact.SendInquiryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.mailer.SendInquiry(req.Name, req.Email, req.Service, req.Message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"service":    req.Service,
		}).Error("Failed to send inquiry email")
		return nil
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"service":    req.Service,
	}).Info("Inquiry email sent")

	return nil
}
