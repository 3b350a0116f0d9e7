// Package ses implements the Notifier port on Amazon SES.
package ses

import (
	"context"

	"transcription/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// Notifier sends customer mail through SES templates and operational alerts
// as plain mail to a staff address.
type Notifier struct {
	client     *sesv2.Client
	sender     string
	alertEmail string
}

// NewNotifier creates an SES-backed notifier. Templated mail goes out from
// sender; alerts go to alertEmail.
func NewNotifier(client *sesv2.Client, sender, alertEmail string) (*Notifier, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if sender == "" {
		return nil, errs.NewValueIsRequiredError("sender")
	}
	if alertEmail == "" {
		return nil, errs.NewValueIsRequiredError("alertEmail")
	}

	return &Notifier{
		client:     client,
		sender:     sender,
		alertEmail: alertEmail,
	}, nil
}

// SendMail renders the named SES template with data and mails it to the
// recipient. The recipient is a principal identifier; the SES identity is a
// forwarding domain whose inbound rules resolve identifiers to real
// addresses through the account directory, keeping mailbox addresses out of
// this service.
func (n *Notifier) SendMail(ctx context.Context, template string, recipient string, data map[string]string) error {
	templateData, err := marshalTemplateData(data)
	if err != nil {
		return err
	}

	_, err = n.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.sender),
		Destination: &sestypes.Destination{
			ToAddresses: []string{recipient},
		},
		Content: &sestypes.EmailContent{
			Template: &sestypes.Template{
				TemplateName: aws.String(template),
				TemplateData: aws.String(templateData),
			},
		},
	})
	return err
}

// SendAlert raises an operational alert for staff.
func (n *Notifier) SendAlert(ctx context.Context, subject string, body string) error {
	_, err := n.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.sender),
		Destination: &sestypes.Destination{
			ToAddresses: []string{n.alertEmail},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: aws.String(body)},
				},
			},
		},
	})
	return err
}
