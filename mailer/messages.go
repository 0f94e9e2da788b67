package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// SummaryPlaceholder stands in for an empty project summary in the
// operator notification.
const SummaryPlaceholder = "Non renseignée"

const (
	operatorSubject     = "Nouvelle demande de projet personnalisé"
	confirmationSubject = "Confirmation de votre demande de projet personnalisé"
)

//go:embed templates/*.html
var templateFiles embed.FS

var (
	operatorTemplate     = template.Must(template.ParseFS(templateFiles, "templates/layout.html", "templates/operator.html"))
	confirmationTemplate = template.Must(template.ParseFS(templateFiles, "templates/layout.html", "templates/confirmation.html"))
)

// ProjectRequestDetails is what both project request emails are rendered
// from. ServiceTitle is the resolved catalog title, not the submitted id.
type ProjectRequestDetails struct {
	Name         string
	Email        string
	Phone        string
	Budget       string
	ServiceTitle string
	Summary      string
}

type templateData struct {
	ProjectRequestDetails
	Year int
}

// OperatorNotification renders the message telling the studio about a new
// request. All fields are listed; an empty summary reads SummaryPlaceholder.
func OperatorNotification(to string, d ProjectRequestDetails, now time.Time) (Message, error) {
	if strings.TrimSpace(d.Summary) == "" {
		d.Summary = SummaryPlaceholder
	}

	body, err := render(operatorTemplate, templateData{ProjectRequestDetails: d, Year: now.Year()})
	if err != nil {
		return Message{}, fmt.Errorf("render operator notification: %w", err)
	}

	return Message{
		To:       to,
		ReplyTo:  d.Email,
		Subject:  operatorSubject,
		HTMLBody: body,
	}, nil
}

// RequesterConfirmation renders the acknowledgement sent to the requester.
func RequesterConfirmation(d ProjectRequestDetails, now time.Time) (Message, error) {
	body, err := render(confirmationTemplate, templateData{ProjectRequestDetails: d, Year: now.Year()})
	if err != nil {
		return Message{}, fmt.Errorf("render requester confirmation: %w", err)
	}

	return Message{
		To:       d.Email,
		Subject:  confirmationSubject,
		HTMLBody: body,
	}, nil
}

func render(t *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
