// Package notify renders the lifecycle notification emails. Rendering is
// pure (no I/O); delivery belongs to the mailer collaborator.
package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"homefix_api/internal/domain/lifecycle"
)

// Data carries the fields the templates may reference. Unused fields are
// simply ignored by templates that do not need them.
type Data struct {
	ClientName         string
	ProjectID          string
	JobType            string
	InspectionDate     string
	StartDate          string
	EndDate            string
	CancellationReason string
	FeedbackURL        string
}

type eventTemplate struct {
	subject string
	body    *template.Template
}

var eventTemplates = map[lifecycle.Event]eventTemplate{
	lifecycle.EventInquiryReceived: {
		subject: "We received your inquiry",
		body: template.Must(template.New("inquiry_received").Parse(`<p>Hi {{.ClientName}},</p>
<p>Thank you for reaching out. We have received your {{.JobType}} inquiry and assigned it reference <strong>{{.ProjectID}}</strong>.</p>
<p>Our team will get back to you shortly to discuss the next steps.</p>`)),
	},
	lifecycle.EventInspectionScheduled: {
		subject: "Your site inspection is scheduled",
		body: template.Must(template.New("inspection_scheduled").Parse(`<p>Hi {{.ClientName}},</p>
<p>Your job order <strong>{{.ProjectID}}</strong> is now on process. A site inspection has been scheduled on <strong>{{.InspectionDate}}</strong>.</p>
<p>Please make sure someone is available at the service address on that date.</p>`)),
	},
	lifecycle.EventQuotationReady: {
		subject: "Your quotation is ready",
		body: template.Must(template.New("quotation_ready").Parse(`<p>Hi {{.ClientName}},</p>
<p>The quotation for job order <strong>{{.ProjectID}}</strong> is ready{{if .StartDate}} and work is scheduled from <strong>{{.StartDate}}</strong> to <strong>{{.EndDate}}</strong>{{end}}.</p>
<p>The quotation document is attached to this email. Reply to this message if you have any questions.</p>`)),
	},
	lifecycle.EventProjectCompleted: {
		subject: "Your project is complete",
		body: template.Must(template.New("project_completed").Parse(`<p>Hi {{.ClientName}},</p>
<p>Great news: job order <strong>{{.ProjectID}}</strong> has been completed.</p>
<p>We would love to hear about your experience. You can share your feedback here: <a href="{{.FeedbackURL}}">{{.FeedbackURL}}</a></p>`)),
	},
	lifecycle.EventProjectCancelled: {
		subject: "Your job order was cancelled",
		body: template.Must(template.New("project_cancelled").Parse(`<p>Hi {{.ClientName}},</p>
<p>Job order <strong>{{.ProjectID}}</strong> has been cancelled.</p>
{{if .CancellationReason}}<p>Reason: {{.CancellationReason}}</p>{{end}}
<p>If this was unexpected, please contact us and we will sort it out.</p>`)),
	},
}

// Render produces the subject and HTML body for a lifecycle event.
func Render(ev lifecycle.Event, d Data) (subject string, html string, err error) {
	tpl, ok := eventTemplates[ev]
	if !ok {
		return "", "", fmt.Errorf("no template for event %q", ev)
	}
	var buf bytes.Buffer
	if err := tpl.body.Execute(&buf, d); err != nil {
		return "", "", err
	}
	return tpl.subject, buf.String(), nil
}
