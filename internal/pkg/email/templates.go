package email

import (
	"html/template"
	"strings"
)

// Template names
const (
	TemplateWelcome             = "welcome"
	TemplateMentorshipRequested = "mentorship_requested"
	TemplateMentorshipUpdated   = "mentorship_updated"
)

var templates = template.Must(template.New("email").Parse(`
{{define "header"}}<html>
<body>
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #333;">AlumniConnect</h2>
		<p>Hello {{.Name}},</p>
{{end}}

{{define "footer"}}		<p>Best regards,<br>The AlumniConnect Team</p>
	</div>
</body>
</html>{{end}}

{{define "welcome"}}{{template "header" .}}		<p>Welcome to AlumniConnect! Your {{.Role}} account is ready.</p>
		<p>Explore the alumni directory, join upcoming events and connect with mentors.</p>
{{template "footer" .}}{{end}}

{{define "mentorship_requested"}}{{template "header" .}}		<p>{{.Counterpart}} has asked you for mentorship.</p>
		<p><strong>{{.Subject}}</strong></p>
		<p>Sign in to approve or decline the request.</p>
{{template "footer" .}}{{end}}

{{define "mentorship_updated"}}{{template "header" .}}		<p>Your mentorship request with {{.Counterpart}} is now <strong>{{.Status}}</strong>.</p>
{{template "footer" .}}{{end}}
`))

// TemplateData fills a notification template.
type TemplateData struct {
	Name        string
	Role        string
	Counterpart string
	Subject     string
	Status      string
}

// Render executes the named template.
func Render(name string, data TemplateData) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
