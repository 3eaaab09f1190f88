package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateWelcome is sent once after registration.
const TemplateWelcome = "welcome"

var welcomeTmpl = template.Must(template.New(TemplateWelcome).Parse(`<!doctype html>
<html>
  <body style="font-family:sans-serif;color:#222">
    <h2>Welcome to {{.AppName}}, {{.Name}}!</h2>
    <p>Your account is ready. Log in, set up your profile and publish your first post.</p>
    <p style="color:#888;font-size:12px">You received this email because an account
    was registered with this address.</p>
  </body>
</html>`))

// RenderWelcome renders the welcome template. data must carry Name and AppName.
func RenderWelcome(data map[string]any) (subject, text, html string, err error) {
	var buf bytes.Buffer
	if err = welcomeTmpl.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	subject = fmt.Sprintf("Welcome to %v", data["AppName"])
	text = fmt.Sprintf("Welcome to %v, %v! Your account is ready.", data["AppName"], data["Name"])
	return subject, text, buf.String(), nil
}
