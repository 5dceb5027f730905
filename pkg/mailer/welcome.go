package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const TemplateWelcome = "welcome"

var welcomeHTML = template.Must(template.New("welcome").Parse(`
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome to {{.AppName}}, {{.Name}}!</h2>
    <p>Your account is ready. Log in and publish your first post.</p>
    <p style="color:#888; font-size: 12px;">If you did not sign up, you can ignore this email.</p>
  </body>
</html>
`))

// RenderWelcome renders the signup welcome email from job data.
func RenderWelcome(data map[string]any) (subject, text, html string, err error) {
	name := fmt.Sprintf("%v", data["Name"])
	app := fmt.Sprintf("%v", data["AppName"])
	if app == "" || app == "<nil>" {
		app = "Blogspace"
	}

	var buf bytes.Buffer
	if err := welcomeHTML.Execute(&buf, map[string]string{"Name": name, "AppName": app}); err != nil {
		return "", "", "", err
	}
	subject = "Welcome to " + app
	text = fmt.Sprintf("Welcome to %s, %s! Your account is ready.", app, name)
	return subject, text, buf.String(), nil
}
