package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Welcome is the template name for the signup welcome mail.
const Welcome = "welcome"

var welcomeTpl = template.Must(template.New(Welcome).Parse(`<!doctype html>
<html>
  <body style="font-family:Arial,Helvetica,sans-serif;color:#1a1a1a">
    <h2>Welcome to CyberTrain, {{.Name}}!</h2>
    <p>Your account is ready. Jump into the training labs, take on the
    challenges, and climb the leaderboard.</p>
    <p>Happy hacking,<br>The CyberTrain team</p>
  </body>
</html>`))

// Render produces subject, text and HTML bodies for the named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case Welcome:
		var buf bytes.Buffer
		if err = welcomeTpl.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Welcome to CyberTrain"
		text = fmt.Sprintf("Welcome to CyberTrain, %v! Your account is ready.", data["Name"])
		html = buf.String()
		return subject, text, html, nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
