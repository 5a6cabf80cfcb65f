package mail

import (
	"bytes"
	"html/template"
)

// ContactNotification carries the fields of a contact-form submission into
// the notification template.
type ContactNotification struct {
	Name     string
	Email    string
	Type     string
	Budget   string
	Whatsapp string
	Message  string
}

var contactTpl = template.Must(template.New("contact").Parse(contactNotifyTpl))

// RenderContactNotification renders the HTML body for a new-message email.
func RenderContactNotification(n ContactNotification) (string, error) {
	if n.Budget == "" {
		n.Budget = "Not specified"
	}
	if n.Whatsapp == "" {
		n.Whatsapp = "Not provided"
	}
	var buf bytes.Buffer
	if err := contactTpl.Execute(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const contactNotifyTpl = `<!DOCTYPE html>
<html>
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
</head>
<body style="font-family:Arial,sans-serif;line-height:1.6;color:#333">
  <div style="max-width:600px;margin:0 auto;padding:20px;background-color:#f9f9f9;border-radius:10px">
    <h2 style="color:#000;border-bottom:2px solid #000;padding-bottom:10px">New Contact Form Submission</h2>
    <div style="background-color:#fff;padding:20px;border-radius:5px;margin:20px 0">
      <p style="margin:10px 0"><strong>Name:</strong> {{.Name}}</p>
      <p style="margin:10px 0"><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
      <p style="margin:10px 0"><strong>Type:</strong> {{.Type}}</p>
      <p style="margin:10px 0"><strong>Budget:</strong> {{.Budget}}</p>
      <p style="margin:10px 0"><strong>WhatsApp:</strong> {{.Whatsapp}}</p>
    </div>
    <div style="background-color:#fff;padding:20px;border-radius:5px">
      <h3 style="margin-top:0;color:#000">Message:</h3>
      <p style="white-space:pre-wrap">{{.Message}}</p>
    </div>
    <div style="margin-top:20px;padding:15px;background-color:#e8e8e8;border-radius:5px;font-size:12px;color:#666">
      <p style="margin:5px 0">This email was sent from your portfolio contact form.</p>
      <p style="margin:5px 0">Reply directly to this email to respond to {{.Name}}.</p>
    </div>
  </div>
</body>
</html>`
