package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

const welcomeTpl = `<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#333">Welcome, {{.Name}}!</h2>
  <p>Your account has been created. You can now browse our courses and register for the ones that interest you.</p>
  <p style="margin-top:24px">
    <a href="{{.SiteURL}}" style="background:#0ea5e9;color:#fff;padding:8px 16px;text-decoration:none;border-radius:4px">Browse courses</a>
  </p>
  <p style="color:#999;font-size:12px">If you did not create this account, please ignore this email.</p>
  <p style="font-size:10px;color:#9ca3af;text-align:center">©{{year}} {{.SiteName}}</p>
</div>
</body>
</html>`

const contactNotifyTpl = `<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#333">New contact message</h2>
  <p><strong>{{.Name}}</strong> ({{.Email}}{{if .Phone}}, {{.Phone}}{{end}}) wrote:</p>
  <div style="background:#f3f4f6;border-radius:8px;padding:12px">
    {{if .Subject}}<p style="font-size:14px"><strong>{{.Subject}}</strong></p>{{end}}
    <p style="font-size:13px;line-height:22px">{{.Message}}</p>
  </div>
  <p style="font-size:10px;color:#9ca3af;text-align:center">©{{year}} {{.SiteName}}</p>
</div>
</body>
</html>`

const registrationStatusTpl = `<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#333">Registration update</h2>
  <p>Hi {{.Name}},</p>
  <p>Your registration for <strong>{{.CourseTitle}}</strong> is now <strong>{{.StatusLabel}}</strong>.</p>
  {{if .Notes}}<div style="background:#f3f4f6;border-radius:8px;padding:12px"><p style="font-size:13px">{{.Notes}}</p></div>{{end}}
  <p style="font-size:10px;color:#9ca3af;text-align:center">©{{year}} {{.SiteName}}</p>
</div>
</body>
</html>`

// WelcomeData is the data for signup welcome emails.
type WelcomeData struct {
	Name     string
	SiteURL  string
	SiteName string
}

// ContactNotifyData is the data for contact-form notification emails.
type ContactNotifyData struct {
	Name     string
	Email    string
	Phone    string
	Subject  string
	Message  string
	SiteName string
}

// RegistrationStatusData is the data for registration status emails.
type RegistrationStatusData struct {
	Name        string
	CourseTitle string
	StatusLabel string
	Notes       string
	SiteName    string
}

func renderTemplate(tpl string, data interface{}) (string, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"year": func() int {
			return time.Now().Year()
		},
	}).Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendWelcome sends the post-signup welcome email.
func (s *Sender) SendWelcome(to string, data WelcomeData) error {
	if data.SiteName == "" {
		data.SiteName = "SCTS Institute"
	}
	html, err := renderTemplate(welcomeTpl, data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: fmt.Sprintf("Welcome to %s", data.SiteName),
		HTML:    html,
	})
}

// SendContactNotify notifies the admin inbox about a new contact message.
func (s *Sender) SendContactNotify(to string, data ContactNotifyData) error {
	if data.SiteName == "" {
		data.SiteName = "SCTS Institute"
	}
	html, err := renderTemplate(contactNotifyTpl, data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: fmt.Sprintf("[%s] New contact message", data.SiteName),
		HTML:    html,
	})
}

// SendRegistrationStatus tells a user their course registration changed.
func (s *Sender) SendRegistrationStatus(to string, data RegistrationStatusData) error {
	if data.SiteName == "" {
		data.SiteName = "SCTS Institute"
	}
	html, err := renderTemplate(registrationStatusTpl, data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: fmt.Sprintf("[%s] Your course registration was updated", data.SiteName),
		HTML:    html,
	})
}
