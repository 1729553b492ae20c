package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"portfolio-backend/src/jobs"
	"portfolio-backend/src/utils"
)

var submissionTemplate = template.Must(template.New("submission").Parse(`<!doctype html>
<html><body style="font-family:sans-serif">
<h2>New submission: {{.FormTitle}}</h2>
<table cellpadding="6" style="border-collapse:collapse">
{{range .Fields}}<tr><td style="font-weight:bold;vertical-align:top">{{.Name}}</td><td style="white-space:pre-wrap">{{.Value}}</td></tr>
{{end}}</table>
<p style="color:#888;font-size:12px">Submission ID: {{.SubmissionID}}</p>
</body></html>`))

type field struct {
	Name  string
	Value string
}

// SubmissionNotifier ส่งอีเมลหาเจ้าของฟอร์มเมื่อมี submission ใหม่
type SubmissionNotifier struct {
	sender MailSender
}

func NewSubmissionNotifier(sender MailSender) *SubmissionNotifier {
	return &SubmissionNotifier{sender: sender}
}

func (n *SubmissionNotifier) NotifySubmission(_ context.Context, p jobs.NotifySubmissionPayload) error {
	body, err := RenderSubmissionEmail(p)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("[%s] new submission", p.FormTitle)
	return n.sender.Send(p.NotifyEmail, subject, body, replyToFrom(p.Values))
}

// RenderSubmissionEmail เรียง field ตามชื่อให้เมลอ่านง่ายและ deterministic
func RenderSubmissionEmail(p jobs.NotifySubmissionPayload) (string, error) {
	names := make([]string, 0, len(p.Values))
	for k := range p.Values {
		names = append(names, k)
	}
	sort.Strings(names)

	fields := make([]field, 0, len(names))
	for _, k := range names {
		fields = append(fields, field{Name: k, Value: p.Values[k]})
	}

	var buf bytes.Buffer
	err := submissionTemplate.Execute(&buf, struct {
		FormTitle    string
		SubmissionID string
		Fields       []field
	}{p.FormTitle, p.SubmissionID, fields})
	if err != nil {
		return "", fmt.Errorf("render submission email: %w", err)
	}
	return buf.String(), nil
}

// replyToFrom ใช้ field "email" ของผู้ส่งเป็น Reply-To ถ้าเป็นอีเมลที่ถูกต้อง
func replyToFrom(values map[string]string) string {
	v := strings.TrimSpace(values["email"])
	if err := utils.ValidateVar(v, "required,email"); err != nil {
		return ""
	}
	return v
}
