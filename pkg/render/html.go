package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"gitamctl/pkg/timetable"
)

var emailTemplate = template.Must(template.New("email").Parse(`<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 0; background-color: #f4f4f4; }
        .container { width: 100%; max-width: 800px; margin: 20px auto; background-color: #ffffff; padding: 20px; box-shadow: 0 0 10px rgba(0, 0, 0, 0.1); }
        h2 { color: #333333; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { border: 1px solid #dddddd; text-align: left; padding: 8px; }
        th { background-color: #f2f2f2; }
        tr:nth-child(even) { background-color: #f9f9f9; }
        .footer { margin-top: 20px; font-size: 12px; color: #666666; text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <h2>Timetable for {{.Date}}</h2>
{{- if .Entries}}
        <table>
            <tr>
{{- range .Headers}}
                <th>{{.}}</th>
{{- end}}
            </tr>
{{- range .Entries}}
            <tr>
                <td>{{.Time}}</td>
                <td>{{.Subject}}</td>
                <td>{{.Room}}</td>
                <td>{{.Teacher}}</td>
                <td>{{.Day}}</td>
            </tr>
{{- end}}
        </table>
{{- else}}
        <p>{{.Empty}}</p>
{{- end}}
        <div class="footer">
            This is an automated email. Please do not reply.
        </div>
    </div>
</body>
</html>
`))

type emailView struct {
	Date    string
	Headers []string
	Entries []timetable.ScheduleEntry
	Empty   string
}

// HTML renders the schedule as the body of the daily email
func HTML(entries []timetable.ScheduleEntry, date time.Time) (string, error) {
	view := emailView{
		Date:    date.Format(DateLayout),
		Headers: headers,
		Entries: entries,
		Empty:   NoClassesText,
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render email: %w", err)
	}
	return buf.String(), nil
}
