// internal/workers/communication/notify-scholarship-matches/templates.go
package notifyscholarshipmatches

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"scholarship-matcher/internal/models"
)

var subjects = models.Bilingual{
	EN: "Your top scholarship matches",
	AR: "أفضل المنح المطابقة لملفك",
}

var levelLabels = map[models.MatchLevel]models.Bilingual{
	models.MatchExcellent: {EN: "Excellent match", AR: "تطابق ممتاز"},
	models.MatchGood:      {EN: "Good match", AR: "تطابق جيد"},
	models.MatchFair:      {EN: "Fair match", AR: "تطابق مقبول"},
}

type listedMatch struct {
	Title       string
	University  string
	Country     string
	Score       int
	Level       string
	Explanation string
}

type messageData struct {
	Name    string
	Dir     string
	Matches []listedMatch
	More    int
}

const textBodyEN = `Hello{{if .Name}} {{.Name}}{{end}},

Here are the scholarships that best match your profile:
{{range $i, $m := .Matches}}
{{inc $i}}. {{$m.Title}}{{if $m.University}} - {{$m.University}}{{end}}{{if $m.Country}} ({{$m.Country}}){{end}}
   {{$m.Level}}, score {{$m.Score}}/100
   {{$m.Explanation}}
{{end}}{{if .More}}
And {{.More}} more in your account.
{{end}}`

const textBodyAR = `مرحباً{{if .Name}} {{.Name}}{{end}}،

إليك المنح الأكثر توافقاً مع ملفك:
{{range $i, $m := .Matches}}
{{inc $i}}. {{$m.Title}}{{if $m.University}} - {{$m.University}}{{end}}{{if $m.Country}} ({{$m.Country}}){{end}}
   {{$m.Level}}، الدرجة {{$m.Score}}/100
   {{$m.Explanation}}
{{end}}{{if .More}}
و{{.More}} منح أخرى في حسابك.
{{end}}`

const htmlBody = `<!DOCTYPE html>
<html dir="{{.Dir}}"><body>
<ol>
{{range .Matches}}<li><strong>{{.Title}}</strong>{{if .University}} - {{.University}}{{end}}{{if .Country}} ({{.Country}}){{end}}<br>
<em>{{.Level}} · {{.Score}}/100</em><br>
{{.Explanation}}</li>
{{end}}</ol>
</body></html>`

const smsBodyEN = `{{len .Matches}} new scholarship matches:{{range $i, $m := .Matches}} {{inc $i}}) {{$m.Title}} {{$m.Score}}/100;{{end}}`

const smsBodyAR = `{{len .Matches}} منح مطابقة جديدة:{{range $i, $m := .Matches}} {{inc $i}}) {{$m.Title}} {{$m.Score}}/100؛{{end}}`

var funcs = texttemplate.FuncMap{"inc": func(i int) int { return i + 1 }}

var (
	textTemplates = map[models.Locale]*texttemplate.Template{
		models.LocaleEN: texttemplate.Must(texttemplate.New("text-en").Funcs(funcs).Parse(textBodyEN)),
		models.LocaleAR: texttemplate.Must(texttemplate.New("text-ar").Funcs(funcs).Parse(textBodyAR)),
	}
	smsTemplates = map[models.Locale]*texttemplate.Template{
		models.LocaleEN: texttemplate.Must(texttemplate.New("sms-en").Funcs(funcs).Parse(smsBodyEN)),
		models.LocaleAR: texttemplate.Must(texttemplate.New("sms-ar").Funcs(funcs).Parse(smsBodyAR)),
	}
	htmlTemplate = htmltemplate.Must(htmltemplate.New("html").Parse(htmlBody))
)

func buildData(input *Input, locale models.Locale, limit int) messageData {
	data := messageData{Name: strings.TrimSpace(input.StudentName), Dir: "ltr"}
	if locale == models.LocaleAR {
		data.Dir = "rtl"
	}

	matches := input.Matches
	if len(matches) > limit {
		data.More = len(matches) - limit
		matches = matches[:limit]
	}
	for _, m := range matches {
		data.Matches = append(data.Matches, listedMatch{
			Title:       m.Scholarship.Title.In(locale),
			University:  m.Scholarship.University.In(locale),
			Country:     m.Scholarship.Country.In(locale),
			Score:       m.Score,
			Level:       levelLabels[m.MatchLevel].In(locale),
			Explanation: m.Explanation.In(locale),
		})
	}
	return data
}

// renderEmail returns the localized subject, HTML and plain-text bodies.
func renderEmail(data messageData, locale models.Locale) (models.NotificationTemplate, error) {
	var text, html bytes.Buffer
	if err := textTemplates[locale].Execute(&text, data); err != nil {
		return models.NotificationTemplate{}, err
	}
	if err := htmlTemplate.Execute(&html, data); err != nil {
		return models.NotificationTemplate{}, err
	}
	return models.NotificationTemplate{
		Subject:  subjects.In(locale),
		Body:     text.String(),
		HTMLBody: html.String(),
	}, nil
}

func renderSMS(data messageData, locale models.Locale) (string, error) {
	var buf bytes.Buffer
	if err := smsTemplates[locale].Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
