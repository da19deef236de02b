// Package export renders stored resume documents into downloadable formats.
// Word export writes an HTML-bodied .doc, which Word and LibreOffice open
// natively; no OOXML library is needed for this shape of document.
package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resumekit/resumekit/pkg/resume"
)

const wordContentType = "application/msword"

const wordTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Doc.PersonalInfo.FullName}}'s Resume</title>
<style>
  body { font-family: {{.Font}}, sans-serif; line-height: 1.6; margin: 1in; }
  h1 { margin: 0; font-size: 24pt; }
  h2 { margin-top: 20px; border-bottom: 1px solid #ccc; font-size: 14pt; }
  .contact-info { margin-bottom: 20px; }
  .section { margin-bottom: 20px; }
  .item { margin-bottom: 10px; }
  .item-header { display: flex; justify-content: space-between; font-weight: bold; }
  .date { color: #666; }
  ul { margin-top: 5px; }
  .skills-list { display: flex; flex-wrap: wrap; gap: 10px; }
  .skills-list div { background: #f0f0f0; padding: 3px 8px; border-radius: 3px; }
</style>
</head>
<body>
<header>
  <h1>{{.Doc.PersonalInfo.FullName}}</h1>
  <div class="contact-info">
    {{- if .Doc.PersonalInfo.Email}}Email: {{.Doc.PersonalInfo.Email}}<br>{{end}}
    {{- if .Doc.PersonalInfo.Phone}}Phone: {{.Doc.PersonalInfo.Phone}}<br>{{end}}
    {{- if .Doc.PersonalInfo.Location}}Location: {{.Doc.PersonalInfo.Location}}{{end}}
  </div>
</header>
{{- if .Doc.Experiences}}
<section class="section">
  <h2>Experience</h2>
  {{- range .Doc.Experiences}}
  <div class="item">
    <div class="item-header">
      <span>{{.Position}} at {{.Company}}</span>
      <span class="date">{{.StartDate}} - {{.EndDate}}</span>
    </div>
    <p>{{.Description}}</p>
  </div>
  {{- end}}
</section>
{{- end}}
{{- if .Doc.Education}}
<section class="section">
  <h2>Education</h2>
  {{- range .Doc.Education}}
  <div class="item">
    <div class="item-header">
      <span>{{.Degree}} - {{.School}}</span>
      <span class="date">{{.GraduationDate}}</span>
    </div>
    {{- if .GPA}}<p>GPA: {{.GPA}}</p>{{end}}
  </div>
  {{- end}}
</section>
{{- end}}
{{- if .Doc.Skills}}
<section class="section">
  <h2>Skills</h2>
  <div class="skills-list">{{range .Doc.Skills}}<div>{{.}}</div>{{end}}</div>
</section>
{{- end}}
{{- if .Doc.SoftSkills}}
<section class="section">
  <h2>Soft Skills</h2>
  <div class="skills-list">{{range .Doc.SoftSkills}}<div>{{.}}</div>{{end}}</div>
</section>
{{- end}}
{{- if .Doc.Projects}}
<section class="section">
  <h2>Projects</h2>
  {{- range .Doc.Projects}}
  <div class="item">
    <div class="item-header">
      <span>{{.Title}}</span>
      {{- if .StartDate}}<span class="date">{{.StartDate}}{{if .EndDate}} - {{.EndDate}}{{end}}</span>{{end}}
    </div>
    <p>{{.Description}}</p>
  </div>
  {{- end}}
</section>
{{- end}}
{{- if .Doc.Certifications}}
<section class="section">
  <h2>Certifications</h2>
  <ul>{{range .Doc.Certifications}}<li>{{.}}</li>{{end}}</ul>
</section>
{{- end}}
{{- if .Doc.Hobbies}}
<section class="section">
  <h2>Hobbies</h2>
  <ul>{{range .Doc.Hobbies}}<li>{{.}}</li>{{end}}</ul>
</section>
{{- end}}
{{- if .Doc.ExtraCurricular}}
<section class="section">
  <h2>Extra Curricular Activities</h2>
  <ul>{{range .Doc.ExtraCurricular}}<li>{{.}}</li>{{end}}</ul>
</section>
{{- end}}
</body>
</html>
`

// WordExporter renders a Document into .doc bytes.
type WordExporter struct {
	tmpl *template.Template
}

func NewWordExporter() *WordExporter {
	return &WordExporter{tmpl: template.Must(template.New("word").Parse(wordTemplate))}
}

// ContentType is the MIME type to serve rendered output under.
func (e *WordExporter) ContentType() string { return wordContentType }

type wordView struct {
	Doc  resume.Document
	Font string
}

// Render produces the .doc payload for one document. Sections without data
// are omitted entirely.
func (e *WordExporter) Render(doc resume.Document) ([]byte, error) {
	font := doc.Font
	if font == "" {
		font = "Arial"
	}
	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, wordView{Doc: doc, Font: font}); err != nil {
		return nil, fmt.Errorf("render word document: %w", err)
	}
	return buf.Bytes(), nil
}
