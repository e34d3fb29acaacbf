package generator

import "html/template"

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta http-equiv="X-UA-Compatible" content="IE=edge">
  <title>{{.Title}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f9fafb;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0" style="width: 100%; border-collapse: collapse;">
    <tr>
      <td style="padding: 20px;">
        <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0" style="{{.ContainerStyle}}">
          <tr>
            <td style="{{.CellStyle}}">
{{.Content}}
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`))

var blockTemplates = template.Must(template.New("blocks").Parse(`
{{define "block"}}<div data-mail-maker-block="{{.Meta}}">{{.Body}}
</div>{{end}}

{{define "header"}}{{if .LogoURL}}
<div style="text-align: center; margin-bottom: 24px;">
  <img src="{{.LogoURL}}" alt="{{.LogoAlt}}" style="max-width: 120px; height: auto;">
</div>{{end}}{{if .Badge}}
<div style="text-align: center; margin-bottom: 24px;">
  <span style="display: inline-block; padding: 4px 12px; background-color: #e8f3ff; color: #3182f6; font-size: 12px; font-weight: 600; border-radius: 12px;">{{.Badge}}</span>
</div>{{end}}{{end}}

{{define "title"}}{{if .H2}}
<h2 style="margin: 24px 0 16px 0; font-size: 20px; font-weight: 700; color: #191f28; line-height: 1.4;">{{.Text}}</h2>{{else}}
<h1 style="margin: 24px 0 16px 0; font-size: 28px; font-weight: 700; color: #191f28; line-height: 1.4;">{{.Text}}</h1>{{end}}{{end}}

{{define "text"}}
<div style="margin: 16px 0; font-size: 16px; color: #4e5968; line-height: 1.6;">{{.Content}}</div>{{end}}

{{define "list"}}{{if .Numbered}}
<ol style="margin: 16px 0; padding-left: 24px; font-size: 16px; color: #4e5968; line-height: 1.6;">{{range .Items}}
  <li style="margin: 0 0 4px 0;">{{.}}</li>{{end}}
</ol>{{else}}
<ul style="margin: 16px 0; padding-left: 24px; font-size: 16px; color: #4e5968; line-height: 1.6;">{{range .Items}}
  <li style="margin: 0 0 4px 0;">{{.}}</li>{{end}}
</ul>{{end}}{{end}}

{{define "highlight"}}
<div style="{{.Style}}">{{if .Title}}
  <div style="font-size: 16px; font-weight: 600; color: #191f28; margin-bottom: 8px;">{{.Title}}</div>{{end}}
  <div style="font-size: 14px; color: #191f28; line-height: 1.5;">{{.Content}}</div>
</div>{{end}}

{{define "stats"}}{{if .Cells}}
<table role="presentation" width="100%" cellpadding="0" cellspacing="8" border="0" style="width: 100%; margin: 24px 0; table-layout: fixed;">
  <tr>{{range .Cells}}
    <td width="{{.Width}}%" style="{{.Style}}">
      <div style="font-size: 24px; font-weight: 700; color: #191f28;">{{.Value}}</div>
      <div style="margin-top: 4px; font-size: 13px; color: #6b7684;">{{.Label}}</div>
    </td>{{end}}
  </tr>
</table>{{end}}{{end}}

{{define "infoTable"}}
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0" style="width: 100%; margin: 24px 0; border: 1px solid #e5e8eb; border-radius: 8px; border-collapse: separate;">{{range .Rows}}
  <tr>
    <td width="35%" style="{{.LabelStyle}}">{{.Label}}</td>
    <td style="{{.ValueStyle}}">{{.Value}}</td>
  </tr>{{end}}
</table>{{end}}

{{define "badge"}}
<div style="margin: 16px 0;">
  <span style="{{.Style}}">{{.Text}}</span>
</div>{{end}}

{{define "button"}}
<div style="margin: 24px 0; text-align: center;">
  <a href="{{.URL}}" target="_blank" style="{{.Style}}">{{.Text}}</a>
</div>{{end}}

{{define "image"}}
<div style="margin: 24px 0; text-align: center;">
  <img src="{{.URL}}" alt="{{.Alt}}"{{if .Width}} width="{{.Width}}"{{end}} style="{{.Style}}">
</div>{{end}}

{{define "divider"}}
<hr style="margin: 32px 0; border: none; border-top: 1px solid #e5e8eb;">{{end}}

{{define "spacer"}}
<div style="{{.Style}}">&nbsp;</div>{{end}}

{{define "footer"}}
<div style="margin-top: 48px; padding: 24px; background-color: #f9fafb; text-align: center; font-size: 12px; color: #6b7684; line-height: 1.6; border-radius: 4px;">{{if .CompanyName}}
  <div style="font-weight: 600; margin-bottom: 8px;">{{.CompanyName}}</div>{{end}}{{if .Address}}
  <div style="margin-bottom: 8px;">{{.Address}}</div>{{end}}{{if .Links}}
  <div style="margin-bottom: 8px;">{{range $i, $link := .Links}}{{if $i}} | {{end}}<a href="{{$link.URL}}" target="_blank" style="color: #6b7684; text-decoration: underline;">{{$link.Text}}</a>{{end}}</div>{{end}}{{if .Copyright}}
  <div>{{.Copyright}}</div>{{end}}
</div>{{end}}
`))
