// template.go -
// Copyright (C) 2016  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package xhtml

import "html/template"

var pageTemplates = template.Must(template.New("xhtml").Parse(`
{{- define "page" -}}
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" lang="{{.Page.Language}}" xml:lang="{{.Page.Language}}">
<head>
<meta charset="utf-8" />
<meta name="identifier" content="urn:uuid:{{.Page.UUID}}" />
<meta name="dcterms.modified" content="{{.Page.LastModified}}" />
<title>{{.Page.Title}}</title>
<script id="MathJax-script" async="async" src="{{.Page.MathJaxURL}}"></script>
</head>
<body>
<h1>{{.Page.Title}}</h1>
{{- if .Page.Nav}}
<nav id="toc">
{{range .Page.Nav}}{{if .Up}}{{range .Up}}<ol>{{end}}{{else}}</li>{{end}}<li><a href="#{{.ID}}">{{.Number}} {{.Title}}</a>{{range .Down}}</li></ol>{{end}}{{end}}
</nav>
{{- end}}
{{.Body}}
</body>
</html>
{{end -}}

{{- define "section-head"}}
<section id="{{.ID}}">
{{.Heading}}
{{- end}}

{{- define "section-tail"}}
</section>
{{- end}}

{{- define "text"}}
<p>{{.}}</p>
{{- end}}

{{- define "formula"}}
{{- if .Display}}
<div class="math display" id="{{.ID}}">\[{{.LaTeX}}\]</div>
{{- else}}
<p class="math" id="{{.ID}}">\({{.LaTeX}}\)</p>
{{- end}}
{{- end}}

{{- define "error"}}
<div class="error"><code>{{.Source}}</code>: {{.Message}}</div>
{{- end}}
`))
