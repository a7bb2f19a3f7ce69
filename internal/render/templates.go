// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

const cardTemplate = `<div class="item-card" data-id="{{.ID}}" data-spottype="{{.TypeSlug}}">
{{- if .HasImage}}
<div class="item-image-area"><div class="item-image-container"><img src="{{.ImageURL}}" alt="{{.Name}}" class="item-image"></div></div>
{{- end}}
<div class="item-heading"><h3>{{.Name}}</h3><p class="item-type">{{.SpotType}}</p></div>
<div class="item-info"><p><strong>📍 Address:</strong> {{.Address}}</p></div>
<div class="item-features">{{range .Badges}}<span class="feature">{{.}}</span>{{end}}</div>
<div class="item-details{{if .Expanded}} expanded{{else}}-hidden{{end}}">
{{- if .Hours}}<p><strong>⏰ Hours:</strong> {{.Hours}}</p>{{end}}
{{- if .Phone}}<p><strong>📞 Phone:</strong> {{.Phone}}</p>{{end}}
{{- if .Links}}<div class="item-links"><strong>Links:</strong> {{range $i, $l := .Links}}{{if $i}}, {{end}}<a href="{{$l}}">{{$l}}</a>{{end}}</div>{{end}}
</div>
<button type="button" class="more-details-btn">{{.DetailsLabel}}</button>
<div class="item-footer"><div class="item-timestamps"><small>Created: {{.Created}}</small> <small>Updated: {{.Updated}}</small></div></div>
</div>`

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<div id="contentArea">
{{- if .Cards}}{{range .Cards}}
{{.}}{{end}}
{{- else}}
<p><i>{{.Empty}}</i></p>
{{- end}}
</div>
</body>
</html>
`
