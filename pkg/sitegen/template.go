package sitegen

import "html/template"

// pageData feeds the page shell template. Content is pre-rendered and
// trusted; everything else is escaped by html/template.
type pageData struct {
	SiteTitle string
	Title     string
	BaseURL   string
	Nav       []navLink
	Content   template.HTML
}

type navLink struct {
	Title  string
	Href   string
	Active bool
}

// pageShell is the default page template. The renderer produces the
// body fragment; the shell adds the document frame, nav, and the
// search script hook pointing at the emitted index.
var pageShell = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{if .Title}}{{.Title}} — {{end}}{{.SiteTitle}}</title>
<link rel="search-index" href="{{.BaseURL}}search-index.json">
</head>
<body>
<header><a href="{{.BaseURL}}">{{.SiteTitle}}</a></header>
<nav>
<ul>
{{- range .Nav}}
<li{{if .Active}} class="active"{{end}}><a href="{{.Href}}">{{.Title}}</a></li>
{{- end}}
</ul>
</nav>
<main>
{{.Content}}</main>
</body>
</html>
`))
