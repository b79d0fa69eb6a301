package server

import (
	"html/template"
)

// pageData feeds pageTemplate.
type pageData struct {
	Max     int
	Valid   bool
	Modulus int
	Residue int
	Trace   []string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Graham's number mod N</title>
</head>
<body>
<h1>Graham's number mod N</h1>

<p>G = Graham's number</p>
<form action="/" method="post">
  Calculate G mod <input type="text" name="text" />
  <input type="submit" />
</form>
{{if .Valid -}}
<p>Calculation process of G mod {{.Modulus}}</p>
<pre>
{{range .Trace}}{{.}}
{{end}}</pre>
<h2>Result</h2>
<strong>G mod {{.Modulus}} = {{.Residue}}</strong>
{{- else -}}
<p>Input N ≤ {{.Max}} and press the button.</p>
{{- end}}
<hr>
</body>
</html>
`))
