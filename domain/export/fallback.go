package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
)

var fallbackTmpl = template.Must(template.New("fallback").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Name}}</title>
<style>
body { margin: 0; padding: 16px; font-family: sans-serif; background: #f7f9fb; text-align: center; }
img { max-width: 100%; height: auto; border: 1px solid #d0d7de; }
p { color: #1e293b; }
</style>
</head>
<body>
<p>Long-press (or right-click) the image and choose "Save image" to keep {{.Name}}.</p>
<img src="{{.Src}}" alt="{{.Name}}">
</body>
</html>
`))

// FallbackPage returns a self-contained HTML page embedding f as a data URI
// with instructions for saving it by hand.
func FallbackPage(f File) ([]byte, error) {
	if len(f.Data) == 0 {
		return nil, ErrEncodeFailed
	}
	mime := f.MIME
	if mime == "" {
		mime = "image/jpeg"
	}
	src := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
	var buf bytes.Buffer
	err := fallbackTmpl.Execute(&buf, struct {
		Name string
		Src  template.URL
	}{Name: f.Name, Src: template.URL(src)})
	if err != nil {
		return nil, fmt.Errorf("export: fallback page: %w", err)
	}
	return buf.Bytes(), nil
}
