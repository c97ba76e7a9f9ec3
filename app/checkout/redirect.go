package checkout

import (
	"html/template"
	"io"
	"sort"
	"strings"
)

// RedirectInstruction is what the initiation endpoint hands back: where to
// send the browser and the processor fields to post there. Payload values are
// opaque (often signed) and are forwarded as received.
type RedirectInstruction struct {
	URL     string            `json:"url"`
	Payload map[string]string `json:"payload"`
}

// FormField is one hidden input of the redirect form.
type FormField struct {
	Name  string
	Value string
}

var redirectTemplate = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Redirecting to payment</title></head>
<body>
<form id="payment-redirect" method="post" action="{{.URL}}">
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
<script>document.getElementById("payment-redirect").submit();</script>
</body>
</html>
`))

// Fields returns the payload as form fields sorted by name.
func (i RedirectInstruction) Fields() []FormField {
	names := make([]string, 0, len(i.Payload))
	for name := range i.Payload {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]FormField, 0, len(names))
	for _, name := range names {
		fields = append(fields, FormField{Name: name, Value: i.Payload[name]})
	}
	return fields
}

// RenderRedirectForm writes a page that posts the instruction's payload to its
// URL as soon as it loads.
func RenderRedirectForm(w io.Writer, instruction RedirectInstruction) error {
	if strings.TrimSpace(instruction.URL) == "" {
		return ErrMissingURL
	}

	return redirectTemplate.Execute(w, struct {
		URL    string
		Fields []FormField
	}{
		URL:    instruction.URL,
		Fields: instruction.Fields(),
	})
}
