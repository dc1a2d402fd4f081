package markdown

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/atotto/clipboard"
	"github.com/scriptdiff/scriptdiff/display"
)

const MdTemplate = `## {{ .Source }}

Rendered by [scriptdiff]({{ .URL }}), one line per script step.

~~~text
{{- range $i, $line := .Lines }}
{{ printf "%3d" (add $i 1) }} {{ $line }}
{{- end }}
~~~
`

type Service interface {
	// ToMarkdown renders the lines of a script as markdown.
	ToMarkdown(source string, lines []string) (string, error)
	// ToMarkdownFile writes the markdown to a new file, copies it to the
	// clipboard and returns the file path.
	ToMarkdownFile(ctx context.Context, source string, lines []string) (string, error)
}

var mdTemplate *template.Template

func init() {
	mdTemplate = template.Must(template.New("md").Funcs(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		}}).Parse(MdTemplate))
}

type svc struct {
	url string
	dir string
	now func() time.Time
	// writeClipboard copies text to the system clipboard.
	writeClipboard func(text string) error
}

// NewService returns a Service writing files to dir. An empty dir means the
// working directory.
func NewService(dir string) Service {
	return &svc{
		url:            "https://github.com/scriptdiff/scriptdiff",
		dir:            dir,
		now:            time.Now,
		writeClipboard: clipboard.WriteAll,
	}
}

func (s *svc) ToMarkdown(source string, lines []string) (string, error) {
	data := struct {
		Source string
		Lines  []string
		URL    string
	}{
		Source: source,
		Lines:  lines,
		URL:    s.url,
	}

	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, data); err != nil {
		err = fmt.Errorf("error executing markdown template: %w", err)
		return "", err
	}
	return buf.String(), nil
}

func (s *svc) ToMarkdownFile(ctx context.Context, source string, lines []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	mdContent, err := s.ToMarkdown(source, lines)
	if err != nil {
		return "", err
	}

	humanReadableTime := s.now().Format("2006_01_02_15_04_05")
	fileName := filepath.Join(s.dir, fmt.Sprintf("scriptdiff_%s.md", humanReadableTime))
	f, err := os.Create(fileName)
	if err != nil {
		err = fmt.Errorf("failed to create markdown file: %w", err)
		return "", err
	}
	if _, err := f.WriteString(mdContent); err != nil {
		f.Close()
		err = fmt.Errorf("failed to write md to file: %w", err)
		return "", err
	}
	if err := f.Close(); err != nil {
		err = fmt.Errorf("failed to write md to file: %w", err)
		return "", err
	}

	display.Info(fmt.Sprintf("Markdown file created: %s", fileName))

	// Only a written file is copied.
	if cerr := s.writeClipboard(mdContent); cerr == nil {
		display.Info("Wrote md contents to clipboard")
	}
	return fileName, nil
}
