package render

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/scriptdiff/scriptdiff/step/kind"
	"github.com/scriptdiff/scriptdiff/step/param"
	"github.com/scriptdiff/scriptdiff/step/policy"
)

const (
	stepElement      = "Step"
	blockElement     = "ParameterValues"
	parameterElement = "Parameter"
)

var ErrMalformedInput = errors.New("malformed step xml")

// Renderer renders one script step into a single line of text.
type Renderer interface {
	Render(id uint32, stepXML string) (string, error)
}

type renderer struct {
	kinds   *kind.Registry
	decoder *param.Decoder
	logger  *slog.Logger
}

var _ Renderer = &renderer{}

// New returns a Renderer. Nil tables fall back to the embedded defaults.
func New(kinds *kind.Registry, policies *policy.Table, logger *slog.Logger) Renderer {
	if kinds == nil {
		kinds = kind.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &renderer{
		kinds:   kinds,
		decoder: param.NewDecoder(policies, logger),
		logger:  logger,
	}
}

var defaultRenderer = New(nil, nil, nil)

// Render renders a step with the embedded step and label tables.
func Render(id uint32, stepXML string) (string, error) {
	return defaultRenderer.Render(id, stepXML)
}

// Render is safe for concurrent use; nothing is kept between calls.
func (r *renderer) Render(id uint32, stepXML string) (string, error) {
	k := r.kinds.Classify(id)
	s, err := r.parse(stepXML)
	if err != nil {
		return "", err
	}

	a, ok := assemblers[k]
	if !ok {
		a = genericAssembler{}
	}
	return a.assemble(s)
}

type step struct {
	name      string
	hasName   bool
	fragments []string
}

func (r *renderer) parse(stepXML string) (*step, error) {
	d := xml.NewDecoder(strings.NewReader(stepXML))
	// Offsets of a transcoded stream do not index stepXML.
	transcoded := false
	d.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		transcoded = true
		return charset.NewReaderLabel(label, input)
	}

	var (
		s       *step
		stack   []string
		pType   param.Type
		pending bool
		last    int64
	)

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if s != nil && isUnexpectedEOF(err) && !transcoded && endsClean(stepXML, last) {
				// End of input closes the elements that are still open.
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		last = d.InputOffset()

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case len(stack) == 0:
				if t.Name.Local != stepElement {
					return nil, fmt.Errorf("%w: root element is <%s>, not <%s>", ErrMalformedInput, t.Name.Local, stepElement)
				}
				s = &step{}
				s.name, s.hasName = attr(t.Attr, "name")
			case len(stack) == 2 && stack[1] == blockElement && t.Name.Local == parameterElement:
				typ, _ := attr(t.Attr, "type")
				pType = param.Type(typ)
				pending = true
			case len(stack) == 3 && pending:
				pending = false
				r.decode(s, pType, t)
			}
			stack = append(stack, t.Name.Local)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
			if len(stack) == 2 && pending {
				r.logger.Debug("parameter omitted", "type", pType, "error", "no value element")
				pending = false
			}
			if len(stack) == 0 {
				return s, nil
			}
		}
	}

	if s == nil {
		return nil, fmt.Errorf("%w: no <%s> element", ErrMalformedInput, stepElement)
	}
	return s, nil
}

func (r *renderer) decode(s *step, t param.Type, el xml.StartElement) {
	fragment, ok, err := r.decoder.Decode(t, el.Attr)
	if err != nil {
		r.logger.Debug("parameter omitted", "step", s.name, "type", t, "element", el.Name.Local, "error", err)
		return
	}
	if ok {
		s.fragments = append(s.fragments, lineBreaks.Replace(fragment))
	}
}

// lineBreaks folds line breaks in parameter text so a step stays on one line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// endsClean reports whether only whitespace follows the last complete token.
// Input cut off inside a tag or attribute is not clean.
func endsClean(stepXML string, offset int64) bool {
	if offset < 0 || offset > int64(len(stepXML)) {
		return false
	}
	return strings.TrimSpace(stepXML[offset:]) == ""
}

func isUnexpectedEOF(err error) bool {
	var se *xml.SyntaxError
	return errors.As(err, &se) && se.Msg == "unexpected EOF"
}

func attr(attrs []xml.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
