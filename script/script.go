package script

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/sync/errgroup"

	"github.com/scriptdiff/scriptdiff/step/render"
)

const DefaultConcurrency = 8

var ErrMalformedScript = errors.New("malformed script xml")

// Step is the raw XML of one step found in a script document.
type Step struct {
	// Index is the position of the step in the document, starting at 0.
	Index int
	// ID is the numeric step id, 0 when the id attribute is missing or not a number.
	ID  uint32
	XML string
}

// Line is the rendered text of a Step. Err is set instead when the step
// could not be rendered.
type Line struct {
	Step Step
	Text string
	Err  error
}

// Split returns every Step element of a script document in document order.
// Steps nested inside another Step belong to their parent.
func Split(data []byte) ([]Step, error) {
	data, err := utf8Body(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedScript, err)
	}
	d := xml.NewDecoder(bytes.NewReader(data))

	var steps []Step
	for {
		start := d.InputOffset()
		tok, err := d.Token()
		if err == io.EOF {
			return steps, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedScript, err)
		}

		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "Step" {
			continue
		}

		step := Step{Index: len(steps), ID: stepID(el)}
		if err := d.Skip(); err != nil {
			// An unterminated last step runs to the end of the input.
			step.XML = string(data[start:])
			return append(steps, step), nil
		}
		step.XML = string(data[start:d.InputOffset()])
		steps = append(steps, step)
	}
}

var encodingRegex = regexp.MustCompile(`encoding\s*=\s*["']([^"']+)["']`)

// utf8Body strips the XML declaration and transcodes the rest of the document
// to UTF-8, so byte offsets into the result can be sliced into steps.
func utf8Body(data []byte) ([]byte, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	tok, err := d.RawToken()
	if err != nil {
		// Empty or broken input is reported by the caller's decoder.
		return data, nil
	}
	decl, ok := tok.(xml.ProcInst)
	if !ok || decl.Target != "xml" {
		return data, nil
	}

	body := data[d.InputOffset():]
	match := encodingRegex.FindSubmatch(decl.Inst)
	if match == nil || strings.EqualFold(string(match[1]), "utf-8") {
		return body, nil
	}

	r, err := charset.NewReaderLabel(string(match[1]), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

func stepID(el xml.StartElement) uint32 {
	for _, a := range el.Attr {
		if a.Name.Local != "id" {
			continue
		}
		id, err := strconv.ParseUint(a.Value, 10, 32)
		if err != nil {
			return 0
		}
		return uint32(id)
	}
	return 0
}

// RenderAll renders steps with at most concurrency steps in flight.
// Lines are returned in the order of steps. The only error returned is
// the context's.
func RenderAll(ctx context.Context, r render.Renderer, steps []Step, concurrency int) ([]Line, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	lines := make([]Line, len(steps))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, step := range steps {
		i, step := i, step
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := r.Render(step.ID, step.XML)
			lines[i] = Line{Step: step, Text: text, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}
