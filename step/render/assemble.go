package render

import (
	"fmt"
	"strings"

	"github.com/scriptdiff/scriptdiff/step/kind"
)

const separator = " ; "

type assembler interface {
	assemble(s *step) (string, error)
}

var assemblers = map[kind.Kind]assembler{
	kind.Comment: commentAssembler{},
	kind.Generic: genericAssembler{},
}

// commentAssembler never uses the step name. A comment without text renders
// as the empty string.
type commentAssembler struct{}

func (commentAssembler) assemble(s *step) (string, error) {
	joined := strings.Join(s.fragments, separator)
	if strings.TrimSpace(joined) == "" {
		return "", nil
	}
	return "# " + joined, nil
}

type genericAssembler struct{}

func (genericAssembler) assemble(s *step) (string, error) {
	if !s.hasName {
		return "", fmt.Errorf("%w: <%s> has no name", ErrMalformedInput, stepElement)
	}

	joined := strings.TrimSpace(strings.Join(s.fragments, separator))
	if joined == "" {
		return s.name, nil
	}
	return fmt.Sprintf("%s [ %s ]", s.name, joined), nil
}
