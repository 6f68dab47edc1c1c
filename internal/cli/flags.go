package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// enumFlag is a string flag limited to a closed set of values.
type enumFlag struct {
	target  *string
	allowed []string
}

var _ pflag.Value = (*enumFlag)(nil)

func newEnumFlag[T ~string](target *string, values []T) *enumFlag {
	allowed := make([]string, len(values))
	for i, v := range values {
		allowed[i] = string(v)
	}
	return &enumFlag{target: target, allowed: allowed}
}

func (f *enumFlag) String() string { return *f.target }

func (f *enumFlag) Set(s string) error {
	for _, a := range f.allowed {
		if s == a {
			*f.target = s
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(f.allowed, ", "))
}

func (f *enumFlag) Type() string { return "string" }
