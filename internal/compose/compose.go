// Package compose assembles submission documents from reusable text
// blocks stored as markdown files.
//
// A record's submission.blocks_used maps a section name to a block
// reference resolved as <blocks>/<ref>.md. submission.variant_ids maps a
// section to a variant resolved as <blocks>/variants/<id>.md; a variant
// replaces the block for its section.
package compose

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexanderramin/pursuit/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrBlockNotFound is wrapped when a referenced block or variant is missing.
var ErrBlockNotFound = errors.New("block not found")

// sectionOrder puts the usual application sections first; anything else
// follows alphabetically.
var sectionOrder = []string{"cover", "summary", "statement", "bio", "project", "budget", "samples", "references"}

// Section is one assembled part of a document.
type Section struct {
	Name   string
	Source string // block ref or "variants/<id>"
	Body   string
}

// Document is a fully assembled submission.
type Document struct {
	ID       string
	Name     string
	Sections []Section
}

// Words counts whitespace-separated words across every section body.
func (d *Document) Words() int {
	n := 0
	for _, s := range d.Sections {
		n += len(strings.Fields(s.Body))
	}
	return n
}

// Markdown renders the document with one heading per section.
func (d *Document) Markdown() string {
	title := cases.Title(language.English)
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", d.Name)
	for _, s := range d.Sections {
		heading := title.String(strings.ReplaceAll(s.Name, "_", " "))
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", heading, strings.TrimRight(s.Body, "\n"))
	}
	return b.String()
}

// MissingError lists every unresolved reference of one record.
type MissingError struct {
	ID   string
	Refs []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s: %d unresolved reference(s): %s", e.ID, len(e.Refs), strings.Join(e.Refs, ", "))
}

func (e *MissingError) Unwrap() error { return ErrBlockNotFound }

type Service struct {
	dir string
}

func NewService(blocksDir string) *Service {
	return &Service{dir: blocksDir}
}

// HasBlock reports whether ref resolves to a readable block file.
func (s *Service) HasBlock(ref string) bool {
	p, ok := s.blockPath(ref)
	if !ok {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// HasVariant reports whether a variant with id exists.
func (s *Service) HasVariant(id string) bool {
	return s.HasBlock(variantRef(id))
}

// Compose resolves every block and variant reference of op. When any
// reference is missing it returns a *MissingError naming all of them.
func (s *Service) Compose(op *domain.Opportunity) (*Document, error) {
	refs := make(map[string]string, len(op.Submission.BlocksUsed)+len(op.Submission.VariantIDs))
	for section, ref := range op.Submission.BlocksUsed {
		refs[section] = ref
	}
	for section, id := range op.Submission.VariantIDs {
		refs[section] = variantRef(id)
	}

	doc := &Document{ID: op.ID, Name: op.Name}
	vars := placeholders(op)
	var missing []string
	for _, section := range orderedSections(refs) {
		ref := refs[section]
		body, err := s.read(ref)
		if errors.Is(err, ErrBlockNotFound) {
			missing = append(missing, ref)
			continue
		}
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, Section{Name: section, Source: ref, Body: vars.Replace(body)})
	}
	if len(missing) > 0 {
		return nil, &MissingError{ID: op.ID, Refs: missing}
	}
	return doc, nil
}

func (s *Service) read(ref string) (string, error) {
	p, ok := s.blockPath(ref)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrBlockNotFound, ref)
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrBlockNotFound, ref)
	}
	if err != nil {
		return "", fmt.Errorf("reading block %s: %w", p, err)
	}
	return string(data), nil
}

func (s *Service) blockPath(ref string) (string, bool) {
	ref = strings.TrimSuffix(strings.TrimSpace(ref), ".md")
	if ref == "" || filepath.IsAbs(ref) {
		return "", false
	}
	clean := filepath.Clean(ref)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.Join(s.dir, clean+".md"), true
}

func variantRef(id string) string {
	return "variants/" + id
}

func orderedSections(refs map[string]string) []string {
	rank := make(map[string]int, len(sectionOrder))
	for i, s := range sectionOrder {
		rank[s] = i + 1
	}
	names := make([]string, 0, len(refs))
	for name := range refs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := rank[names[i]], rank[names[j]]
		switch {
		case ri != 0 && rj != 0:
			return ri < rj
		case ri != 0:
			return true
		case rj != 0:
			return false
		}
		return names[i] < names[j]
	})
	return names
}

// placeholders substitutes record fields into block text.
func placeholders(op *domain.Opportunity) *strings.Replacer {
	return strings.NewReplacer(
		"{{name}}", op.Name,
		"{{organization}}", op.Target.Organization,
		"{{portfolio_url}}", op.Submission.PortfolioURL,
		"{{identity_position}}", op.Fit.IdentityPosition,
	)
}
