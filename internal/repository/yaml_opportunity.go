package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/lifecycle"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const recordExt = ".yaml"

// YAMLOpportunityRepo implements OpportunityRepo over a pipeline root
// directory containing one subdirectory per bucket.
type YAMLOpportunityRepo struct {
	root string
}

// NewYAMLOpportunityRepo creates a repo rooted at root.
func NewYAMLOpportunityRepo(root string) *YAMLOpportunityRepo {
	return &YAMLOpportunityRepo{root: root}
}

// Root returns the pipeline root directory.
func (r *YAMLOpportunityRepo) Root() string {
	return r.root
}

func (r *YAMLOpportunityRepo) bucketDir(b domain.Bucket) string {
	return filepath.Join(r.root, string(b))
}

func (r *YAMLOpportunityRepo) path(b domain.Bucket, id string) string {
	return filepath.Join(r.bucketDir(b), id+recordExt)
}

func (r *YAMLOpportunityRepo) List(ctx context.Context) (*LoadResult, error) {
	copies, failures, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{Failures: failures}
	for _, id := range sortedIDs(copies) {
		found := copies[id]
		keep := preferred(found)
		result.Opportunities = append(result.Opportunities, keep.op)
		for _, dup := range found {
			if dup.op == keep.op {
				continue
			}
			result.Failures = append(result.Failures, LoadFailure{
				Path: r.path(dup.op.Bucket, id),
				Err:  fmt.Errorf("duplicate of %s in %s/ (run reconcile)", id, keep.op.Bucket),
			})
		}
	}
	return result, nil
}

func (r *YAMLOpportunityRepo) GetByID(ctx context.Context, id string) (*domain.Opportunity, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var found []loadedCopy
	for _, b := range domain.AllBuckets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := r.readFile(r.path(b, id), b)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		found = append(found, c)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return preferred(found).op, nil
}

func (r *YAMLOpportunityRepo) Create(ctx context.Context, o *domain.Opportunity) error {
	if err := validateID(o.ID); err != nil {
		return err
	}
	for _, b := range domain.AllBuckets {
		if _, err := os.Stat(r.path(b, o.ID)); err == nil {
			return fmt.Errorf("opportunity %s already exists in %s/", o.ID, b)
		}
	}
	return r.Save(ctx, o)
}

func (r *YAMLOpportunityRepo) Save(ctx context.Context, o *domain.Opportunity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateID(o.ID); err != nil {
		return err
	}

	from := o.Bucket
	to := from
	if !lifecycle.BucketAllowed(o.Status, from) {
		to = lifecycle.BucketFor(o.Status)
	}

	data, err := encodeRecord(o)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", o.ID, err)
	}

	dest := r.path(to, o.ID)
	if err := writeFileAtomic(dest, data); err != nil {
		return err
	}

	// The new copy is durable; only now drop the old one.
	if from != "" && from != to {
		old := r.path(from, o.ID)
		if err := os.Remove(old); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing %s after move to %s/: %w", old, to, err)
		}
	}

	o.Bucket = to
	return nil
}

func (r *YAMLOpportunityRepo) Reconcile(ctx context.Context, dryRun bool) ([]Move, error) {
	copies, _, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	var moves []Move
	for _, id := range sortedIDs(copies) {
		found := copies[id]
		winner := preferred(found)
		keep := winner.op

		for _, dup := range found {
			if dup.op == winner.op {
				continue
			}
			stale := r.path(dup.op.Bucket, id)
			moves = append(moves, Move{ID: id, From: dup.op.Bucket, To: keep.Bucket, Reason: "duplicate"})
			if dryRun {
				continue
			}
			if err := os.Remove(stale); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return moves, fmt.Errorf("removing duplicate %s: %w", stale, err)
			}
		}

		if lifecycle.BucketAllowed(keep.Status, keep.Bucket) {
			continue
		}
		moves = append(moves, Move{
			ID:     id,
			From:   keep.Bucket,
			To:     lifecycle.BucketFor(keep.Status),
			Reason: fmt.Sprintf("status %s", keep.Status),
		})
		if dryRun {
			continue
		}
		if err := r.Save(ctx, keep); err != nil {
			return moves, err
		}
	}
	return moves, nil
}

// loadedCopy is one on-disk copy of a record.
type loadedCopy struct {
	op       *domain.Opportunity
	modified time.Time
}

// loadAll reads every bucket, grouping copies by id.
func (r *YAMLOpportunityRepo) loadAll(ctx context.Context) (map[string][]loadedCopy, []LoadFailure, error) {
	if _, err := os.Stat(r.root); err != nil {
		return nil, nil, fmt.Errorf("opening pipeline root %s: %w", r.root, err)
	}

	copies := make(map[string][]loadedCopy)
	var failures []LoadFailure
	for _, b := range domain.AllBuckets {
		entries, err := os.ReadDir(r.bucketDir(b))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			failures = append(failures, LoadFailure{Path: r.bucketDir(b), Err: err})
			continue
		}
		for _, e := range entries {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, recordExt) || strings.HasPrefix(name, ".") {
				continue
			}
			path := filepath.Join(r.bucketDir(b), name)
			c, err := r.readFile(path, b)
			if err != nil {
				failures = append(failures, LoadFailure{Path: path, Err: err})
				continue
			}
			copies[c.op.ID] = append(copies[c.op.ID], c)
		}
	}
	return copies, failures, nil
}

func (r *YAMLOpportunityRepo) readFile(path string, b domain.Bucket) (loadedCopy, error) {
	info, err := os.Stat(path)
	if err != nil {
		return loadedCopy{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return loadedCopy{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var rec opportunityRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return loadedCopy{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	op, err := rec.toDomain()
	if err != nil {
		return loadedCopy{}, err
	}
	if want := strings.TrimSuffix(filepath.Base(path), recordExt); op.ID != want {
		return loadedCopy{}, domain.Invalid("id", op.ID, fmt.Sprintf("does not match file name %s", filepath.Base(path)))
	}
	op.Bucket = b
	return loadedCopy{op: op, modified: info.ModTime()}, nil
}

func encodeRecord(o *domain.Opportunity) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(recordFromDomain(o)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes data to a hidden temp file beside dest and
// renames it into place.
func writeFileAtomic(dest string, data []byte) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp := filepath.Join(dir, "."+filepath.Base(dest)+".tmp-"+uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming %s: %w", dest, err)
	}
	return nil
}

// preferred picks the most recently written copy: an interrupted move
// writes the new copy last.
func preferred(copies []loadedCopy) loadedCopy {
	best := copies[0]
	for _, c := range copies[1:] {
		if c.modified.After(best.modified) {
			best = c
		}
	}
	return best
}

func sortedIDs(m map[string][]loadedCopy) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func validateID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.HasPrefix(id, ".") {
		return domain.Invalid("id", id, "must be a non-empty slug without path separators")
	}
	return nil
}
