package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/importer"
	"github.com/alexanderramin/pursuit/internal/repository"
)

type importService struct {
	repo     repository.OpportunityRepo
	now      func() time.Time
	observer UseCaseObserver
}

func NewImportService(repo repository.OpportunityRepo, observers ...UseCaseObserver) ImportService {
	return &importService{repo: repo, now: time.Now, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*app.ImportResult, error) {
	list, err := importer.LoadLeadList(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportList(ctx, list)
}

// ImportList validates the whole list before writing anything. Leads whose
// id already exists are skipped rather than overwritten.
func (s *importService) ImportList(ctx context.Context, list *importer.LeadList) (res *app.ImportResult, err error) {
	sp := startSpan(s.observer, "import")
	defer sp.finish(ctx, &err)

	if errs := importer.ValidateLeadList(list); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	res = &app.ImportResult{}
	for _, op := range importer.Convert(list, s.now()) {
		_, getErr := s.repo.GetByID(ctx, op.ID)
		switch {
		case getErr == nil:
			res.Skipped = append(res.Skipped, op.ID)
			continue
		case !errors.Is(getErr, repository.ErrNotFound):
			return res, fmt.Errorf("checking %s: %w", op.ID, getErr)
		}
		if err = s.repo.Create(ctx, op); err != nil {
			return res, fmt.Errorf("creating %s: %w", op.ID, err)
		}
		res.Created = append(res.Created, op.ID)
	}
	sp.set("created", len(res.Created))
	sp.set("skipped", len(res.Skipped))
	return res, nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - " + e.Error())
	}
	return &app.Error{Code: app.ErrInvalidRequest, Message: b.String()}
}
