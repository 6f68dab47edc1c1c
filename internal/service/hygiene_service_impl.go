package service

import (
	"context"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/hygiene"
	"github.com/alexanderramin/pursuit/internal/repository"
)

type hygieneService struct {
	repo     repository.OpportunityRepo
	checker  hygiene.Checker
	observer UseCaseObserver
}

// NewHygieneService wires the checker. materials and blocks may be nil to
// skip those checks.
func NewHygieneService(
	repo repository.OpportunityRepo,
	policy domain.Policy,
	materials hygiene.MaterialChecker,
	blocks hygiene.BlockResolver,
	observers ...UseCaseObserver,
) HygieneService {
	return &hygieneService{
		repo:     repo,
		checker:  hygiene.Checker{Policy: policy, Materials: materials, Blocks: blocks},
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *hygieneService) Check(ctx context.Context, req app.HygieneRequest) (resp *app.HygieneResponse, err error) {
	sp := startSpan(s.observer, "hygiene")
	defer sp.finish(ctx, &err)

	now := resolveNow(req.Now)
	ops, warnings, err := loadAll(ctx, s.repo)
	if err != nil {
		return nil, err
	}

	resp = &app.HygieneResponse{
		GeneratedAt: now,
		KindCounts:  make(map[hygiene.IssueKind]int),
		Warnings:    warnings,
	}
	for _, op := range ops {
		if op.Status.Terminal() && !req.IncludeClosed {
			continue
		}
		resp.Checked++
		issues := s.checker.Check(op, now)
		if len(issues) == 0 {
			continue
		}
		for _, is := range issues {
			resp.KindCounts[is.Kind]++
		}
		resp.Findings = append(resp.Findings, app.HygieneFinding{
			OpportunitySummary: app.Summarize(op, now),
			Issues:             issues,
		})
	}
	sp.set("checked", resp.Checked)
	sp.set("issues", resp.IssueCount())
	return resp, nil
}
