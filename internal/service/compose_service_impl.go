package service

import (
	"context"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/compose"
	"github.com/alexanderramin/pursuit/internal/repository"
)

type composeService struct {
	repo     repository.OpportunityRepo
	composer *compose.Service
	observer UseCaseObserver
}

func NewComposeService(repo repository.OpportunityRepo, composer *compose.Service, observers ...UseCaseObserver) ComposeService {
	return &composeService{repo: repo, composer: composer, observer: useCaseObserverOrNoop(observers)}
}

func (s *composeService) Compose(ctx context.Context, id string) (resp *app.ComposeResponse, err error) {
	sp := startSpan(s.observer, "compose")
	defer sp.finish(ctx, &err)
	sp.set("id", id)

	op, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	doc, err := s.composer.Compose(op)
	if err != nil {
		return nil, err
	}
	sp.set("sections", len(doc.Sections))
	return &app.ComposeResponse{
		ID:       doc.ID,
		Name:     doc.Name,
		Markdown: doc.Markdown(),
		Words:    doc.Words(),
		Sections: len(doc.Sections),
	}, nil
}
