package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/smartly/internal/db"
	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/importer"
	"github.com/alexanderramin/smartly/internal/repository"
)

// CacheInvalidator is implemented by catalog caches that must be flushed
// after an import.
type CacheInvalidator interface {
	Invalidate()
}

type catalogService struct {
	uow      db.UnitOfWork
	content  repository.ContentRepo
	cache    CacheInvalidator
	observer UseCaseObserver
	now      func() time.Time
}

// NewCatalogService builds the catalog service. cache may be nil.
func NewCatalogService(uow db.UnitOfWork, content repository.ContentRepo, cache CacheInvalidator, observers ...UseCaseObserver) CatalogService {
	return &catalogService{
		uow:      uow,
		content:  content,
		cache:    cache,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *catalogService) ImportFile(ctx context.Context, path string) (*CatalogImportResult, error) {
	schema, err := importer.LoadCatalogSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

// ImportSchema validates and converts the schema, then writes every item in
// one transaction. Nothing is stored if any item fails.
func (s *catalogService) ImportSchema(ctx context.Context, schema *importer.CatalogSchema) (result *CatalogImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"items": len(schema.Items)}
	defer observe(ctx, s.observer, UseCaseCatalogImport, startedAt, fields, &err)

	if errs := importer.ValidateCatalogSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	items, err := importer.Convert(schema, s.now())
	if err != nil {
		return nil, fmt.Errorf("converting catalog schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteContentRepo(tx)
		for _, item := range items {
			if err := repo.Create(ctx, item); err != nil {
				return fmt.Errorf("creating content item %q: %w", item.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate()
	}

	result = &CatalogImportResult{Items: items}
	for _, it := range items {
		switch it.ContentType {
		case domain.ContentWorkout:
			result.Workouts++
		case domain.ContentProgram:
			result.Programs++
		}
		if !it.IsVisible {
			result.Hidden++
		}
	}
	fields["workouts"] = result.Workouts
	fields["programs"] = result.Programs
	return result, nil
}

func (s *catalogService) List(ctx context.Context, includeHidden bool) ([]domain.ContentItem, error) {
	return s.content.List(ctx, includeHidden)
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "catalog validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%s", b.String())
}
