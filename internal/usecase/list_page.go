package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/schema"
	"hospital-admin/internal/filter"
	"hospital-admin/internal/infrastructure/metrics"
	"hospital-admin/internal/page"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidListQuery = errors.New("invalid list query")

// FetchError reports a backend failure while loading a list or a count.
type FetchError struct {
	Entity string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Entity, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the query ran past its deadline.
func (e *FetchError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// listPage describes how one page loads its rows: the base table, the default embeds and
// order, the filter spec and the repository call.
type listPage[T any] struct {
	table schema.Table
	query entity.ListQuery
	spec  filter.Spec[T]
	list  func(db *gorm.DB, q entity.ListQuery) ([]T, error)
}

type loadedPage[T any] struct {
	page     *page.Page[T]
	filtered []T
	options  map[string][]string
}

// resolveQuery applies the requested order over the page defaults.
func (p listPage[T]) resolveQuery(req *dto.ListRequest) (entity.ListQuery, error) {
	direction, err := schema.ParseDirection(req.Direction, p.query.Direction)
	if err != nil {
		return entity.ListQuery{}, fmt.Errorf("%w: %w", ErrInvalidListQuery, err)
	}
	q := p.query.WithOrder(req.Order, direction)
	if err := p.table.ValidateListQuery(q); err != nil {
		return entity.ListQuery{}, fmt.Errorf("%w: %w", ErrInvalidListQuery, err)
	}
	return q, nil
}

// load fetches the rows under timeout, resolves the page and applies the filters. A fetch
// failure resolves the page to Error and is returned as *FetchError alongside the page.
func (p listPage[T]) load(ctx context.Context, db *gorm.DB, log *logrus.Logger, timeout time.Duration, req *dto.ListRequest) (*loadedPage[T], error) {
	q, err := p.resolveQuery(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pg := page.New[T]()
	start := time.Now()
	rows, err := p.list(db.WithContext(ctx), q)
	metrics.RecordListFetch(p.table.Name, time.Since(start))
	if err != nil {
		fetchErr := &FetchError{Entity: p.table.Name, Err: err}
		metrics.RecordFetchError(p.table.Name)
		log.WithFields(logrus.Fields{
			"entity":    p.table.Name,
			"order":     q.OrderColumn,
			"direction": q.Direction,
		}).Warnf("Failed to fetch list: %+v", err)
		_ = pg.Resolve(nil, fetchErr)
		return &loadedPage[T]{page: pg, filtered: []T{}, options: emptyOptions(p.spec.CategoryNames())}, fetchErr
	}
	_ = pg.Resolve(rows, nil)

	all := pg.Rows()
	return &loadedPage[T]{
		page:     pg,
		filtered: p.spec.Apply(all, filter.Criteria{Search: req.Search, Equals: req.Filters}),
		options:  p.spec.AllOptions(all),
	}, nil
}

func emptyOptions(categories []string) map[string][]string {
	options := make(map[string][]string, len(categories))
	for _, c := range categories {
		options[c] = []string{}
	}
	return options
}

// toPageResponse converts the filtered rows of a loaded page into the response DTO.
func toPageResponse[T, R any](loaded *loadedPage[T], convert func([]T) []R) *dto.PageResponse[R] {
	return &dto.PageResponse[R]{
		State:    loaded.page.State(),
		Rows:     convert(loaded.filtered),
		Total:    len(loaded.page.Rows()),
		Filtered: len(loaded.filtered),
		Options:  loaded.options,
	}
}
