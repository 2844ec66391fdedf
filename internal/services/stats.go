package services

import (
	"context"
	"errors"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/todo-tracker/internal/logger"
	"github.com/sbilibin2017/todo-tracker/internal/models"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=stats.go -destination=mock_stats.go -package=services

// ErrInvalidRange is returned for a range name outside the known set.
var ErrInvalidRange = errors.New("invalid range parameter")

// Bucket label layouts.
const (
	HourBucketLayout = "2006-01-02 15:00"
	DayBucketLayout  = "2006-01-02"
)

// CompletionReader queries completed todos of one user.
type CompletionReader interface {
	FindCompletedSince(ctx context.Context, userID uuid.UUID, start time.Time) ([]time.Time, error)
	CountCompletedSince(ctx context.Context, userID uuid.UUID, start time.Time) (int64, error)
}

// Window is the lower bound and bucket granularity of a stats range.
type Window struct {
	Start  time.Time
	Layout string
}

// BucketKey returns the label of the bucket t falls into.
func (w Window) BucketKey(t time.Time) string {
	return t.UTC().Format(w.Layout)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Weeks start on Sunday.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func startOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.UTC().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// ResolveWindow maps a range name to its window relative to now.
func ResolveWindow(r models.StatsRange, now time.Time) (Window, error) {
	switch r {
	case models.RangeToday:
		return Window{Start: startOfDay(now), Layout: HourBucketLayout}, nil
	case models.RangeThisWeek:
		return Window{Start: startOfWeek(now), Layout: DayBucketLayout}, nil
	case models.RangeThisMonth:
		return Window{Start: startOfMonth(now), Layout: DayBucketLayout}, nil
	case models.RangeThisYear:
		return Window{Start: startOfYear(now), Layout: DayBucketLayout}, nil
	case models.RangeAllTime:
		return Window{Start: time.Unix(0, 0).UTC(), Layout: DayBucketLayout}, nil
	default:
		return Window{}, ErrInvalidRange
	}
}

// Bucketize counts completion instants per bucket, ordered by label.
func Bucketize(times []time.Time, w Window) []models.StatsBucket {
	counts := make(map[string]int64)
	for _, t := range times {
		counts[w.BucketKey(t)]++
	}

	series := make([]models.StatsBucket, 0, len(counts))
	for _, label := range slices.Sorted(maps.Keys(counts)) {
		series = append(series, models.StatsBucket{Label: label, Count: counts[label]})
	}
	return series
}

// StatsService aggregates completion statistics.
type StatsService struct {
	store CompletionReader
	now   func() time.Time
}

// NewStatsService creates a StatsService. A nil clock means time.Now.
func NewStatsService(store CompletionReader, now func() time.Time) *StatsService {
	if now == nil {
		now = time.Now
	}
	return &StatsService{store: store, now: now}
}

// Compute returns the series for the requested range together with the
// totals of all five fixed windows. An empty range means today.
func (svc *StatsService) Compute(ctx context.Context, userID uuid.UUID, r models.StatsRange) (*models.Stats, error) {
	if r == "" {
		r = models.RangeToday
	}

	now := svc.now().UTC()
	window, err := ResolveWindow(r, now)
	if err != nil {
		return nil, err
	}

	var (
		series []models.StatsBucket
		totals models.CompletedTasks
	)
	summary := []struct {
		start time.Time
		dst   *int64
	}{
		{startOfDay(now), &totals.Today},
		{startOfWeek(now), &totals.ThisWeek},
		{startOfMonth(now), &totals.ThisMonth},
		{startOfYear(now), &totals.ThisYear},
		{time.Unix(0, 0).UTC(), &totals.AllTime},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		times, err := svc.store.FindCompletedSince(gctx, userID, window.Start)
		if err != nil {
			return err
		}
		series = Bucketize(times, window)
		return nil
	})
	for _, s := range summary {
		g.Go(func() error {
			n, err := svc.store.CountCompletedSince(gctx, userID, s.start)
			if err != nil {
				return err
			}
			*s.dst = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to aggregate stats", "userID", userID, "range", r, "err", err)
		return nil, err
	}

	return &models.Stats{
		Range:          r,
		Series:         series,
		CompletedTasks: totals,
	}, nil
}
