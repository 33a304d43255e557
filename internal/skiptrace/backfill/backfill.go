// Package backfill drives a skip trace run over every row of a contact table.
package backfill

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skiptrace/internal/skiptrace/repository"
	"skiptrace/internal/skiptrace/service"
	"skiptrace/internal/skiptrace/transport"
	"skiptrace/platform/logger"
	"skiptrace/platform/phone"

	"github.com/dustin/go-humanize"
	"golang.org/x/time/rate"
)

// Looker resolves one contact. *service.Service satisfies it.
type Looker interface {
	LookupDetailed(ctx context.Context, c transport.Contact) (transport.ContactResult, service.Outcome)
}

// Options controls a run.
type Options struct {
	// Delay is the minimum spacing between two lookups. Zero disables pacing.
	Delay time.Duration
	// DryRun skips writing the table back to disk.
	DryRun bool
}

// Summary reports what a run did.
type Summary struct {
	Processed    int
	Found        int
	NotFound     int
	Unauthorized int
	Failed       int

	Mobiles     int
	Landlines   int
	Emails      int
	ValidPhones int

	Saved     bool
	SavedRows int
	Elapsed   time.Duration
}

// Runner applies lookups to a table row by row.
type Runner struct {
	lookup  Looker
	log     *logger.Logger
	limiter *rate.Limiter
	dryRun  bool
}

// New creates a runner.
func New(lookup Looker, log *logger.Logger, opts Options) *Runner {
	limit := rate.Inf
	if opts.Delay > 0 {
		limit = rate.Every(opts.Delay)
	}
	return &Runner{
		lookup:  lookup,
		log:     log,
		limiter: rate.NewLimiter(limit, 1),
		dryRun:  opts.DryRun,
	}
}

// Run looks up every row of table in order, writes each result into the
// row's output columns and saves the table once at the end. Lookup failures
// leave the row's outputs empty and never stop the run. A cancelled context
// stops the run after the current row; the rows done so far are still saved.
func (r *Runner) Run(ctx context.Context, table *repository.Table) (Summary, error) {
	start := time.Now()
	total := table.Len()
	var summary Summary

	r.log.Info("skip trace run started", "file", table.Path(), "records", humanize.Comma(int64(total)), "dryRun", r.dryRun)

	var runErr error
	for i := 0; i < total; i++ {
		if err := r.limiter.Wait(ctx); err != nil {
			runErr = fmt.Errorf("run interrupted at record %d/%d: %w", i+1, total, err)
			r.log.Warn("skip trace run interrupted", "record", i+1, "records", total, "error", err)
			break
		}

		contact := table.Contact(i)
		r.log.Info(fmt.Sprintf("record %d/%d: %s", i+1, total, displayName(contact)))

		rowCtx := context.WithValue(ctx, logger.RowKey, i+1)
		result, outcome := r.lookup.LookupDetailed(rowCtx, contact)
		table.Apply(i, result)
		summary.record(result, outcome)

		r.log.Debug("record updated",
			"row", i+1,
			"outcome", string(outcome),
			"mobileE164", phone.Mask(phone.NormalizeE164(result.MobilePhone)),
			"landlineE164", phone.Mask(phone.NormalizeE164(result.Landline)),
		)
	}

	if !r.dryRun {
		if err := table.Save(); err != nil {
			return summary, fmt.Errorf("save %s: %w", table.Path(), err)
		}
		summary.Saved = true

		saved, err := table.Reload()
		if err != nil {
			return summary, fmt.Errorf("verify %s: %w", table.Path(), err)
		}
		summary.SavedRows = saved.Len()
		r.log.Info("saved contact table", "file", table.Path(), "rows", humanize.Comma(int64(summary.SavedRows)))
	}

	summary.Elapsed = time.Since(start)
	r.logSummary(summary)
	return summary, runErr
}

func (s *Summary) record(result transport.ContactResult, outcome service.Outcome) {
	s.Processed++
	switch outcome {
	case service.OutcomeFound:
		s.Found++
	case service.OutcomeNotFound:
		s.NotFound++
	case service.OutcomeUnauthorized:
		s.Unauthorized++
	default:
		s.Failed++
	}

	if result.MobilePhone != "" {
		s.Mobiles++
		if phone.IsValid(result.MobilePhone) {
			s.ValidPhones++
		}
	}
	if result.Landline != "" {
		s.Landlines++
		if phone.IsValid(result.Landline) {
			s.ValidPhones++
		}
	}
	if result.Email != "" {
		s.Emails++
	}
}

func (r *Runner) logSummary(s Summary) {
	r.log.Info("skip trace run completed",
		"processed", humanize.Comma(int64(s.Processed)),
		"found", humanize.Comma(int64(s.Found)),
		"notFound", humanize.Comma(int64(s.NotFound)),
		"unauthorized", humanize.Comma(int64(s.Unauthorized)),
		"failed", humanize.Comma(int64(s.Failed)),
		"mobiles", humanize.Comma(int64(s.Mobiles)),
		"landlines", humanize.Comma(int64(s.Landlines)),
		"emails", humanize.Comma(int64(s.Emails)),
		"validPhones", humanize.Comma(int64(s.ValidPhones)),
		"saved", s.Saved,
		"elapsed", s.Elapsed.Round(time.Millisecond).String(),
	)
	if s.Unauthorized > 0 {
		r.log.Warn("SkipEngine rejected the API key for some lookups", "count", s.Unauthorized)
	}
}

func displayName(c transport.Contact) string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
