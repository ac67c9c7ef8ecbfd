package migrate

import (
	"errors"
	"fmt"
	"time"
)

// Summary counts the outcomes of a completed run.
type Summary struct {
	Processed int
	Success   int
	Skipped   int
	Failed    int
	Errors    int
}

func (s *Summary) count(status string) {
	s.Processed++
	switch status {
	case StatusSuccess:
		s.Success++
	case StatusSkipped:
		s.Skipped++
	case StatusFail:
		s.Failed++
	case StatusError:
		s.Errors++
	}
}

// Runner drives the batch sequentially through lookup, eligibility
// evaluation, rewrite and the audit ledger: one account is fully decided,
// mutated and logged before the next begins.
type Runner struct {
	dir    Directory
	ledger Ledger
	now    func() time.Time
}

// NewRunner wires a Runner over the directory collaborator and ledger.
func NewRunner(dir Directory, ledger Ledger) *Runner {
	return &Runner{dir: dir, ledger: ledger, now: time.Now}
}

// RunUpdate processes the batch in Update mode. The forest suffix catalog
// is loaded first; if it cannot be read the run aborts before touching any
// account, since every eligibility decision depends on it. Exactly one
// audit record is appended per batch entry, in input order; only a ledger
// append failure halts a run mid-batch.
func (r *Runner) RunUpdate(keys []string, params UpdateParams) (Summary, error) {
	var sum Summary

	if err := params.Validate(); err != nil {
		return sum, err
	}

	suffixes, err := r.dir.UPNSuffixes()
	if err != nil {
		return sum, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	catalog := NewSuffixCatalog(suffixes)

	rw := NewRewriter(r.dir)
	attrs := []string{params.SourceAttribute, params.BackupAttribute}

	for _, key := range keys {
		rec := r.processOne(key, attrs, ModeUpdate, func(state *AccountState) (Decision, func(Decision) Outcome) {
			return EvaluateUpdate(state, params, catalog), func(d Decision) Outcome {
				return rw.ApplyUpdate(state, d.NewUPN, params.BackupAttribute)
			}
		})
		if err := r.ledger.Append(rec); err != nil {
			return sum, fmt.Errorf("audit ledger append: %w", err)
		}
		sum.count(rec.Status)
	}

	return sum, nil
}

// RunRestore processes the batch in Restore mode, putting previously saved
// principal names back and clearing the restore attribute on confirmed
// renames.
func (r *Runner) RunRestore(keys []string, params RestoreParams) (Summary, error) {
	var sum Summary

	if err := params.Validate(); err != nil {
		return sum, err
	}

	rw := NewRewriter(r.dir)
	attrs := []string{params.RestoreAttribute}

	for _, key := range keys {
		rec := r.processOne(key, attrs, ModeRestore, func(state *AccountState) (Decision, func(Decision) Outcome) {
			return EvaluateRestore(state, params), func(d Decision) Outcome {
				return rw.ApplyRestore(state, d.NewUPN, params.RestoreAttribute)
			}
		})
		if err := r.ledger.Append(rec); err != nil {
			return sum, fmt.Errorf("audit ledger append: %w", err)
		}
		sum.count(rec.Status)
	}

	return sum, nil
}

// processOne handles a single batch entry and always produces exactly one
// audit record; per-account conditions never escape into the run loop.
func (r *Runner) processOne(key string, attrs []string, mode Mode, decide func(*AccountState) (Decision, func(Decision) Outcome)) AuditRecord {
	rec := AuditRecord{
		Timestamp:  r.now(),
		Mode:       mode,
		AccountKey: key,
	}

	state, err := r.dir.LookupAccount(key, attrs)
	if err != nil {
		rec.Status = StatusError
		if errors.Is(err, ErrAccountNotFound) {
			rec.Details = "account not found"
		} else {
			rec.Details = err.Error()
		}
		return rec
	}

	rec.DisplayName = state.DisplayName
	rec.OldUPN = state.CurrentUPN

	decision, apply := decide(state)
	switch decision.Action {
	case ActionSkip:
		rec.Status = StatusSkipped
		rec.Details = decision.Reason
	case ActionError:
		rec.Status = StatusError
		rec.Details = decision.Reason
	case ActionProceed:
		rec.NewUPN = decision.NewUPN
		outcome := apply(decision)
		rec.Status = outcome.Status
		rec.Details = outcome.Details
	}

	return rec
}
