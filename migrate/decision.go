package migrate

import (
	"errors"
	"strings"
)

// Action classifies a Decision.
type Action int

const (
	// ActionProceed means the rewrite may be applied.
	ActionProceed Action = iota
	// ActionSkip means the account is not eligible; not an error.
	ActionSkip
	// ActionError means the account's state is wrong for this run.
	ActionError
)

// Decision is the result of evaluating one account against the run
// parameters. It is built fresh for every account and never carried over
// between iterations.
type Decision struct {
	Action Action
	NewUPN string
	Reason string
}

func proceed(newUPN string) Decision {
	return Decision{Action: ActionProceed, NewUPN: newUPN}
}

func skip(reason string) Decision {
	return Decision{Action: ActionSkip, Reason: reason}
}

func reject(reason string) Decision {
	return Decision{Action: ActionError, Reason: reason}
}

// UpdateParams are the Update-mode run parameters.
type UpdateParams struct {
	// SourceAttribute names the attribute holding the desired future
	// principal name, in local-part@suffix form. Required.
	SourceAttribute string
	// BackupAttribute names the attribute the prior principal name is
	// stashed in for later restoration. Required.
	BackupAttribute string
	// Subdomain, when set, is prepended to the source value's suffix:
	// jdoe@contoso.com becomes jdoe@eu.contoso.com for Subdomain "eu".
	Subdomain string
	// ExcludedSuffixes lists suffixes whose accounts must not be touched.
	// The check runs against the account's current principal name suffix.
	ExcludedSuffixes []string
}

// Validate checks the required Update parameters.
func (p UpdateParams) Validate() error {
	if p.SourceAttribute == "" {
		return errors.New("source attribute is required")
	}
	if p.BackupAttribute == "" {
		return errors.New("backup attribute is required")
	}
	return nil
}

// RestoreParams are the Restore-mode run parameters.
type RestoreParams struct {
	// RestoreAttribute names the attribute holding the previously saved
	// principal name. Required.
	RestoreAttribute string
}

// Validate checks the required Restore parameters.
func (p RestoreParams) Validate() error {
	if p.RestoreAttribute == "" {
		return errors.New("restore attribute is required")
	}
	return nil
}

// SplitUPN splits a principal name at the first "@" into its local part and
// suffix. ok is false when the value holds no "@".
func SplitUPN(upn string) (local, suffix string, ok bool) {
	i := strings.Index(upn, "@")
	if i < 0 {
		return "", "", false
	}
	return upn[:i], upn[i+1:], true
}

// EvaluateUpdate runs the ordered Update-mode eligibility rules over one
// account snapshot; the first matching rule wins.
//
// The exclusion check deliberately inspects the CURRENT principal name's
// suffix while the catalog check inspects the candidate derived from the
// source attribute; callers relying on exclusion must populate the
// exclusion set with current suffixes, not target ones.
func EvaluateUpdate(state *AccountState, params UpdateParams, catalog SuffixCatalog) Decision {
	if len(params.ExcludedSuffixes) > 0 {
		_, currentSuffix, _ := SplitUPN(state.CurrentUPN)
		for _, excluded := range params.ExcludedSuffixes {
			if strings.EqualFold(currentSuffix, strings.TrimSpace(excluded)) {
				return reject("excluded suffix")
			}
		}
	}

	// idempotence guard: a populated backup means a prior run already
	// migrated this account, and its original value must not be lost
	if state.Attribute(params.BackupAttribute) != "" {
		return skip("already migrated")
	}

	source := state.Attribute(params.SourceAttribute)
	local, sourceSuffix, ok := SplitUPN(source)
	if !ok {
		return reject("malformed source value")
	}

	candidate := source
	candidateSuffix := sourceSuffix
	if params.Subdomain != "" {
		candidateSuffix = params.Subdomain + "." + sourceSuffix
		candidate = local + "@" + candidateSuffix
	}

	if !catalog.Contains(candidateSuffix) {
		return skip("suffix not permitted")
	}

	return proceed(candidate)
}

// EvaluateRestore decides whether a previously saved principal name can be
// put back. No catalog membership check runs here: the saved value was
// validated when it was written, and a since-removed suffix surfaces as a
// directory write failure downstream.
func EvaluateRestore(state *AccountState, params RestoreParams) Decision {
	saved := state.Attribute(params.RestoreAttribute)
	if saved == "" {
		return skip("nothing to restore")
	}
	return proceed(saved)
}
