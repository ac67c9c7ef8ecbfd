package migrate

import "strings"

// UPNAttribute is the directory attribute holding the principal name.
const UPNAttribute = "userPrincipalName"

// Outcome is the result of applying one decided change to the directory.
type Outcome struct {
	Status  string
	Details string
}

// Rewriter applies decided principal-name changes to directory records and
// verifies the applied result. Each account's write is independent; a
// failure on one account never blocks or rolls back another.
type Rewriter struct {
	dir Directory
}

// NewRewriter returns a Rewriter over the given directory.
func NewRewriter(dir Directory) *Rewriter {
	return &Rewriter{dir: dir}
}

// ApplyUpdate sets the principal name to newUPN and, in the same modify
// request, stashes the prior value in the backup attribute. A directory
// rejection is reported as Fail with the underlying error text verbatim.
func (rw *Rewriter) ApplyUpdate(state *AccountState, newUPN, backupAttribute string) Outcome {
	err := rw.dir.ReplaceAttributes(state.DN, map[string][]string{
		UPNAttribute:    {newUPN},
		backupAttribute: {state.CurrentUPN},
	})
	if err != nil {
		return Outcome{Status: StatusFail, Details: err.Error()}
	}
	return Outcome{Status: StatusSuccess, Details: "principal name updated"}
}

// ApplyRestore sets the principal name to newUPN, re-reads the record to
// confirm the rename actually landed, and only then clears the restore
// attribute. On a verification mismatch the restore attribute is left
// untouched so the operation stays retryable.
func (rw *Rewriter) ApplyRestore(state *AccountState, newUPN, restoreAttribute string) Outcome {
	err := rw.dir.ReplaceAttributes(state.DN, map[string][]string{
		UPNAttribute: {newUPN},
	})
	if err != nil {
		return Outcome{Status: StatusFail, Details: err.Error()}
	}

	verify, err := rw.dir.LookupAccount(state.Key, []string{restoreAttribute})
	if err != nil {
		return Outcome{Status: StatusFail, Details: "verification mismatch: " + err.Error()}
	}
	if !strings.EqualFold(verify.CurrentUPN, newUPN) {
		return Outcome{Status: StatusFail, Details: "verification mismatch"}
	}

	if err := rw.dir.ClearAttribute(state.DN, restoreAttribute); err != nil {
		return Outcome{Status: StatusFail, Details: "rename succeeded, clear failed: " + err.Error()}
	}
	return Outcome{Status: StatusSuccess, Details: "principal name restored"}
}
