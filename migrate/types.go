package migrate

import "time"

// Mode selects which of the two run variants the orchestrator executes.
// It is fixed for the whole run; Update and Restore are never mixed.
type Mode string

const (
	ModeUpdate  Mode = "Update"
	ModeRestore Mode = "Restore"
)

// Status values recorded in the audit ledger.
const (
	StatusSuccess = "Success"
	StatusSkipped = "Skipped"
	StatusFail    = "Fail"
	StatusError   = "Error"
)

// AccountState is a snapshot of one directory record at decision time.
// It is read once per account per run and never cached across accounts.
type AccountState struct {
	Key         string
	DN          string
	DisplayName string
	CurrentUPN  string

	attributes map[string]string
}

// NewAccountState builds a snapshot from the values the directory returned.
// The attrs map is keyed by the attribute names that were requested.
func NewAccountState(key, dn, displayName, currentUPN string, attrs map[string]string) *AccountState {
	return &AccountState{
		Key:         key,
		DN:          dn,
		DisplayName: displayName,
		CurrentUPN:  currentUPN,
		attributes:  attrs,
	}
}

// Attribute returns the value of a named attribute captured in the snapshot,
// or "" when the attribute was absent on the record.
func (s *AccountState) Attribute(name string) string {
	return s.attributes[name]
}

// Directory is the directory-service collaborator the core drives. The
// concrete implementation lives in the activedirectory package; tests use
// an in-memory fake.
type Directory interface {
	// UPNSuffixes returns the forest-wide set of configured principal
	// name suffixes.
	UPNSuffixes() ([]string, error)

	// LookupAccount fetches one account by key together with the named
	// attributes. A missing account is reported as ErrAccountNotFound.
	LookupAccount(key string, attributes []string) (*AccountState, error)

	// ReplaceAttributes applies a single modify request replacing every
	// named attribute with the given values.
	ReplaceAttributes(dn string, values map[string][]string) error

	// ClearAttribute removes all values of one attribute.
	ClearAttribute(dn string, name string) error
}

// AuditRecord is one immutable row in the run's audit trail, appended once
// per processed account.
type AuditRecord struct {
	Timestamp   time.Time
	Mode        Mode
	DisplayName string
	AccountKey  string
	OldUPN      string
	NewUPN      string
	Status      string
	Details     string
}

// Ledger receives one audit record per processed account, in processing
// order. An append failure halts the run.
type Ledger interface {
	Append(rec AuditRecord) error
}
