package migrate_test

import (
	"fmt"

	"upnmigrate/migrate"
)

// fakeAccount is one in-memory directory record.
type fakeAccount struct {
	dn          string
	displayName string
	upn         string
	attrs       map[string]string
}

// fakeDirectory is an in-memory migrate.Directory.
type fakeDirectory struct {
	suffixes    []string
	suffixesErr error
	accounts    map[string]*fakeAccount

	modifyErr error
	clearErr  error
	// dropWrites makes ReplaceAttributes report success without changing
	// anything, to provoke restore verification mismatches.
	dropWrites bool

	modifyCalls int
}

func (d *fakeDirectory) UPNSuffixes() ([]string, error) {
	if d.suffixesErr != nil {
		return nil, d.suffixesErr
	}
	return d.suffixes, nil
}

func (d *fakeDirectory) LookupAccount(key string, attributes []string) (*migrate.AccountState, error) {
	acct, ok := d.accounts[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", migrate.ErrAccountNotFound, key)
	}
	attrs := make(map[string]string, len(attributes))
	for _, name := range attributes {
		attrs[name] = acct.attrs[name]
	}
	return migrate.NewAccountState(key, acct.dn, acct.displayName, acct.upn, attrs), nil
}

func (d *fakeDirectory) ReplaceAttributes(dn string, values map[string][]string) error {
	if d.modifyErr != nil {
		return d.modifyErr
	}
	d.modifyCalls++
	if d.dropWrites {
		return nil
	}
	acct := d.byDN(dn)
	if acct == nil {
		return fmt.Errorf("no such object: %s", dn)
	}
	for name, vals := range values {
		value := ""
		if len(vals) > 0 {
			value = vals[0]
		}
		if name == migrate.UPNAttribute {
			acct.upn = value
		} else {
			acct.attrs[name] = value
		}
	}
	return nil
}

func (d *fakeDirectory) ClearAttribute(dn string, name string) error {
	if d.clearErr != nil {
		return d.clearErr
	}
	acct := d.byDN(dn)
	if acct == nil {
		return fmt.Errorf("no such object: %s", dn)
	}
	delete(acct.attrs, name)
	return nil
}

func (d *fakeDirectory) byDN(dn string) *fakeAccount {
	for _, acct := range d.accounts {
		if acct.dn == dn {
			return acct
		}
	}
	return nil
}

// memoryLedger collects appended records in order.
type memoryLedger struct {
	rows []migrate.AuditRecord
	err  error
}

func (l *memoryLedger) Append(rec migrate.AuditRecord) error {
	if l.err != nil {
		return l.err
	}
	l.rows = append(l.rows, rec)
	return nil
}
