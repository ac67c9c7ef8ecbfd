package migrate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upnmigrate/migrate"
)

func TestApplyUpdate_WritesUPNAndBackupTogether(t *testing.T) {
	dir := &fakeDirectory{
		accounts: map[string]*fakeAccount{
			"jdoe": {
				dn:    "CN=John Doe,DC=old,DC=corp",
				upn:   "jdoe@old.corp",
				attrs: map[string]string{},
			},
		},
	}
	rw := migrate.NewRewriter(dir)

	s, err := dir.LookupAccount("jdoe", []string{"extensionAttribute2"})
	require.NoError(t, err)

	out := rw.ApplyUpdate(s, "jdoe@contoso.com", "extensionAttribute2")
	assert.Equal(t, migrate.StatusSuccess, out.Status)
	assert.Equal(t, 1, dir.modifyCalls, "both attributes must land in one modify request")
	assert.Equal(t, "jdoe@contoso.com", dir.accounts["jdoe"].upn)
	assert.Equal(t, "jdoe@old.corp", dir.accounts["jdoe"].attrs["extensionAttribute2"])
}

func TestApplyUpdate_RejectionKeepsErrorText(t *testing.T) {
	dir := &fakeDirectory{
		accounts: map[string]*fakeAccount{
			"jdoe": {dn: "CN=John Doe,DC=old,DC=corp", upn: "jdoe@old.corp", attrs: map[string]string{}},
		},
		modifyErr: errors.New("LDAP Result Code 50: insufficient access rights"),
	}
	rw := migrate.NewRewriter(dir)

	s, err := dir.LookupAccount("jdoe", nil)
	require.NoError(t, err)

	out := rw.ApplyUpdate(s, "jdoe@contoso.com", "extensionAttribute2")
	assert.Equal(t, migrate.StatusFail, out.Status)
	assert.Equal(t, "LDAP Result Code 50: insufficient access rights", out.Details)
	assert.Equal(t, "jdoe@old.corp", dir.accounts["jdoe"].upn, "record must be unmodified")
}

func TestApplyRestore_ConfirmedRenameClearsAttribute(t *testing.T) {
	dir := &fakeDirectory{
		accounts: map[string]*fakeAccount{
			"jdoe": {
				dn:    "CN=John Doe,DC=old,DC=corp",
				upn:   "jdoe@contoso.com",
				attrs: map[string]string{"extensionAttribute2": "jdoe@old.corp"},
			},
		},
	}
	rw := migrate.NewRewriter(dir)

	s, err := dir.LookupAccount("jdoe", []string{"extensionAttribute2"})
	require.NoError(t, err)

	out := rw.ApplyRestore(s, "jdoe@old.corp", "extensionAttribute2")
	assert.Equal(t, migrate.StatusSuccess, out.Status)
	assert.Equal(t, "jdoe@old.corp", dir.accounts["jdoe"].upn)
	_, present := dir.accounts["jdoe"].attrs["extensionAttribute2"]
	assert.False(t, present, "restore attribute must be cleared after a confirmed rename")
}

func TestApplyRestore_VerificationMismatchPreservesAttribute(t *testing.T) {
	dir := &fakeDirectory{
		accounts: map[string]*fakeAccount{
			"jdoe": {
				dn:    "CN=John Doe,DC=old,DC=corp",
				upn:   "jdoe@contoso.com",
				attrs: map[string]string{"extensionAttribute2": "jdoe@old.corp"},
			},
		},
		dropWrites: true, // modify reports success but the record never changes
	}
	rw := migrate.NewRewriter(dir)

	s, err := dir.LookupAccount("jdoe", []string{"extensionAttribute2"})
	require.NoError(t, err)

	out := rw.ApplyRestore(s, "jdoe@old.corp", "extensionAttribute2")
	assert.Equal(t, migrate.StatusFail, out.Status)
	assert.Equal(t, "verification mismatch", out.Details)
	assert.Equal(t, "jdoe@old.corp", dir.accounts["jdoe"].attrs["extensionAttribute2"],
		"restore attribute must survive a failed verification so the operation stays retryable")
}

func TestApplyRestore_VerificationIsCaseInsensitive(t *testing.T) {
	dir := &fakeDirectory{
		accounts: map[string]*fakeAccount{
			"jdoe": {
				dn:    "CN=John Doe,DC=old,DC=corp",
				upn:   "jdoe@contoso.com",
				attrs: map[string]string{"extensionAttribute2": "JDoe@Old.Corp"},
			},
		},
	}
	rw := migrate.NewRewriter(dir)

	s, err := dir.LookupAccount("jdoe", []string{"extensionAttribute2"})
	require.NoError(t, err)

	out := rw.ApplyRestore(s, "JDoe@Old.Corp", "extensionAttribute2")
	assert.Equal(t, migrate.StatusSuccess, out.Status)
}

func TestApplyRestore_ClearFailureAfterConfirmedRename(t *testing.T) {
	dir := &fakeDirectory{
		accounts: map[string]*fakeAccount{
			"jdoe": {
				dn:    "CN=John Doe,DC=old,DC=corp",
				upn:   "jdoe@contoso.com",
				attrs: map[string]string{"extensionAttribute2": "jdoe@old.corp"},
			},
		},
		clearErr: errors.New("LDAP Result Code 53: unwilling to perform"),
	}
	rw := migrate.NewRewriter(dir)

	s, err := dir.LookupAccount("jdoe", []string{"extensionAttribute2"})
	require.NoError(t, err)

	out := rw.ApplyRestore(s, "jdoe@old.corp", "extensionAttribute2")
	assert.Equal(t, migrate.StatusFail, out.Status)
	assert.Contains(t, out.Details, "rename succeeded, clear failed")
	assert.Equal(t, "jdoe@old.corp", dir.accounts["jdoe"].upn, "the rename itself sticks")
}
