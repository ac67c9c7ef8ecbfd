package activedirectory

import (
	"fmt"

	"github.com/go-ldap/ldap/v3"

	"upnmigrate/activedirectory/ldaphelpers"
	"upnmigrate/migrate"
)

// attributes fetched for every account lookup regardless of run parameters
var baseAttributes = []string{"sAMAccountName", "displayName", "userPrincipalName"}

// LookupAccount fetches one user account by sAMAccountName along with the
// named attributes.
func (ad *ActiveDirectoryInstance) LookupAccount(key string, attributes []string) (*migrate.AccountState, error) {
	filter := ldaphelpers.And(
		ldaphelpers.Eq("objectClass", "user"),
		ldaphelpers.Eq("sAMAccountName", ldap.EscapeFilter(key)),
	).String()

	searchRequest := ldap.NewSearchRequest(
		ad.BaseDn,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0, 0, false,
		filter,
		append(append([]string{}, baseAttributes...), attributes...),
		nil,
	)

	searchResults, err := ad.ldapConnection.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("LDAP search for %q failed: %w", key, err)
	}
	if len(searchResults.Entries) == 0 {
		return nil, fmt.Errorf("%w: %s", migrate.ErrAccountNotFound, key)
	}

	entry := searchResults.Entries[0]
	attrs := make(map[string]string, len(attributes))
	for _, name := range attributes {
		attrs[name] = entry.GetAttributeValue(name)
	}

	return migrate.NewAccountState(
		key,
		entry.DN,
		entry.GetAttributeValue("displayName"),
		entry.GetAttributeValue("userPrincipalName"),
		attrs,
	), nil
}

// ReplaceAttributes applies one modify request replacing every named
// attribute on the record with the given values.
func (ad *ActiveDirectoryInstance) ReplaceAttributes(dn string, values map[string][]string) error {
	modifyRequest := ldap.NewModifyRequest(dn, nil)
	for name, vals := range values {
		modifyRequest.Replace(name, vals)
	}
	if err := ad.ldapConnection.Modify(modifyRequest); err != nil {
		return fmt.Errorf("LDAP modify of %s failed: %w", dn, err)
	}
	return nil
}

// ClearAttribute removes all values of one attribute from the record.
func (ad *ActiveDirectoryInstance) ClearAttribute(dn string, name string) error {
	modifyRequest := ldap.NewModifyRequest(dn, nil)
	modifyRequest.Delete(name, []string{})
	if err := ad.ldapConnection.Modify(modifyRequest); err != nil {
		return fmt.Errorf("LDAP clear of %s on %s failed: %w", name, dn, err)
	}
	return nil
}
