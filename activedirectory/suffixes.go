package activedirectory

import (
	"fmt"
	"strings"

	"github.com/go-ldap/ldap/v3"
)

// UPNSuffixes fetches the forest-wide configured principal name suffixes
// from the partitions container, plus the forest root domain name itself
// (always a valid suffix even when uPNSuffixes is empty).
func (ad *ActiveDirectoryInstance) UPNSuffixes() ([]string, error) {
	partitionsDN := "CN=Partitions,CN=Configuration," + ad.BaseDn

	searchRequest := ldap.NewSearchRequest(
		partitionsDN,
		ldap.ScopeBaseObject,
		ldap.NeverDerefAliases,
		0, 0, false,
		"(objectClass=*)",
		[]string{"uPNSuffixes"},
		nil,
	)

	searchResults, err := ad.ldapConnection.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch uPNSuffixes from %s: %w", partitionsDN, err)
	}
	if len(searchResults.Entries) == 0 {
		return nil, fmt.Errorf("partitions container not found at %s", partitionsDN)
	}

	suffixes := searchResults.Entries[0].GetAttributeValues("uPNSuffixes")
	if root := dnToDomain(ad.BaseDn); root != "" {
		suffixes = append(suffixes, root)
	}

	return suffixes, nil
}

// dnToDomain converts a base DN like "DC=corp,DC=example,DC=com" into its
// DNS name "corp.example.com". Non-DC components are ignored.
func dnToDomain(baseDn string) string {
	var labels []string
	for _, part := range strings.Split(baseDn, ",") {
		part = strings.TrimSpace(part)
		if len(part) > 3 && strings.EqualFold(part[:3], "DC=") {
			labels = append(labels, part[3:])
		}
	}
	return strings.Join(labels, ".")
}
