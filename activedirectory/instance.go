package activedirectory

import (
	"fmt"

	"github.com/go-ldap/ldap/v3"
)

// ActiveDirectoryInstance wraps one bound LDAP connection to a domain
// controller and implements the migrate.Directory collaborator.
type ActiveDirectoryInstance struct {
	BaseDn               string
	DomainControllerFQDN string
	ldapConnection       *ldap.Conn
}

func NewActiveDirectoryInstance(baseDn string, domainControllerFQDN string) *ActiveDirectoryInstance {
	return &ActiveDirectoryInstance{
		BaseDn:               baseDn,
		DomainControllerFQDN: domainControllerFQDN,
	}
}

// Connect to the Active Directory Domain Controller and bind
func (ad *ActiveDirectoryInstance) Connect(username, password string) error {
	var err error

	bindString := fmt.Sprintf("ldap://%s:389", ad.DomainControllerFQDN)
	ad.ldapConnection, err = ldap.DialURL(bindString)
	if err != nil {
		return fmt.Errorf("failed to connect to LDAP server: %w", err)
	}

	// TODO: LDAPS, IWA/GSSAPI, etc
	if err = ad.ldapConnection.Bind(username, password); err != nil {
		ad.ldapConnection.Close()
		ad.ldapConnection = nil
		return fmt.Errorf("failed to bind to LDAP server: %w", err)
	}

	res, err := ad.ldapConnection.WhoAmI(nil)
	if err != nil {
		return fmt.Errorf("failed to call WhoAmI(): %w", err)
	}
	fmt.Printf("Authenticated to %s as %s\n", bindString, res.AuthzID)

	return nil
}

// Close the underlying LDAP connection
func (ad *ActiveDirectoryInstance) Close() {
	if ad.ldapConnection != nil {
		ad.ldapConnection.Close()
		ad.ldapConnection = nil
	}
}
