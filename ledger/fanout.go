package ledger

import (
	"log"

	"upnmigrate/migrate"
)

// Fanout writes each audit record to the primary ledger and best-effort
// mirrors. A primary failure halts the run; a mirror failure is logged and
// the run continues, since the primary row was already committed.
type Fanout struct {
	Primary migrate.Ledger
	Mirrors []migrate.Ledger
}

// Append writes the record to the primary first, then to each mirror.
func (f Fanout) Append(rec migrate.AuditRecord) error {
	if err := f.Primary.Append(rec); err != nil {
		return err
	}
	for _, m := range f.Mirrors {
		if err := m.Append(rec); err != nil {
			log.Printf("audit mirror append failed for %s: %v", rec.AccountKey, err)
		}
	}
	return nil
}
