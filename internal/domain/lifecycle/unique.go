package lifecycle

import "distribuidora_xpto/internal/domain/entities"

// CheckUnique reports whether candidate collides with no active document
// other than excludeID. Pass excludeID when editing so a document may keep
// its own identifier.
//
// Matching is a case-sensitive exact comparison with no trimming or case
// folding. This is advisory only: the in-memory snapshot can be stale under
// concurrent writers, so callers must still handle an authoritative rejection
// from the store's conditional write.
func CheckUnique(candidate string, refs []entities.DocumentRef, excludeID string) bool {
	for _, ref := range refs {
		if !ref.Active {
			continue
		}
		if excludeID != "" && ref.ID == excludeID {
			continue
		}
		if ref.ID == candidate {
			return false
		}
	}
	return true
}
