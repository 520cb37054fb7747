package service

import "github.com/google/uuid"

// IsOwner reports whether subjectID may mutate a resource owned by ownerID.
// Every ownership check in the request path goes through this predicate.
func IsOwner(subjectID, ownerID uuid.UUID) bool {
	return subjectID == ownerID
}
