package converter

import (
	"github.com/pkg/errors"

	"github.com/interscity/matsim-to-htc/htc"
)

// Assignment pairs an actor id with the resource id of the shard it lives
// in. The assigner works over these minimal pairs regardless of entity
// kind and never mutates actor records.
type Assignment struct {
	ActorID    string
	ResourceID string
}

// AssignResourceIDs walks actor ids in input order and groups at most
// maxPerFile consecutive ids under the same 1-based shard: shard k holds
// positions [(k-1)*maxPerFile, k*maxPerFile). It returns one assignment
// per id plus a lookup map keyed by the original source id recovered from
// the actor id.
//
// maxPerFile must be positive; anything else is a configuration error.
func AssignResourceIDs(actorIDs []string, maxPerFile int, resourcePrefix string) ([]Assignment, map[string]string, error) {
	if maxPerFile <= 0 {
		return nil, nil, errors.Errorf("maxPerFile must be positive, got %d", maxPerFile)
	}

	assignments := make([]Assignment, 0, len(actorIDs))
	byOriginalID := make(map[string]string, len(actorIDs))

	itemCount := 0
	fileIndex := 1
	for _, actorID := range actorIDs {
		if itemCount >= maxPerFile {
			fileIndex++
			itemCount = 0
		}
		resourceID := htc.ResourceID(resourcePrefix, fileIndex)
		assignments = append(assignments, Assignment{ActorID: actorID, ResourceID: resourceID})
		// Duplicate original ids should not occur; the last one wins.
		byOriginalID[htc.OriginalID(actorID)] = resourceID
		itemCount++
	}

	return assignments, byOriginalID, nil
}
