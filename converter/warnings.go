package converter

import (
	"fmt"
	"log"
	"strings"
)

// Warning type constants
const (
	WarningMissingFromNode    = "missing_from_node"
	WarningMissingToNode      = "missing_to_node"
	WarningMissingOriginNode  = "missing_origin_node"
	WarningMissingDestNode    = "missing_destination_node"
	WarningMissingOriginLink  = "missing_origin_link"
	WarningInvalidLength      = "invalid_length"
	WarningInvalidFreeSpeed   = "invalid_freespeed"
	WarningInvalidCapacity    = "invalid_capacity"
	WarningInvalidPermLanes   = "invalid_permlanes"
	WarningInvalidStartTime   = "invalid_start_time"
	WarningActorNoResource    = "actor_without_resource_id"
	WarningInvalidCoordinates = "invalid_coordinates"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects per-record anomalies during conversion and
// outputs consolidated summaries instead of one log line per record.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns how many occurrences of a warning type were recorded.
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(entityKind string) {
	if len(w.warnings) == 0 {
		return
	}

	for warningType, info := range w.warnings {
		log.Printf("%s", w.formatWarningMessage(warningType, entityKind, info))
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, entityKind string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningMissingFromNode:
		description = "origin nodes not found or without resource id"
		action = "Emitting link with MISSING_NODE placeholder and no from_node dependency"
	case WarningMissingToNode:
		description = "destination nodes not found or without resource id"
		action = "Emitting link with MISSING_NODE placeholder and no to_node dependency"
	case WarningMissingOriginNode:
		description = "trip origin nodes not found or without resource id"
		action = "Emitting car with MISSING_NODE placeholder and no from_node dependency"
	case WarningMissingDestNode:
		description = "trip destination nodes not found or without resource id"
		action = "Emitting car with MISSING_NODE placeholder and no to_node dependency"
	case WarningMissingOriginLink:
		description = "trip origin links not found"
		action = "Emitting car with MISSING_LINK placeholder in linkOrigin"
	case WarningInvalidLength:
		description = "links with unparseable length"
		action = "Using 0.0"
	case WarningInvalidFreeSpeed:
		description = "links with unparseable freespeed"
		action = "Using 0.0"
	case WarningInvalidCapacity:
		description = "links with unparseable capacity"
		action = "Using 0.0"
	case WarningInvalidPermLanes:
		description = "links with unparseable permlanes"
		action = "Using 1.0"
	case WarningInvalidStartTime:
		description = "trips with unparseable start time"
		action = "Using tick 0"
	case WarningActorNoResource:
		description = "actors without an assigned resource id"
		action = "Skipping actor at write time"
	case WarningInvalidCoordinates:
		description = "nodes with non-numeric coordinates"
		action = "Skipping node in GeoJSON preview"
	default:
		description = "unknown issue"
		action = "Emitting output with fallback behavior"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("%s conversion has %s (%d occurrences). %s. Examples: %s",
		entityKind, description, info.count, action, examplesStr)
}
