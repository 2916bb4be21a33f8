// Package splitter groups sharded actors by resource id and writes one
// JSON array per shard.
package splitter

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/interscity/matsim-to-htc/converter"
	"github.com/interscity/matsim-to-htc/formatter"
	"github.com/interscity/matsim-to-htc/htc"
)

// ShardFile describes one written shard: the resource it hosts and its
// filename relative to the output directory.
type ShardFile struct {
	ResourceID string
	Filename   string
}

// SplitAndSave groups actors by their assigned resource id and writes each
// group as <baseFilename>_<shardIndex>.json (or .json.gz). The returned
// manifest is ordered by ascending numeric shard index, which can differ
// from lexical order once indexes reach two digits. Actors without a
// resource id are skipped with a warning. A failed shard write is logged
// and excluded; remaining shards are still written.
func SplitAndSave[A htc.Actor](actors []A, baseFilename, outDir string, pretty, compress bool) []ShardFile {
	log.Printf("starting split and save for %s", baseFilename)

	warns := converter.NewWarningAggregator()
	grouped := make(map[string][]A)
	for _, actor := range actors {
		if actor.Resource() == "" {
			warns.Add(converter.WarningActorNoResource, actor.ActorID())
			continue
		}
		grouped[actor.Resource()] = append(grouped[actor.Resource()], actor)
	}
	warns.LogAll(baseFilename)

	resourceIDs := make([]string, 0, len(grouped))
	for id := range grouped {
		resourceIDs = append(resourceIDs, id)
	}
	sort.Slice(resourceIDs, func(i, j int) bool {
		return shardIndex(resourceIDs[i]) < shardIndex(resourceIDs[j])
	})

	var files []ShardFile
	for _, resourceID := range resourceIDs {
		name := fmt.Sprintf("%s_%d", baseFilename, shardIndex(resourceID))
		finalPath, err := formatter.Save(grouped[resourceID], filepath.Join(outDir, name), pretty, compress)
		if err != nil {
			log.Printf("failed to save shard %s: %v", resourceID, err)
			continue
		}
		files = append(files, ShardFile{ResourceID: resourceID, Filename: filepath.Base(finalPath)})
	}
	return files
}

// shardIndex extracts the numeric trailing index of a resource id.
func shardIndex(resourceID string) int {
	n, err := strconv.Atoi(htc.OriginalID(resourceID))
	if err != nil {
		return 0
	}
	return n
}
