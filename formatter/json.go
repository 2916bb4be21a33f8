package formatter

import (
	"compress/gzip"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/interscity/matsim-to-htc/internal"
)

// Marshal serializes v, with 4-space indentation when pretty is set.
func Marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "    ")
	}
	return json.Marshal(v)
}

// Save writes v as JSON to basePath plus the proper extension (.json, or
// .json.gz when compress is set) and returns the final path.
func Save(v any, basePath string, pretty, compress bool) (string, error) {
	data, err := Marshal(v, pretty)
	if err != nil {
		return "", errors.Wrapf(err, "marshal %s", basePath)
	}

	finalPath := basePath + ".json"
	if compress {
		finalPath += ".gz"
	}
	internal.Debugf("saving file to %s", finalPath)

	f, err := os.Create(finalPath)
	if err != nil {
		return "", errors.Wrapf(err, "create %s", finalPath)
	}
	defer f.Close()

	if compress {
		zw := gzip.NewWriter(f)
		if _, err := zw.Write(data); err != nil {
			return "", errors.Wrapf(err, "write %s", finalPath)
		}
		if err := zw.Close(); err != nil {
			return "", errors.Wrapf(err, "write %s", finalPath)
		}
	} else if _, err := f.Write(data); err != nil {
		return "", errors.Wrapf(err, "write %s", finalPath)
	}

	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "write %s", finalPath)
	}
	return finalPath, nil
}
