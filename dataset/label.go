package dataset

import (
	"path/filepath"
	"strings"
)

// Names for the flag segments used by the experiment harness when it writes
// result files, e.g. coverage_true_inputshare_false_resultshare_true.txt.
var segmentNames = map[string]string{
	"coverage":    "coverage",
	"inputshare":  "shared inputs",
	"resultshare": "shared results",
	"collab":      "collaborative",
}

// LabelFromPath turns a result file name following the harness convention
// into a readable legend label. Files outside the convention keep their
// base name without the extension.
func LabelFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	segments := strings.Split(base, "_")
	if len(segments) < 2 || len(segments)%2 != 0 {
		return base
	}

	var parts []string
	for i := 0; i < len(segments); i += 2 {
		name, known := segmentNames[segments[i]]
		state, ok := boolWord(segments[i+1])
		if !known || !ok {
			return base
		}
		parts = append(parts, name+" "+state)
	}
	return strings.Join(parts, ", ")
}

func boolWord(s string) (string, bool) {
	switch s {
	case "true":
		return "on", true
	case "false":
		return "off", true
	}
	return "", false
}
