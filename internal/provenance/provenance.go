package provenance

import (
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/udtrain/modelio"
)

// ScriptVersion identifies this training codebase in artifact metadata.
const ScriptVersion = "udtrain-1.0"

// Run bundles a captured modelio.Provenance with a run id. The run id is
// never serialized into a model artifact, keeping the documented JSON
// schema exact, and no caller writes it to a log line.
type Run struct {
	RunID string
	modelio.Provenance
}

// Capture builds a Run for a training invocation that just completed.
// TrainingDate is stamped at capture time in UTC.
func Capture(corpusVersion, license string, seed int64, iterations int, devAccuracy float64) Run {
	return Run{
		RunID: uuid.NewString(),
		Provenance: modelio.Provenance{
			ScriptVersion: ScriptVersion,
			GitHash:       gitShortHash(),
			CorpusVersion: corpusVersion,
			TrainingDate:  time.Now().UTC().Format(time.RFC3339),
			License:       license,
			Seed:          seed,
			Iterations:    iterations,
			DevAccuracy:   devAccuracy,
		},
	}
}

// gitShortHash shells out to `git rev-parse --short HEAD`, swallowing any
// error (detached checkout, no git binary, not a repo) to "unknown" — the
// build must never fail for want of a git hash.
func gitShortHash() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}
