// Package runner executes the ort CLI and locates the result files it writes.
package runner

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/google/uuid"

	"github.com/depscope/depscope/pkg/errors"
)

const (
	// DefaultBinary is the default ort binary name.
	DefaultBinary = "ort"

	// DefaultTimeout is the default analysis timeout.
	DefaultTimeout = 30 * time.Minute

	// AnalyzerResultFile is the file name the analyzer writes.
	AnalyzerResultFile = "analyzer-result.json"

	// AdvisorResultFile is the file name the advisor writes.
	AdvisorResultFile = "advise-result.json"
)

// Runner invokes the ort CLI.
type Runner struct {
	// Binary is the path to the ort binary (default: "ort").
	Binary string

	// Timeout bounds one invocation; on expiry the process is killed.
	Timeout time.Duration

	// OutputDir is where ort writes its result files.
	OutputDir string

	// ConfigFile is an optional ort configuration file passed through.
	ConfigFile string

	// Advisors selects the vulnerability providers for Advise
	// (default: OSV).
	Advisors []string

	// ExtraArgs are appended verbatim to every invocation.
	ExtraArgs []string

	version string
}

// Run records one completed invocation.
type Run struct {
	ID         string
	Args       []string
	StartedAt  time.Time
	FinishedAt time.Time
	ExitCode   int
	ResultFile string
	Stderr     string

	// Recovered is set when the process exited non-zero but the expected
	// result file was produced anyway, which is treated as success.
	Recovered bool
}

// Duration returns the wall-clock duration of the run.
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// New creates a runner with default settings writing into outputDir.
func New(outputDir string) *Runner {
	return &Runner{
		Binary:    DefaultBinary,
		Timeout:   DefaultTimeout,
		OutputDir: outputDir,
		Advisors:  []string{"OSV"},
	}
}

// Name returns the tool name.
func (r *Runner) Name() string {
	return "ort"
}

// IsInstalled checks whether the ort binary is available and probes its
// version.
func (r *Runner) IsInstalled(ctx context.Context) (bool, string, error) {
	binary := r.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	cmd := exec.CommandContext(ctx, binary, "--version")
	output, err := cmd.Output()
	if err != nil {
		return false, "", errors.E("runner.IsInstalled", errors.KindNotFound, binary+" not found", err)
	}
	r.version = parseVersion(string(output))
	return true, r.version, nil
}

// Version returns the probed tool version, if IsInstalled has run.
func (r *Runner) Version() string {
	return r.version
}

// Analyze runs "ort analyze" against inputDir and returns the run with the
// path to the analyzer result file.
func (r *Runner) Analyze(ctx context.Context, inputDir string) (*Run, error) {
	args := []string{"analyze", "-i", inputDir, "-o", r.OutputDir, "-f", "JSON"}
	return r.run(ctx, "runner.Analyze", args, filepath.Join(r.OutputDir, AnalyzerResultFile))
}

// Advise runs "ort advise" against an analyzer result file and returns the
// run with the path to the advisor result file.
func (r *Runner) Advise(ctx context.Context, analyzerResult string) (*Run, error) {
	args := []string{"advise", "-i", analyzerResult, "-o", r.OutputDir, "-f", "JSON"}
	if len(r.Advisors) > 0 {
		args = append(args, "-a", strings.Join(r.Advisors, ","))
	}
	return r.run(ctx, "runner.Advise", args, filepath.Join(r.OutputDir, AdvisorResultFile))
}

func (r *Runner) run(ctx context.Context, op string, args []string, resultFile string) (*Run, error) {
	log := clog.FromContext(ctx)

	binary := r.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if r.ConfigFile != "" {
		args = append(args, "--config", r.ConfigFile)
	}
	args = append(args, r.ExtraArgs...)

	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return nil, errors.E(op, errors.KindExec, "cannot create output directory", err)
	}

	// ort refuses to overwrite an existing result file.
	if err := removeIfExists(resultFile); err != nil {
		return nil, errors.E(op, errors.KindExec, "cannot remove stale result file", err)
	}

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	run := &Run{
		ID:         uuid.NewString(),
		Args:       args,
		StartedAt:  time.Now(),
		ResultFile: resultFile,
	}

	log.Infof("running: %s %s", binary, strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(execCtx, binary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	run.FinishedAt = time.Now()
	run.Stderr = stderr.String()
	run.ExitCode = -1
	if cmd.ProcessState != nil {
		run.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		// The analyzer exits non-zero when it recorded issues but may
		// still have produced a usable result file.
		if _, statErr := os.Stat(resultFile); statErr == nil {
			run.Recovered = true
			log.Warnf("ort exited %d but wrote %s, treating as success", run.ExitCode, resultFile)
			return run, nil
		}
		if execCtx.Err() == context.DeadlineExceeded {
			return run, errors.E(op, errors.KindTimeout, "ort timed out", err)
		}
		return run, errors.E(op, errors.KindExec, "ort failed: "+firstLine(run.Stderr), err)
	}

	if _, statErr := os.Stat(resultFile); statErr != nil {
		return run, errors.E(op, errors.KindExec, "ort succeeded but wrote no result file", statErr)
	}

	log.Infof("completed in %s (exit code %d)", run.Duration().Round(time.Millisecond), run.ExitCode)
	return run, nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// parseVersion extracts a version from ort --version output.
func parseVersion(output string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Both "1.5.0" and "Release version 1.5.0" forms occur.
		fields := strings.Fields(line)
		return fields[len(fields)-1]
	}
	return ""
}
