package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/hints"
	"github.com/alnah/go-md2tex/internal/process"
)

// latexEngines can compile the generated documents.
var latexEngines = []string{"pdflatex", "xelatex", "lualatex"}

// buildTools drive repeated engine runs; optional.
var buildTools = []string{"latexmk"}

// versionTimeout bounds each "<tool> --version" call.
const versionTimeout = 5 * time.Second

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// Doctor statuses, from best to worst.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorReport is the outcome of all checks; it is also the --json output.
type doctorReport struct {
	Status    string     `json:"status"`
	Platform  string     `json:"platform"`
	Container string     `json:"container,omitempty"` // signal that detected a container
	CI        bool       `json:"ci"`
	Tools     []toolInfo `json:"tools"`
	Templates []string   `json:"templates"`
	Writable  bool       `json:"working_dir_writable"`
	Warnings  []string   `json:"warnings,omitempty"`
	Errors    []string   `json:"errors,omitempty"`
}

// toolInfo holds detection results for one executable.
type toolInfo struct {
	Name     string `json:"name"`
	Found    bool   `json:"found"`
	Optional bool   `json:"optional,omitempty"`
	Path     string `json:"path,omitempty"`
	Version  string `json:"version,omitempty"`
}

func (r *doctorReport) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *doctorReport) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// runDoctorCmd executes the doctor command and returns an exit code:
// ExitGeneral when any check failed, ExitSuccess otherwise.
func runDoctorCmd(ctx context.Context, args []string, env *Environment) int {
	asJSON := false
	for _, arg := range args {
		switch arg {
		case "--json":
			asJSON = true
		case "-h", "--help":
			printDoctorUsage(env.Stdout)
			return ExitSuccess
		}
	}

	report := runDoctor(ctx)

	if asJSON {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
	} else {
		printDoctorReport(env.Stdout, report)
	}

	if report.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all checks.
func runDoctor(ctx context.Context) *doctorReport {
	r := &doctorReport{Platform: runtime.GOOS + "/" + runtime.GOARCH}

	checkTools(ctx, r)
	checkTemplates(r)
	checkWorkingDir(r)
	r.Container = containerSignal()
	r.CI = inCI()

	switch {
	case len(r.Errors) > 0:
		r.Status = statusErrors
	case len(r.Warnings) > 0:
		r.Status = statusWarnings
	default:
		r.Status = statusReady
	}
	return r
}

// checkTools looks up LaTeX engines and build tools on PATH.
// At least one engine is required to compile the output.
func checkTools(ctx context.Context, r *doctorReport) {
	engines := 0
	for _, name := range latexEngines {
		info := lookupTool(ctx, name)
		if info.Found {
			engines++
		}
		r.Tools = append(r.Tools, info)
	}
	if engines == 0 {
		r.fail("No LaTeX engine found (%s)%s", strings.Join(latexEngines, ", "), hints.ForLaTeXEngine())
	}

	for _, name := range buildTools {
		info := lookupTool(ctx, name)
		info.Optional = true
		if !info.Found {
			r.warn("%s not found; run the engine twice for references", name)
		}
		r.Tools = append(r.Tools, info)
	}
}

// lookupTool locates name and reads the first line of its --version output.
func lookupTool(ctx context.Context, name string) toolInfo {
	info := toolInfo{Name: name}

	path, err := lookPath(name)
	if err != nil {
		return info
	}
	info.Found = true
	info.Path = path

	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	out, err := process.Command(ctx, path, "--version").Output()
	if err == nil {
		first, _, _ := strings.Cut(string(out), "\n")
		info.Version = strings.TrimSpace(first)
	}
	return info
}

// checkTemplates builds a converter for every embedded template, which
// loads and parses it.
func checkTemplates(r *doctorReport) {
	for _, name := range md2tex.TemplateNames() {
		if _, err := md2tex.NewConverter(md2tex.WithTemplate(name)); err != nil {
			r.fail("template %s: %v", name, err)
			continue
		}
		r.Templates = append(r.Templates, name)
	}
}

// checkWorkingDir reports whether .tex files can be written beside inputs
// in the current directory, the default output location.
func checkWorkingDir(r *doctorReport) {
	f, err := os.CreateTemp(".", ".md2tex-doctor-*")
	if err != nil {
		r.warn("current directory not writable; use -o DIR")
		return
	}
	_ = f.Close()
	_ = os.Remove(f.Name())
	r.Writable = true
}

// containerSignal returns the first container indicator found, or "".
func containerSignal() string {
	if os.Getenv("MD2TEX_CONTAINER") == "1" {
		return "MD2TEX_CONTAINER=1"
	}
	if hints.IsInContainer() {
		return "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return "KUBERNETES_SERVICE_HOST"
	}
	return ""
}

// ciVars are set by common CI providers.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

func inCI() bool {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// printDoctorReport writes the human-readable report.
func printDoctorReport(w io.Writer, r *doctorReport) {
	fmt.Fprintf(w, "md2tex doctor (%s)\n\n", r.Platform)

	fmt.Fprintln(w, "LaTeX")
	for _, t := range r.Tools {
		switch {
		case !t.Found:
			fmt.Fprintf(w, "  [--] %s: not found\n", t.Name)
		case t.Version != "":
			fmt.Fprintf(w, "  [OK] %s: %s (%s)\n", t.Name, t.Path, t.Version)
		default:
			fmt.Fprintf(w, "  [OK] %s: %s\n", t.Name, t.Path)
		}
	}

	fmt.Fprintln(w, "\nConverter")
	fmt.Fprintf(w, "  [OK] templates: %s\n", strings.Join(r.Templates, ", "))
	if r.Writable {
		fmt.Fprintln(w, "  [OK] current directory: writable")
	}
	if r.Container != "" {
		fmt.Fprintf(w, "  [OK] container: %s\n", r.Container)
	}
	if r.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}

	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "\n  [WARN] %s", warn)
	}
	for _, e := range r.Errors {
		fmt.Fprintf(w, "\n  [ERROR] %s", e)
	}
	if len(r.Warnings)+len(r.Errors) > 0 {
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "\nStatus: Ready to compile")
	case statusWarnings:
		fmt.Fprintln(w, "\nStatus: Ready with warnings")
	default:
		fmt.Fprintln(w, "\nStatus: Not ready (see errors above)")
	}
}
