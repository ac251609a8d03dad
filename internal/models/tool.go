package models

// InvocationKind selects how a tool is driven while being measured.
type InvocationKind string

const (
	// KindSubprocess pipes the document to a command's stdin and discards stdout.
	KindSubprocess InvocationKind = "subprocess"
	// KindInProcess calls a converter linked into this binary.
	KindInProcess InvocationKind = "in_process"
	// KindMultiStepDir drives a project-oriented builder against a scratch
	// source tree, recreating the output directory before every conversion.
	KindMultiStepDir InvocationKind = "multi_step_dir"
	// KindFileBased hands the tool a file path instead of stdin.
	KindFileBased InvocationKind = "file_based"
)

// InputKind selects which rendition of the sample document a tool receives.
type InputKind string

const (
	InputFull InputKind = "full"
	// InputSimplified strips constructs some converters cannot parse.
	InputSimplified InputKind = "simplified"
	// InputMarkdown is the Markdown rendition used by the in-process converter.
	InputMarkdown InputKind = "markdown"
)

// Detection describes how to probe the environment for one tool. Exactly one
// strategy applies per tool; they are checked in the order Builtin, BuildPaths,
// PythonModule, PathBinary (optionally combined with ManifestPath).
type Detection struct {
	// Builtin marks converters compiled into rstbench itself.
	Builtin bool
	// BuildPaths are project-root-relative binaries tried in order. A match
	// after the first entry is reported as a debug build.
	BuildPaths []string
	// PythonModule is import-probed with the resolved interpreter.
	PythonModule string
	// PathBinary is resolved via PATH lookup.
	PathBinary string
	// ManifestPath is a vendor-dir-relative file that must also exist
	// (e.g. composer's autoloader) before the tool counts as available.
	ManifestPath string
}

// Tool describes one converter under comparison.
type Tool struct {
	Name     string
	Language string
	Kind     InvocationKind
	Input    InputKind
	Detect   Detection
	// Args are fixed arguments placed after the resolved executable. File
	// based tools get the input path appended after these.
	Args []string
	// InstallHint is shown next to tools that were not found.
	InstallHint string
	// Footnote is printed under the results table when the tool ran on a
	// reduced input.
	Footnote string
}

// PrimaryToolName is the baseline every other tool is compared against.
const PrimaryToolName = "rst2html-fast"

// BuiltinTools returns the compiled-in converter descriptors in display
// order. The primary tool is always first.
func BuiltinTools() []Tool {
	return []Tool{
		{
			Name:     PrimaryToolName,
			Language: "Rust",
			Kind:     KindSubprocess,
			Input:    InputFull,
			Detect: Detection{
				BuildPaths: []string{
					"target/release/rst2html",
					"target/debug/rst2html",
				},
			},
			InstallHint: "cargo build --release",
		},
		{
			Name:        "docutils",
			Language:    "Python",
			Kind:        KindSubprocess,
			Input:       InputFull,
			Detect:      Detection{PythonModule: "docutils"},
			Args:        []string{"-m", "docutils", "--writer=html"},
			InstallHint: "pip install docutils",
		},
		{
			Name:        "Pandoc",
			Language:    "Haskell",
			Kind:        KindSubprocess,
			Input:       InputFull,
			Detect:      Detection{PathBinary: "pandoc"},
			Args:        []string{"-f", "rst", "-t", "html"},
			InstallHint: "brew install pandoc",
		},
		{
			Name:        "Sphinx",
			Language:    "Python",
			Kind:        KindMultiStepDir,
			Input:       InputFull,
			Detect:      Detection{PythonModule: "sphinx"},
			InstallHint: "pip install sphinx",
		},
		{
			Name:        "Nim rst2html",
			Language:    "Nim",
			Kind:        KindFileBased,
			Input:       InputSimplified,
			Detect:      Detection{PathBinary: "nim"},
			Args:        []string{"rst2html", "--hints:off"},
			InstallHint: "brew install nim",
			Footnote:    "Nim rst2html uses simplified input (no grid tables, admonitions, or topic/sidebar directives).",
		},
		{
			Name:     "Gregwar/RST",
			Language: "PHP",
			Kind:     KindSubprocess,
			Input:    InputSimplified,
			Detect: Detection{
				PathBinary:   "php",
				ManifestPath: "autoload.php",
			},
			InstallHint: "composer require gregwar/rst",
			Footnote:    "Gregwar/RST uses simplified input (roles/directives stripped) due to limited RST support.",
		},
		{
			Name:     "goldmark",
			Language: "Go",
			Kind:     KindInProcess,
			Input:    InputMarkdown,
			Detect:   Detection{Builtin: true},
			Footnote: "goldmark converts a Markdown rendition of the sample, not RST; shown for scale only.",
		},
	}
}
