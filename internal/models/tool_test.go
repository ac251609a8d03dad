package models

import "testing"

func TestBuiltinToolsOrder(t *testing.T) {
	tools := BuiltinTools()
	want := []string{
		"rst2html-fast",
		"docutils",
		"Pandoc",
		"Sphinx",
		"Nim rst2html",
		"Gregwar/RST",
		"goldmark",
	}
	if len(tools) != len(want) {
		t.Fatalf("BuiltinTools() returned %d tools, want %d", len(tools), len(want))
	}
	for i, name := range want {
		if tools[i].Name != name {
			t.Errorf("tools[%d].Name = %q, want %q", i, tools[i].Name, name)
		}
	}
	if tools[0].Name != PrimaryToolName {
		t.Errorf("first tool = %q, want primary %q", tools[0].Name, PrimaryToolName)
	}
}

func TestBuiltinToolsDetection(t *testing.T) {
	for _, tool := range BuiltinTools() {
		t.Run(tool.Name, func(t *testing.T) {
			d := tool.Detect
			strategies := 0
			if d.Builtin {
				strategies++
			}
			if len(d.BuildPaths) > 0 {
				strategies++
			}
			if d.PythonModule != "" {
				strategies++
			}
			if d.PathBinary != "" {
				strategies++
			}
			if strategies != 1 {
				t.Errorf("tool %s declares %d detection strategies, want exactly 1", tool.Name, strategies)
			}
			if d.ManifestPath != "" && d.PathBinary == "" {
				t.Errorf("tool %s has a manifest requirement without a PATH binary", tool.Name)
			}
			if !d.Builtin && tool.InstallHint == "" {
				t.Errorf("tool %s has no install hint", tool.Name)
			}
		})
	}
}

func TestBuiltinToolsReducedInputsHaveFootnotes(t *testing.T) {
	for _, tool := range BuiltinTools() {
		if tool.Input != InputFull && tool.Footnote == "" {
			t.Errorf("tool %s runs on %s input but declares no footnote", tool.Name, tool.Input)
		}
		if tool.Input == InputFull && tool.Footnote != "" {
			t.Errorf("tool %s runs on full input but declares footnote %q", tool.Name, tool.Footnote)
		}
	}
}

func TestOutcomeSucceeded(t *testing.T) {
	avg := 0.0042
	tests := []struct {
		name    string
		outcome Outcome
		want    bool
	}{
		{name: "average present", outcome: Outcome{Tool: "docutils", AverageSeconds: &avg}, want: true},
		{name: "error", outcome: Outcome{Tool: "docutils", Err: "exit status 1"}, want: false},
		{name: "empty", outcome: Outcome{Tool: "docutils"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.Succeeded(); got != tt.want {
				t.Errorf("Succeeded() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResultSetSuccesses(t *testing.T) {
	avg := 1.5
	rs := ResultSet{
		"a": {Tool: "a", AverageSeconds: &avg},
		"b": {Tool: "b", Err: "boom"},
		"c": {Tool: "c", AverageSeconds: &avg},
	}
	if got := rs.Successes(); got != 2 {
		t.Errorf("Successes() = %d, want 2", got)
	}
	if got := (ResultSet{}).Successes(); got != 0 {
		t.Errorf("Successes() on empty set = %d, want 0", got)
	}
}
