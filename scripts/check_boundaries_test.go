package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, root string, rel string, imports ...string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	var b strings.Builder
	b.WriteString("package x\n\nimport (\n")
	for _, imp := range imports {
		b.WriteString("\t_ \"" + imp + "\"\n")
	}
	b.WriteString(")\n")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestCollectViolationsAcceptsLayeredService(t *testing.T) {
	root := t.TempDir()
	svc := modulePath + "/contexts/balloting/campaign-service"
	writeSource(t, root, "balloting/campaign-service/domain/entities/campaign.go", "time", svc+"/domain/errors")
	writeSource(t, root, "balloting/campaign-service/ports/ports.go", svc+"/domain/entities", modulePath+"/internal/shared/events")
	writeSource(t, root, "balloting/campaign-service/application/commands/vote.go", "log/slog", svc+"/ports", svc+"/application")
	writeSource(t, root, "balloting/campaign-service/adapters/postgres/repository.go", "gorm.io/gorm", svc+"/ports")
	writeSource(t, root, "balloting/campaign-service/module.go", svc+"/adapters/memory")

	if violations := collectViolations(root); len(violations) != 0 {
		t.Fatalf("expected no violations, got %+v", violations)
	}
}

func TestCollectViolationsReportsBrokenBoundaries(t *testing.T) {
	root := t.TempDir()
	svc := modulePath + "/contexts/balloting/campaign-service"
	writeSource(t, root, "balloting/campaign-service/domain/entities/campaign.go", "gorm.io/gorm")
	writeSource(t, root, "balloting/campaign-service/application/commands/vote.go", svc+"/adapters/memory")
	writeSource(t, root, "balloting/campaign-service/adapters/http/handler.go", modulePath+"/internal/platform/metrics")
	writeSource(t, root, "balloting/campaign-service/module.go", modulePath+"/contexts/identity-access/voter-directory")

	rules := map[string]string{}
	for _, v := range collectViolations(root) {
		rules[filepath.Base(v.File)] = v.Rule
	}
	want := map[string]string{
		"campaign.go": "domain must not import drivers; move it behind an adapter",
		"vote.go":     "application import is outside its allowlist",
		"handler.go":  "contexts must not import platform or app packages",
		"module.go":   "cross-module imports are forbidden",
	}
	for file, rule := range want {
		if rules[file] != rule {
			t.Fatalf("%s: expected rule %q, got %q", file, rule, rules[file])
		}
	}
}
