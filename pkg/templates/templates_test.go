package templates_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-adaptergen/pkg/answers"
	"github.com/goliatone/go-adaptergen/pkg/form"
	"github.com/goliatone/go-adaptergen/pkg/renderers/react"
	"github.com/goliatone/go-adaptergen/pkg/scaffold"
	"github.com/goliatone/go-adaptergen/pkg/settings"
	"github.com/goliatone/go-adaptergen/pkg/templates"
	"github.com/goliatone/go-adaptergen/pkg/testsupport"
)

func newDispatcher(t *testing.T, opts ...templates.Option) *scaffold.Dispatcher {
	t.Helper()

	reg, err := templates.Registry(opts...)
	if err != nil {
		t.Fatalf("templates registry: %v", err)
	}
	return scaffold.NewDispatcher(reg)
}

func TestRegistry_FixedOrder(t *testing.T) {
	reg, err := templates.Registry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	want := []string{
		templates.SettingsComponent,
		templates.AdapterConfigTypings,
		templates.DevcontainerDockerfile,
	}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_Goldens(t *testing.T) {
	a := testsupport.MustLoadAnswers(t, filepath.Join("testdata", "answers.yaml"))

	files, err := newDispatcher(t).Generate(a)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	wantPaths := []string{
		"admin/src/components/settings.tsx",
		"src/lib/adapter-config.d.ts",
		templates.DevcontainerDockerfilePath,
	}
	if diff := cmp.Diff(wantPaths, testsupport.Paths(files)); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	goldens := map[string]string{
		"admin/src/components/settings.tsx":  "settings.tsx.golden",
		"src/lib/adapter-config.d.ts":        "adapter-config.d.ts.golden",
		templates.DevcontainerDockerfilePath: "Dockerfile.golden",
	}
	for path, golden := range goldens {
		file := testsupport.MustFile(t, files, path)
		goldenPath := filepath.Join("testdata", golden)
		if testsupport.WriteMaybeGolden(t, goldenPath, []byte(file.Content)) {
			continue
		}
		want := string(testsupport.MustReadGolden(t, goldenPath))
		if diff := testsupport.CompareGolden(want, file.Content); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestSettingsComponent_Gating(t *testing.T) {
	d := newDispatcher(t)

	cases := []struct {
		name    string
		answers answers.Answers
		want    bool
	}{
		{name: "defaults", answers: answers.Answers{}, want: false},
		{name: "typescript only", answers: answers.Answers{}.WithLanguage("TypeScript"), want: false},
		{name: "react only", answers: answers.Answers{}.WithAdminReact("yes"), want: false},
		{name: "javascript react", answers: answers.Answers{}.WithLanguage("JavaScript").WithAdminReact("yes"), want: false},
		{name: "typescript react", answers: answers.Answers{}.WithLanguage("TypeScript").WithAdminReact("yes"), want: true},
	}
	for _, tc := range cases {
		_, ok, err := d.GenerateOne(templates.SettingsComponent, tc.answers)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if ok != tc.want {
			t.Fatalf("%s: want emitted=%v, got %v", tc.name, tc.want, ok)
		}
	}
}

func TestSettingsComponent_DefaultSettingsList(t *testing.T) {
	d := newDispatcher(t)
	a := answers.Answers{}.WithLanguage("TypeScript").WithAdminReact("yes")

	file, ok, err := d.GenerateOne(templates.SettingsComponent, a)
	if err != nil || !ok {
		t.Fatalf("generate: ok=%v err=%v", ok, err)
	}
	testsupport.AssertContains(t, file.Content,
		`{this.renderCheckbox("Option 1", "option1")}<br />`,
		`{this.renderInput("Option 2", "option2", "text")}`,
	)
}

func TestSettingsComponent_EmptyListIsWellFormed(t *testing.T) {
	d := newDispatcher(t)
	a := answers.Answers{}.WithLanguage("TypeScript").WithAdminReact("yes").WithSettings()

	file, ok, err := d.GenerateOne(templates.SettingsComponent, a)
	if err != nil || !ok {
		t.Fatalf("generate: ok=%v err=%v", ok, err)
	}
	testsupport.AssertContains(t, file.Content, "<form className={this.props.classes.tab}>\n\t\t\t</form>")
	if strings.Contains(file.Content, "this.renderInput(\"") {
		t.Fatalf("expected no controls, got:\n%s", file.Content)
	}
}

func TestSettingsComponent_Deterministic(t *testing.T) {
	d := newDispatcher(t)
	a := testsupport.MustLoadAnswers(t, filepath.Join("testdata", "answers.yaml"))

	first, _, err := d.GenerateOne(templates.SettingsComponent, a)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, _, err := d.GenerateOne(templates.SettingsComponent, a)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.Content != second.Content {
		t.Fatalf("settings component output is not deterministic")
	}
}

func TestSettingsComponent_CustomFormRenderer(t *testing.T) {
	d := newDispatcher(t, templates.WithFormRenderer(react.New(react.WithSeparator(""))))
	a := answers.Answers{}.WithLanguage("TypeScript").WithAdminReact("yes").WithSettings(
		settings.Field{Key: "a"},
		settings.Field{Key: "b"},
	)

	file, _, err := d.GenerateOne(templates.SettingsComponent, a)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if strings.Contains(file.Content, "<br />") {
		t.Fatalf("expected custom separator, got:\n%s", file.Content)
	}
}

func TestSettingsComponent_UnsupportedCustomKindFails(t *testing.T) {
	rules := form.NewRules()
	rules.Register("slider", 100, func(field settings.Field) bool { return field.InputType == "range" })

	d := newDispatcher(t, templates.WithRules(rules))
	a := answers.Answers{}.WithLanguage("TypeScript").WithAdminReact("yes").WithSettings(
		settings.Field{Key: "level", InputType: "range"},
	)

	if _, err := d.Generate(a); err == nil || !strings.Contains(err.Error(), templates.SettingsComponent) {
		t.Fatalf("expected error naming the template, got %v", err)
	}
}

func TestAdapterConfigTypings_Gating(t *testing.T) {
	d := newDispatcher(t)

	if _, ok, err := d.GenerateOne(templates.AdapterConfigTypings, answers.Answers{}); err != nil || ok {
		t.Fatalf("expected omission for JavaScript, got ok=%v err=%v", ok, err)
	}
	file, ok, err := d.GenerateOne(templates.AdapterConfigTypings, answers.Answers{}.WithLanguage("TypeScript"))
	if err != nil || !ok {
		t.Fatalf("generate: ok=%v err=%v", ok, err)
	}
	testsupport.AssertContains(t, file.Content,
		"/** This is a checkbox option */\n\t\t\toption1: boolean;",
		"option2: string;",
	)
}

func TestAdapterConfigTypings_SelectUnionDedupes(t *testing.T) {
	d := newDispatcher(t)
	a := answers.Answers{}.WithLanguage("TypeScript").WithSettings(settings.Field{
		Key:       "mode",
		InputType: settings.InputSelect,
		Options: []settings.Option{
			{Value: "b", Text: "B"},
			{Value: "a", Text: "A"},
			{Value: "b", Text: "B again"},
		},
	})

	file, _, err := d.GenerateOne(templates.AdapterConfigTypings, a)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	testsupport.AssertContains(t, file.Content, `mode: "b" | "a";`)
}

func TestDevcontainerDockerfile_OverridePath(t *testing.T) {
	d := newDispatcher(t)

	variants := []answers.Answers{
		answers.Answers{}.WithTools("devcontainer"),
		answers.Answers{}.WithTools("devcontainer").WithLanguage("TypeScript").WithAdminReact("yes"),
		answers.Answers{}.WithTools("devcontainer").WithSettings(),
	}
	for i, a := range variants {
		file, ok, err := d.GenerateOne(templates.DevcontainerDockerfile, a)
		if err != nil || !ok {
			t.Fatalf("variant %d: ok=%v err=%v", i, ok, err)
		}
		if file.Path != templates.DevcontainerDockerfilePath {
			t.Fatalf("variant %d: unexpected path %q", i, file.Path)
		}
	}

	for i, a := range []answers.Answers{{}, answers.Answers{}.WithTools("vscode")} {
		if _, ok, err := d.GenerateOne(templates.DevcontainerDockerfile, a); err != nil || ok {
			t.Fatalf("omission variant %d: ok=%v err=%v", i, ok, err)
		}
	}
}

func TestNew_OverrideTemplatesFS(t *testing.T) {
	files := fstest.MapFS{
		"admin/src/components/settings.tsx.tmpl": {Data: []byte("<form>{{ form_body|safe }}</form>")},
		"src/lib/adapter-config.d.ts.tmpl":       {Data: []byte("interface AdapterConfig {}")},
		"_devcontainer/parcel/_Dockerfile.tmpl":  {Data: []byte("FROM node:20")},
	}
	d := newDispatcher(t, templates.WithTemplatesFS(files))

	file, _, err := d.GenerateOne(templates.DevcontainerDockerfile, answers.Answers{}.WithTools("devcontainer"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if file.Content != "FROM node:20" {
		t.Fatalf("expected override template, got %q", file.Content)
	}
}

func TestNew_MissingTemplateFailsConstruction(t *testing.T) {
	files := fstest.MapFS{
		"admin/src/components/settings.tsx.tmpl": {Data: []byte("<form></form>")},
	}
	if _, err := templates.New(templates.WithTemplatesFS(files)); err == nil {
		t.Fatalf("expected construction error for incomplete template tree")
	}
}

func TestSettingsTemplates_RejectInvalidSettings(t *testing.T) {
	d := newDispatcher(t)
	set, err := templates.New()
	if err != nil {
		t.Fatalf("new template set: %v", err)
	}
	base := answers.Answers{}.WithLanguage("TypeScript").WithAdminReact("yes")

	cases := []struct {
		name   string
		fields []settings.Field
		want   error
	}{
		{
			name:   "select without options",
			fields: []settings.Field{{Key: "mode", InputType: settings.InputSelect}},
			want:   settings.ErrMissingOptions,
		},
		{
			name: "duplicate key",
			fields: []settings.Field{
				{Key: "dup", InputType: settings.InputText},
				{Key: "dup", InputType: settings.InputCheckbox},
			},
			want: settings.ErrDuplicateKey,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := base.WithSettings(tc.fields...)
			for _, name := range []string{templates.SettingsComponent, templates.AdapterConfigTypings} {
				if _, _, err := d.GenerateOne(name, a); !errors.Is(err, tc.want) {
					t.Fatalf("%s: expected %v, got %v", name, tc.want, err)
				}
			}
			for _, tmpl := range set.Templates()[:2] {
				if _, err := tmpl.Generate(a); !errors.Is(err, tc.want) {
					t.Fatalf("%s called directly: expected %v, got %v", tmpl.Name, tc.want, err)
				}
			}
		})
	}
}
