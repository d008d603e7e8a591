package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/n9te9/graphql-operation-generator/generator"
	"github.com/n9te9/graphql-operation-generator/output"
)

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	w := output.NewWriter(dir, "generated", true)
	if err := w.Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	docs := []*generator.Document{
		{
			Kind: generator.QueryOperation,
			Name: "user",
			Text: "query user($id: ID!) {\n  user(id: $id) {\n    id\n  }\n}",
		},
		{
			Kind: generator.MutationOperation,
			Name: "createUser",
			Text: "mutation createUser($name: String) {\n  createUser(name: $name) {\n    id\n  }\n}",
		},
	}

	for _, doc := range docs {
		path, err := w.Write(doc)
		if err != nil {
			t.Fatalf("write %s: %v", doc.Name, err)
		}
		want := filepath.Join(dir, "generated", string(doc.Kind), doc.Name+".gql")
		if path != want {
			t.Errorf("path = %q, want %q", path, want)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if diff := cmp.Diff(doc.Text, string(got)); diff != "" {
			t.Errorf("file content mismatch (-want +got):\n%s", diff)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "generated", "subscription")); !os.IsNotExist(err) {
		t.Errorf("unused kind directory must not be created, stat err = %v", err)
	}
}

func TestWriter_PrepareClearsPreviousRun(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "generated", "query", "removed.gql")
	if err := os.MkdirAll(filepath.Dir(stale), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("query removed { removed }"), 0o644); err != nil {
		t.Fatal(err)
	}
	keep := filepath.Join(dir, "hand-written.gql")
	if err := os.WriteFile(keep, []byte("query mine { mine }"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := output.NewWriter(dir, "generated", false).Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("stale file survived, stat err = %v", err)
	}
	if _, err := os.Stat(keep); err != nil {
		t.Errorf("files outside gen_dir must be kept: %v", err)
	}
}

func TestWriter_Validate(t *testing.T) {
	tests := []struct {
		name     string
		validate bool
		doc      *generator.Document
		wantErr  bool
	}{
		{
			name:     "unbalanced braces",
			validate: true,
			doc:      &generator.Document{Kind: generator.QueryOperation, Name: "broken", Text: "query broken {\n  broken {\n}"},
			wantErr:  true,
		},
		{
			name:     "kind mismatch",
			validate: true,
			doc:      &generator.Document{Kind: generator.MutationOperation, Name: "user", Text: "query user {\n  user\n}"},
			wantErr:  true,
		},
		{
			name:     "validation disabled",
			validate: false,
			doc:      &generator.Document{Kind: generator.QueryOperation, Name: "broken", Text: "query broken {\n  broken {\n}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			w := output.NewWriter(dir, "generated", tt.validate)
			if err := w.Prepare(); err != nil {
				t.Fatalf("prepare: %v", err)
			}

			path, err := w.Write(tt.doc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			var invalid *output.InvalidDocumentError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidDocumentError, got %T", err)
			}
			if invalid.Path != w.Path(tt.doc) {
				t.Errorf("error path = %q, want %q", invalid.Path, w.Path(tt.doc))
			}
			if path != "" {
				t.Errorf("no path expected on failure, got %q", path)
			}
			if _, err := os.Stat(w.Path(tt.doc)); !os.IsNotExist(err) {
				t.Errorf("invalid document must not be written, stat err = %v", err)
			}
		})
	}
}
