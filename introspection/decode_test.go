package introspection_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/n9te9/graphql-operation-generator/generator"
	"github.com/n9te9/graphql-operation-generator/introspection"
)

func TestDecodeFile_TypeGraph(t *testing.T) {
	s, err := introspection.DecodeFile("testdata/introspection.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	graph, err := s.TypeGraph()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if graph.QueryTypeName() != "Query" || graph.MutationTypeName() != "Mutation" || graph.SubscriptionTypeName() != "" {
		t.Errorf("unexpected roots %q %q %q", graph.QueryTypeName(), graph.MutationTypeName(), graph.SubscriptionTypeName())
	}

	if _, err := graph.ResolveType("__Schema"); err == nil {
		t.Errorf("introspection meta types must be skipped")
	}

	fields, err := graph.FieldsOf("User")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for _, f := range fields {
		got = append(got, f.Name+": "+f.Type.String())
	}
	want := []string{"id: ID!", "name: String", "friends: [User!]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("User fields mismatch (-want +got):\n%s", diff)
	}

	mutation, err := graph.ResolveType("Mutation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	createUser, ok := mutation.Field("createUser")
	if !ok {
		t.Fatalf("createUser not found")
	}
	if dv := createUser.Args[0].DefaultValue; dv == nil || *dv != `"anonymous"` {
		t.Errorf("default value not kept: %v", dv)
	}
}

func TestDecodeFile_Generate(t *testing.T) {
	s, err := introspection.DecodeFile("testdata/introspection.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	graph, err := s.TypeGraph()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := generator.Assemble(graph, "user", "Query", generator.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "query user($id: ID!) {\n  user(id: $id) {\n    id\n    name\n  }\n}"
	if diff := cmp.Diff(want, doc.Text); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantQuery string
		wantErr   error
	}{
		{
			name:      "envelope",
			body:      `{"data":{"__schema":{"queryType":{"name":"Query"},"types":[]}}}`,
			wantQuery: "Query",
		},
		{
			name:      "bare schema",
			body:      `{"__schema":{"queryType":{"name":"RootQuery"},"types":[]}}`,
			wantQuery: "RootQuery",
		},
		{
			name:    "no schema",
			body:    `{"data":{}}`,
			wantErr: introspection.ErrNoSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := introspection.Decode(strings.NewReader(tt.body))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.QueryType.Name != tt.wantQuery {
				t.Errorf("query type = %q, want %q", s.QueryType.Name, tt.wantQuery)
			}
		})
	}
}

func TestDecode_GraphQLErrors(t *testing.T) {
	body := `{"errors":[{"message":"introspection disabled"},{"message":"unauthorized"}]}`

	_, err := introspection.Decode(strings.NewReader(body))

	var respErr *introspection.ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected ResponseError, got %v", err)
	}
	if len(respErr.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d", len(respErr.Errors))
	}
	if !strings.Contains(err.Error(), "introspection disabled; unauthorized") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestSchema_TypeGraphRequiresQueryType(t *testing.T) {
	s := &introspection.Schema{}
	if _, err := s.TypeGraph(); err == nil {
		t.Fatal("expected error for schema without query type")
	}
}
