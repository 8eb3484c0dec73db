package importer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"proprofile/internal/importer"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// ─────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, "acme.json", `{"name":"Acme","industry":"Logistics","clients":["Globex"],"unknown":1}`)
	c, err := importer.Load(context.Background(), path, importer.Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Name != "Acme" || c.Industry != "Logistics" || len(c.Clients) != 1 {
		t.Errorf("got %+v", c)
	}
}

func TestLoad_JSONDataPath(t *testing.T) {
	path := writeFile(t, "wrapped.json", `{"data":{"company":{"name":"Acme","industry":"Retail"}}}`)
	c, err := importer.Load(context.Background(), path, importer.Options{DataPath: "data.company"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Name != "Acme" {
		t.Errorf("name = %q", c.Name)
	}

	if _, err := importer.Load(context.Background(), path, importer.Options{DataPath: "data.missing"}); err == nil {
		t.Error("expected error for a missing data path")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := importer.Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"), importer.Options{}); err == nil {
		t.Fatal("expected error")
	}
	if _, err := importer.Load(context.Background(), "", importer.Options{}); err == nil {
		t.Fatal("expected error for empty location")
	}
}

func TestValidate(t *testing.T) {
	if err := importer.Validate([]byte(`{"name":"Acme","history":[{"year":"2010","event":"Founded"}]}`)); err != nil {
		t.Fatalf("valid company rejected: %v", err)
	}
	err := importer.Validate([]byte(`{"name":5,"clients":"Globex","history":[{"year":2010}]}`))
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"name", "clients", "history"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error does not mention %s: %v", field, err)
		}
	}
	if err := importer.Validate([]byte(`[1, 2]`)); err == nil {
		t.Error("expected error for a non-object document")
	}
}

func TestLoad_RejectsInvalidJSONTypes(t *testing.T) {
	path := writeFile(t, "bad.json", `{"name":"Acme","values":[1,2]}`)
	if _, err := importer.Load(context.Background(), path, importer.Options{}); err == nil {
		t.Fatal("expected a schema error")
	}
}

// ─────────────────────────────────────────────────────────────
// CSV
// ─────────────────────────────────────────────────────────────

func TestReadCSV(t *testing.T) {
	c, err := importer.ReadCSV(strings.NewReader(`field,value,detail
name,Acme Logistics
Industry,Logistics
values,Integrity
values,Speed
history,2010,Founded in Jakarta
services,Freight,"Door-to-door, nationwide"
teamMembers,Budi,CEO
# comment rows are ignored
`))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if c.Name != "Acme Logistics" || c.Industry != "Logistics" {
		t.Errorf("text fields = %q / %q", c.Name, c.Industry)
	}
	if len(c.Values) != 2 || c.Values[1] != "Speed" {
		t.Errorf("values = %v", c.Values)
	}
	if len(c.History) != 1 || c.History[0].Year != "2010" {
		t.Errorf("history = %+v", c.History)
	}
	if len(c.Services) != 1 || c.Services[0].Description != "Door-to-door, nationwide" {
		t.Errorf("services = %+v", c.Services)
	}
	if len(c.TeamMembers) != 1 || c.TeamMembers[0].Role != "CEO" {
		t.Errorf("team = %+v", c.TeamMembers)
	}
}

func TestReadCSV_UnknownField(t *testing.T) {
	if _, err := importer.ReadCSV(strings.NewReader("name,Acme\nrevenue,1000\n")); err == nil {
		t.Fatal("expected error for unknown field")
	}
	if _, err := importer.ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestLoad_CSVFile(t *testing.T) {
	path := writeFile(t, "acme.csv", "name,Acme\nindustry,Retail\n")
	c, err := importer.Load(context.Background(), path, importer.Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Industry != "Retail" {
		t.Errorf("industry = %q", c.Industry)
	}
}

// ─────────────────────────────────────────────────────────────
// HTTP
// ─────────────────────────────────────────────────────────────

func TestLoad_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/company" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":{"name":"Acme","industry":"Energy"}}`))
	}))
	defer srv.Close()

	c, err := importer.Load(context.Background(), srv.URL+"/company", importer.Options{DataPath: "result", Client: srv.Client()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Industry != "Energy" {
		t.Errorf("industry = %q", c.Industry)
	}

	_, err = importer.Load(context.Background(), srv.URL+"/missing", importer.Options{Client: srv.Client()})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("expected http 404 error, got %v", err)
	}
}

func TestIsRemote(t *testing.T) {
	if !importer.IsRemote("https://example.com/c.json") || importer.IsRemote("/tmp/c.json") {
		t.Error("IsRemote misclassified a location")
	}
}
