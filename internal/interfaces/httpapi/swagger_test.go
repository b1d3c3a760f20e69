package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestOpenAPIForServer_RewritesServers(t *testing.T) {
	t.Parallel()

	body, err := openAPIForServer("https://api.infootball.example")
	if err != nil {
		t.Fatalf("rewrite servers: %v", err)
	}

	var doc struct {
		Info struct {
			Title string `yaml:"title"`
		} `yaml:"info"`
		Servers []struct {
			URL string `yaml:"url"`
		} `yaml:"servers"`
		Paths map[string]any `yaml:"paths"`
	}
	if err := yaml.Unmarshal(body, &doc); err != nil {
		t.Fatalf("decode rewritten document: %v", err)
	}
	if len(doc.Servers) != 1 || doc.Servers[0].URL != "https://api.infootball.example" {
		t.Fatalf("unexpected servers: %+v", doc.Servers)
	}
	if doc.Info.Title != "InFootball API" || doc.Paths["/api/v1/transfers/{transferID}"] == nil {
		t.Fatalf("expected document content to survive the rewrite")
	}
}

func TestRequestBaseURL(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "http://localhost:3001/openapi.yaml", nil)
	if got := requestBaseURL(r); got != "http://localhost:3001" {
		t.Fatalf("unexpected base url: %s", got)
	}

	r.Header.Set("X-Forwarded-Proto", "https")
	if got := requestBaseURL(r); !strings.HasPrefix(got, "https://") {
		t.Fatalf("expected forwarded scheme, got %s", got)
	}
}
