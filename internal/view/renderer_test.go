package view

import (
	"strings"
	"testing"
)

type headerData struct {
	PageTitle     string
	Authenticated bool
	Username      string
	CustID        uint64
}

func TestNewParsesAllTemplates(t *testing.T) {
	if _, err := New(); err != nil {
		t.Fatalf("parse templates: %v", err)
	}
}

func TestHomeRendersForAnonymousAndAuthenticated(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}

	var anon strings.Builder
	if err := r.Render(&anon, "home", headerData{PageTitle: "Home"}, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(anon.String(), "/login") {
		t.Error("anonymous home must link to the login page")
	}
	if strings.Contains(anon.String(), "My Queue") {
		t.Error("anonymous nav must not link to a queue")
	}

	var authed strings.Builder
	data := headerData{PageTitle: "Home", Authenticated: true, Username: "alice1", CustID: 7}
	if err := r.Render(&authed, "home", data, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(authed.String(), "/queue/7") {
		t.Error("authenticated nav must link to the customer's queue")
	}
	if !strings.Contains(authed.String(), "alice1") {
		t.Error("authenticated nav must name the customer")
	}
}

func TestNotFoundRendersMessage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}

	data := struct {
		headerData
		Message string
	}{headerData{PageTitle: "Not Found"}, "No such show."}

	var out strings.Builder
	if err := r.Render(&out, "not_found", data, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), "No such show.") {
		t.Error("message missing from the not-found page")
	}
}
