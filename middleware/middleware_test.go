package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/koda/middleware"
	"github.com/reoring/koda/source/fastjson"
	v "github.com/reoring/koda/validation"
)

type signup struct {
	Email string
	Age   int
}

func signupValidator() v.Validator[signup] {
	return v.Obj2(
		v.Key("email", v.String(v.Email())),
		v.Key("age", v.Integer(v.Minimum(13))),
		func(email string, age int) signup { return signup{email, age} },
	)
}

func serve(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body)))
	return rec
}

func TestValidateJSON(t *testing.T) {
	var logs bytes.Buffer
	opt := middleware.DefaultOptions()
	opt.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var got signup
	h := middleware.ValidateJSON(signupValidator(), opt)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := middleware.ValueFromContext[signup](r.Context())
		if !ok {
			t.Error("value missing from context")
		}
		got = s
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := serve(t, h, `{"email":"a@b.io","age":30}`)
	if rec.Code != http.StatusNoContent || got != (signup{"a@b.io", 30}) {
		t.Fatalf("code=%d got=%+v", rec.Code, got)
	}

	rec = serve(t, h, `{"email":"nope","age":3}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", rec.Code)
	}
	var payload struct {
		Errors map[string][]string `json:"errors"`
		Issues []struct {
			Path    string `json:"path"`
			Message string `json:"message"`
		} `json:"issues"`
	}
	if err := gojson.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Errors["age"][0] != "minimum allowed value is 13" || len(payload.Issues) != 2 || payload.Issues[0].Path != "/age" {
		t.Fatalf("payload: %s", rec.Body.String())
	}
	if !strings.Contains(logs.String(), "request body rejected") {
		t.Fatalf("expected a debug log, got %q", logs.String())
	}
}

func TestValidateJSON_BadData(t *testing.T) {
	h := middleware.ValidateJSON(signupValidator(), middleware.Options{Driver: fastjson.Driver()})(http.NotFoundHandler())
	cases := map[string]string{
		`{"email":"a@b.io","age":30,"age":31}`: `duplicate key "age"`,
		`{"email":`:                             "invalid json",
	}
	for body, want := range cases {
		rec := serve(t, h, body)
		var payload struct {
			Errors map[string]string `json:"errors"`
		}
		if err := gojson.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatal(err)
		}
		if rec.Code != http.StatusBadRequest || payload.Errors["bad data"] != want {
			t.Fatalf("%s: code=%d body=%s", body, rec.Code, rec.Body.String())
		}
	}
}

func TestDecode_BodyLimit(t *testing.T) {
	opt := middleware.Options{MaxBodyBytes: 8}
	r := middleware.Decode(strings.NewReader(`{"email":"a@b.io","age":30}`), signupValidator(), opt)
	e, bad := r.GetErr()
	if !bad {
		t.Fatal("expected failure")
	}
	if got := middleware.ErrorPayload(e)["errors"].(map[string]any)["bad data"]; got != "request body too large" {
		t.Fatalf("got %v", got)
	}
}
