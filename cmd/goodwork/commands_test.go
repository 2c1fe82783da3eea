package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type recordedRequest struct {
	Method      string
	Path        string
	Body        string
	Auth        string
	ContentType string
}

type testServer struct {
	server   *httptest.Server
	requests []recordedRequest
}

func newTestServer(t *testing.T, responses map[string]string) *testServer {
	t.Helper()
	ts := &testServer{}

	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body bytes.Buffer
		body.ReadFrom(r.Body)

		ts.requests = append(ts.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.RequestURI(),
			Body:        body.String(),
			Auth:        r.Header.Get("Authorization"),
			ContentType: r.Header.Get("Content-Type"),
		})

		key := r.Method + " " + r.URL.Path
		if resp, ok := responses[key]; ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(resp))
			return
		}

		w.WriteHeader(404)
		w.Write([]byte(`{"error":{"message":"not found","type":"not_found"}}`))
	}))

	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *testServer) client() *apiClient {
	return &apiClient{
		baseURL:    ts.server.URL,
		token:      "test-token",
		httpClient: ts.server.Client(),
	}
}

var ctx = context.Background()

func TestProfileSet(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"PATCH /profile": `{"version":2,"personal":{"beruf":"Biologin"}}`,
	})

	client := ts.client()
	resp, err := client.patch(ctx, "/profile", map[string]string{"personal.beruf": "Biologin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]any
	if err := decodeJSON(resp, &doc); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	if len(ts.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(ts.requests))
	}
	r := ts.requests[0]
	if r.Auth != "Bearer test-token" {
		t.Errorf("auth = %q, want Bearer test-token", r.Auth)
	}

	var sentBody map[string]string
	if err := json.Unmarshal([]byte(r.Body), &sentBody); err != nil {
		t.Fatalf("body parse error: %v", err)
	}
	if sentBody["personal.beruf"] != "Biologin" {
		t.Errorf("body key = %q, want Biologin", sentBody["personal.beruf"])
	}
}

func TestScreeningSubmit(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"POST /screenings/riasec": `{"riasec":{"holland":{"code":"IAS"}}}`,
	})

	client := ts.client()
	resp, err := client.post(ctx, "/screenings/riasec", map[string]any{
		"ratings": map[string]int{"r1": 7, "i1": 9},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]any
	if err := decodeJSON(resp, &doc); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	riasec := doc["riasec"].(map[string]any)
	holland := riasec["holland"].(map[string]any)
	if holland["code"] != "IAS" {
		t.Errorf("code = %v, want IAS", holland["code"])
	}

	var sent struct {
		Ratings map[string]int `json:"ratings"`
	}
	if err := json.Unmarshal([]byte(ts.requests[0].Body), &sent); err != nil {
		t.Fatalf("body parse error: %v", err)
	}
	if sent.Ratings["i1"] != 9 {
		t.Errorf("ratings[i1] = %d, want 9", sent.Ratings["i1"])
	}
}

func TestReportGenerate(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"POST /reports/coaching_tips": `{"kind":"coaching_tips","content":"## Tipps\n\n- erstens"}`,
	})

	client := ts.client()
	resp, err := client.post(ctx, "/reports/coaching_tips", map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result struct {
		Content string `json:"content"`
		Failed  bool   `json:"failed"`
	}
	if err := decodeJSON(resp, &result); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if result.Failed {
		t.Error("failed = true, want false")
	}
	if !strings.Contains(result.Content, "Tipps") {
		t.Errorf("content = %q, want it to contain Tipps", result.Content)
	}
}

func TestReportGenerate_FailedFlag(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"POST /reports/riasec_report": `{"kind":"riasec_report","content":"Fehler: Modell überlastet","failed":true}`,
	})

	client := ts.client()
	resp, err := client.post(ctx, "/reports/riasec_report", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result struct {
		Content string `json:"content"`
		Failed  bool   `json:"failed"`
	}
	if err := decodeJSON(resp, &result); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !result.Failed {
		t.Error("failed = false, want true")
	}
	if !strings.HasPrefix(result.Content, "Fehler:") {
		t.Errorf("content = %q, want Fehler: prefix", result.Content)
	}
}

func TestJobsSearch(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"POST /jobs/search": `[{"title":"Data Scientist","company":"ACME","location":"Köln","url":"https://example.org/job","matchingDegree":"hoch"}]`,
	})

	client := ts.client()
	resp, err := client.post(ctx, "/jobs/search", map[string]any{"region": "Köln"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var matches []struct {
		Title   string `json:"title"`
		Company string `json:"company"`
	}
	if err := decodeJSON(resp, &matches); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Title != "Data Scientist" {
		t.Errorf("title = %q", matches[0].Title)
	}

	var sent map[string]any
	if err := json.Unmarshal([]byte(ts.requests[0].Body), &sent); err != nil {
		t.Fatalf("body parse error: %v", err)
	}
	if sent["region"] != "Köln" {
		t.Errorf("region = %v, want Köln", sent["region"])
	}
}

func TestResumeUpload(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"POST /profile/resume": `{"text":"Biologin mit Laborerfahrung"}`,
	})

	client := ts.client()
	resp, err := client.postRaw(ctx, "/profile/resume", "text/html", []byte("<p>Biologin</p>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(resp, &result); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if result.Text == "" {
		t.Error("expected extracted text")
	}

	if ts.requests[0].ContentType != "text/html" {
		t.Errorf("content type = %q, want text/html", ts.requests[0].ContentType)
	}
}

func TestReportHistoryPath(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"GET /reports/history": `[{"id":"11112222-3333","kind":"coaching_tips","created_at":"2026-01-01T00:00:00Z"}]`,
	})

	client := ts.client()
	path := fmt.Sprintf("/reports/history?limit=%d", 10)
	resp, err := client.get(ctx, path+"&kind=coaching_tips")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var records []struct {
		ID   string `json:"id"`
		Kind string `json:"kind"`
	}
	if err := decodeJSON(resp, &records); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(records) != 1 || records[0].Kind != "coaching_tips" {
		t.Errorf("records = %+v", records)
	}

	reqPath := ts.requests[0].Path
	if !strings.Contains(reqPath, "limit=10") || !strings.Contains(reqPath, "kind=coaching_tips") {
		t.Errorf("unexpected path: %q", reqPath)
	}
}

func TestDecodeJSON_ErrorResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(409)
		w.Write([]byte(`{"error":{"message":"RIASEC-Screening fehlt","type":"precondition_failed"}}`))
	}))
	defer ts.Close()

	client := &apiClient{baseURL: ts.URL, token: "t", httpClient: ts.Client()}
	resp, err := client.post(ctx, "/reports/riasec_report", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = decodeJSON(resp, &map[string]any{})
	if err == nil {
		t.Fatal("expected error for 409 response")
	}
	if !strings.Contains(err.Error(), "409") || !strings.Contains(err.Error(), "precondition_failed") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestServerUnreachable(t *testing.T) {
	ts := newTestServer(t, map[string]string{})
	ts.server.Close()

	client := ts.client()
	_, err := client.get(ctx, "/health")
	if err == nil {
		t.Fatal("expected error for stopped server")
	}
	if !strings.Contains(err.Error(), "not reachable") {
		t.Errorf("error = %q, want it to mention 'not reachable'", err.Error())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("kurz", 80); got != "kurz" {
		t.Errorf("truncate short = %q", got)
	}
	long := strings.Repeat("ä", 100)
	got := truncate(long, 80)
	if len([]rune(got)) != 83 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncate long = %d runes, suffix %q", len([]rune(got)), got[len(got)-3:])
	}
}

func TestNoColorFlag(t *testing.T) {
	old := noColor
	defer func() { noColor = old }()

	noColor = true
	result := colorize(colorGreen, "test message")
	if strings.Contains(result, "\033[") {
		t.Errorf("colorize with noColor=true should not contain ANSI codes, got %q", result)
	}
	if result != "test message" {
		t.Errorf("result = %q, want %q", result, "test message")
	}

	noColor = false
	result = colorize(colorGreen, "test message")
	if !strings.Contains(result, "\033[") {
		t.Errorf("colorize with noColor=false should contain ANSI codes, got %q", result)
	}
}
