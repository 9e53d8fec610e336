package inference_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"StrokeRiskAssessment/internal/inference"
	"StrokeRiskAssessment/internal/models"
)

var sampleRequest = models.AssessmentRequest{
	Age:             67,
	Gender:          "Male",
	Hypertension:    1,
	HeartDisease:    0,
	AvgGlucoseLevel: 228.69,
	BMI:             36.6,
	EverMarried:     "Yes",
	ResidenceType:   "Urban",
	WorkType:        "Private",
	SmokingStatus:   "formerly smoked",
}

func newServer(t *testing.T, status int, body string, calls *int32, seen *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %q", ct)
		}
		if seen != nil {
			raw, _ := io.ReadAll(r.Body)
			if err := json.Unmarshal(raw, seen); err != nil {
				t.Errorf("request body is not JSON: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPredict_Success(t *testing.T) {
	var calls int32
	var seen map[string]any
	srv := newServer(t, http.StatusOK, `{"risk_level":"High","risk_probability":0.82,"message":"Elevated risk"}`, &calls, &seen)

	client := inference.NewClient(srv.URL, 0)
	got, err := client.Predict(context.Background(), sampleRequest)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	want := &models.AssessmentResult{RiskLevel: "High", RiskProbability: 0.82, Message: "Elevated risk"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	wantBody := map[string]any{
		"age":               67.0,
		"gender":            "Male",
		"hypertension":      1.0,
		"heart_disease":     0.0,
		"avg_glucose_level": 228.69,
		"bmi":               36.6,
		"ever_married":      "Yes",
		"Residence_type":    "Urban",
		"work_type":         "Private",
		"smoking_status":    "formerly smoked",
	}
	if diff := cmp.Diff(wantBody, seen); diff != "" {
		t.Fatalf("outbound body mismatch (-want +got):\n%s", diff)
	}
}

func TestPredict_SuccessDefaults(t *testing.T) {
	cases := map[string]string{
		"empty object": `{}`,
		"nulls":        `{"risk_level":null,"risk_probability":null,"message":null}`,
		"not json":     `<html>ok</html>`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := newServer(t, http.StatusOK, body, nil, nil)
			got, err := inference.NewClient(srv.URL, 0).Predict(context.Background(), sampleRequest)
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}
			want := &models.AssessmentResult{RiskLevel: "Unknown", RiskProbability: 0, Message: "Unknown"}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPredict_APIError(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, `{"error":"model unavailable"}`, nil, nil)

	got, err := inference.NewClient(srv.URL, 0).Predict(context.Background(), sampleRequest)
	if got != nil {
		t.Fatalf("expected nil result, got %+v", got)
	}
	var apiErr *inference.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	want := &inference.APIError{StatusCode: 500, ErrorText: "model unavailable", Details: "No details"}
	if diff := cmp.Diff(want, apiErr); diff != "" {
		t.Fatalf("api error mismatch (-want +got):\n%s", diff)
	}

	msg := inference.Message(err)
	if !strings.Contains(msg, "model unavailable") || !strings.Contains(msg, "No details") {
		t.Fatalf("Message() = %q", msg)
	}
}

func TestPredict_APIErrorDefaults(t *testing.T) {
	srv := newServer(t, http.StatusBadRequest, `not json at all`, nil, nil)

	_, err := inference.NewClient(srv.URL, 0).Predict(context.Background(), sampleRequest)
	if got, want := inference.Message(err), "ML API Error: Unknown error - No details"; got != want {
		t.Fatalf("Message() = %q, want %q", got, want)
	}
}

func TestPredict_StripsMarkup(t *testing.T) {
	srv := newServer(t, http.StatusBadGateway, `{"error":"<b>model</b> down","details":"a & b <script>x()</script>"}`, nil, nil)

	_, err := inference.NewClient(srv.URL, 0).Predict(context.Background(), sampleRequest)
	var apiErr *inference.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.ErrorText != "model down" {
		t.Errorf("ErrorText = %q", apiErr.ErrorText)
	}
	if apiErr.Details != "a & b" {
		t.Errorf("Details = %q", apiErr.Details)
	}
}

func TestPredict_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	got, err := inference.NewClient(url, 0).Predict(context.Background(), sampleRequest)
	if got != nil {
		t.Fatalf("expected nil result, got %+v", got)
	}
	var transportErr *inference.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
	if transportErr.Unwrap() == nil {
		t.Fatal("TransportError must wrap the cause")
	}
	msg := inference.Message(err)
	if !strings.HasPrefix(msg, "Server Error: ") || len(msg) == len("Server Error: ") {
		t.Fatalf("Message() = %q", msg)
	}
}

func TestPredict_CanceledContext(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{}`, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := inference.NewClient(srv.URL, 0).Predict(ctx, sampleRequest)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestNewClient_DefaultEndpoint(t *testing.T) {
	if got := inference.NewClient("", 0).Endpoint(); got != inference.DefaultEndpoint {
		t.Fatalf("Endpoint() = %q", got)
	}
}
