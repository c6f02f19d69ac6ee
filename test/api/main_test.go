package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rs/zerolog"

	enrollmentHandler "github.com/clinicore/health-api/internal/handler/enrollment"
	healthHandler "github.com/clinicore/health-api/internal/handler/health"
	patientHandler "github.com/clinicore/health-api/internal/handler/patient"
	programHandler "github.com/clinicore/health-api/internal/handler/program"
	"github.com/clinicore/health-api/internal/middleware"
	"github.com/clinicore/health-api/internal/model"
	"github.com/clinicore/health-api/internal/repository/memory"
	"github.com/clinicore/health-api/internal/router"
	enrollmentService "github.com/clinicore/health-api/internal/service/enrollment"
	patientService "github.com/clinicore/health-api/internal/service/patient"
	programService "github.com/clinicore/health-api/internal/service/program"
	"github.com/clinicore/health-api/pkg/auth"
)

const apiKey = "securekey123"

var server *httptest.Server

// apiResponse wraps the response envelope for assertions.
type apiResponse struct {
	StatusCode int
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func (r apiResponse) IsSuccess() bool {
	return r.Status == "success"
}

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)

	patientStore := memory.NewPatientStore()
	programStore := memory.NewProgramStore()

	patientSvc := patientService.NewService(patientStore)
	programSvc := programService.NewService(programStore)
	enrollmentSvc := enrollmentService.NewService(patientStore, programStore)

	seedPrograms(programSvc)

	r := router.New(
		middleware.NewAPIKeyMiddleware(auth.NewStaticVerifier(apiKey), ""),
		healthHandler.NewHandler(patientStore, programStore),
		patientHandler.NewHandler(patientSvc, enrollmentSvc),
		programHandler.NewHandler(programSvc),
		enrollmentHandler.NewHandler(enrollmentSvc),
		router.DefaultConfig(),
	)

	server = httptest.NewServer(r.Engine())
	code := m.Run()
	server.Close()
	os.Exit(code)
}

func seedPrograms(svc *programService.Service) {
	samples := []*model.CreateProgramRequest{
		{
			Name:           "Diabetes Management",
			ProgramType:    "chronic",
			TargetAgeGroup: "30-80",
			RiskFactors:    []string{"obesity", "family history"},
		},
		{
			Name:           "Child Vaccination Program",
			ProgramType:    "preventive",
			TargetAgeGroup: "0-12",
			RiskFactors:    []string{"low birth weight"},
		},
	}
	for _, req := range samples {
		if _, err := svc.Create(context.Background(), req); err != nil {
			panic(fmt.Sprintf("failed to seed %q: %v", req.Name, err))
		}
	}
}

func makeRequest(t *testing.T, method, path string, body interface{}, key string) apiResponse {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(middleware.DefaultAPIKeyHeader, key)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var response apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	response.StatusCode = resp.StatusCode
	return response
}

// decodeData unmarshals the envelope's data field into target.
func decodeData(t *testing.T, resp apiResponse, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Data, target); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
}
