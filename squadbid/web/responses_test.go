package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/squadbid/squadbid/squadbid/engine"
)

func errorApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return SendEngineError(c, err)
	})
	return app
}

func TestSendEngineError_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation refusal",
			err:        &engine.Error{Code: engine.CodeInsufficientPurse, Message: "too rich for you"},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INSUFFICIENT_PURSE",
		},
		{
			name:       "stale bid conflict",
			err:        &engine.Error{Code: engine.CodeBidOutdated, Current: 500, NextRequired: 550},
			wantStatus: http.StatusConflict,
			wantCode:   "BID_OUTDATED",
		},
		{
			name:       "invalid lifecycle move",
			err:        &engine.Error{Code: engine.CodeInvalidTransition},
			wantStatus: http.StatusConflict,
			wantCode:   "INVALID_TRANSITION",
		},
		{
			name:       "lock timeout is retryable",
			err:        &engine.Error{Code: engine.CodeLockTimeout},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "LOCK_TIMEOUT",
		},
		{
			name:       "setup validation",
			err:        fmt.Errorf("%w: bad purse", engine.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "unknown fault stays internal",
			err:        fmt.Errorf("pg: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := errorApp(tt.err)
			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var body APIResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Success {
				t.Error("Success = true on an error response")
			}
			if body.Error == nil || body.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", body.Error, tt.wantCode)
			}
		})
	}
}

func TestSendEngineError_BidOutdatedCarriesAdvice(t *testing.T) {
	app := errorApp(&engine.Error{
		Code:         engine.CodeBidOutdated,
		Message:      "bid of 500 lost the race",
		Current:      500,
		NextRequired: 550,
	})
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	var body APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Current != 500 || body.Error.NextRequired != 550 {
		t.Errorf("advice = current %d next %d, want 500 and 550", body.Error.Current, body.Error.NextRequired)
	}
}

func TestRequireController(t *testing.T) {
	app := fiber.New()
	app.Get("/guarded", RequireController("hunter2"), func(c *fiber.Ctx) error {
		return SendSuccess(c, nil, "in")
	})

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"correct token", "hunter2", http.StatusOK},
		{"wrong token", "hunter3", http.StatusUnauthorized},
		{"missing token", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tt.token != "" {
				req.Header.Set(headerControllerToken, tt.token)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestIdentify(t *testing.T) {
	app := fiber.New()
	app.Use(Identify("hunter2"))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return SendSuccess(c, Caller(c), "")
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(headerCaptainID, "cap-9")
	req.Header.Set(headerControllerToken, "hunter2")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Data CallerIdentity `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Data.IsController || body.Data.CaptainID != "cap-9" {
		t.Errorf("caller = %+v, want controller with captain cap-9", body.Data)
	}
}
