package commons

import (
	"errors"
	"testing"
)

func TestErrorResponseDropsEmptyMessages(t *testing.T) {
	response := ErrorResponse[struct{}]("validation failed", "", "amount is required")
	if response.Success {
		t.Fatal("expected failure envelope")
	}
	if len(response.Errors) != 1 || response.Errors[0] != "amount is required" {
		t.Fatalf("errors=%v", response.Errors)
	}

	if got := ErrorResponse[struct{}]("Account not found"); got.Errors != nil {
		t.Fatalf("expected nil errors, got %v", got.Errors)
	}
}

func TestErrorFrom(t *testing.T) {
	response := ErrorFrom[struct{}]("validation failed", errors.New("boom"))
	if len(response.Errors) != 1 || response.Errors[0] != "boom" {
		t.Fatalf("errors=%v", response.Errors)
	}
	if got := ErrorFrom[struct{}]("x", nil); got.Errors != nil {
		t.Fatalf("expected nil errors, got %v", got.Errors)
	}
}

func TestSuccessResponse(t *testing.T) {
	response := SuccessResponse("ok", 42)
	if !response.Success || response.Data == nil || *response.Data != 42 {
		t.Fatalf("response=%+v", response)
	}
}
