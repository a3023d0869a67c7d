package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizePayloadMasksSensitiveKeys(t *testing.T) {
	payload := map[string]any{
		"accountNumber": "0101213200",
		"channelKey":    "secret",
		"nested": map[string]any{
			"Password": "hunter2",
			"amount":   "12.50",
		},
	}

	got, ok := SanitizePayload(payload).(map[string]any)
	if !ok {
		t.Fatalf("unexpected sanitized type %T", got)
	}
	if got["accountNumber"] != "0101213200" {
		t.Fatalf("accountNumber=%v", got["accountNumber"])
	}
	if got["channelKey"] != "******" {
		t.Fatalf("channelKey not masked: %v", got["channelKey"])
	}
	nested := got["nested"].(map[string]any)
	if nested["Password"] != "******" || nested["amount"] != "12.50" {
		t.Fatalf("nested=%v", nested)
	}
}

func TestSanitizePayloadUnmarshalable(t *testing.T) {
	if got := SanitizePayload(make(chan int)); got != "<unavailable>" {
		t.Fatalf("got %v want <unavailable>", got)
	}
}

func TestInfoAndErrorWriteFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := Set(zap.New(core))
	defer restore()

	Info("deposit", Fields{"accountNumber": "A", "authorization": "Basic abc"})
	Error("withdraw failed", errors.New("boom"), Fields{"accountNumber": "B"})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries=%d want 2", len(entries))
	}

	info := entries[0].ContextMap()
	if info["accountNumber"] != "A" || info["authorization"] != "******" {
		t.Fatalf("info fields=%v", info)
	}

	if entries[1].Level != zapcore.ErrorLevel {
		t.Fatalf("level=%s want error", entries[1].Level)
	}
	errFields := entries[1].ContextMap()
	if errFields["error"] != "boom" || errFields["accountNumber"] != "B" {
		t.Fatalf("error fields=%v", errFields)
	}
}

func TestWarnWritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	restore := Set(zap.New(core))
	defer restore()

	Info("below threshold", nil)
	Warn("default credential in use", Fields{"channelId": "GreyApp", "channelKey": "GreyhoundKey001"})

	entries := logs.All()
	if len(entries) != 1 || entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("entries=%v", entries)
	}
	fields := entries[0].ContextMap()
	if fields["channelId"] != "GreyApp" || fields["channelKey"] != "******" {
		t.Fatalf("warn fields=%v", fields)
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	if err := Init("chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
