package homework

import (
	"errors"
	"reflect"
	"testing"
)

func TestCheckResponseMalformedPayloads(t *testing.T) {
	cases := []struct {
		name     string
		payload  any
		wantKind MalformedKind
	}{
		{name: "not a mapping", payload: []any{"homeworks"}, wantKind: KindNotAMapping},
		{name: "nil payload", payload: nil, wantKind: KindNotAMapping},
		{name: "empty mapping", payload: map[string]any{}, wantKind: KindEmptyMapping},
		{name: "missing homeworks key", payload: map[string]any{"current_date": float64(1)}, wantKind: KindMissingKey},
		{name: "homeworks not a sequence", payload: map[string]any{"homeworks": "nope"}, wantKind: KindNotASequence},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CheckResponse(tc.payload)
			var malformed *MalformedResponseError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedResponseError, got %v", err)
			}
			if malformed.Kind != tc.wantKind {
				t.Errorf("kind = %s, want %s", malformed.Kind, tc.wantKind)
			}
		})
	}
}

func TestCheckResponseReturnsSequenceUnchanged(t *testing.T) {
	record := map[string]any{"homework_name": "diplom1", "status": "approved"}
	payload := map[string]any{
		"homeworks":    []any{record},
		"current_date": float64(1700000100),
	}

	homeworks, err := CheckResponse(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(homeworks) != 1 || !reflect.DeepEqual(homeworks[0], record) {
		t.Errorf("sequence changed: %v", homeworks)
	}
}

func TestCheckResponseIsIdempotent(t *testing.T) {
	payload := map[string]any{
		"homeworks": []any{map[string]any{"status": "reviewing"}},
	}

	first, err1 := CheckResponse(payload)
	second, err2 := CheckResponse(payload)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two validations of the same payload differ: %v vs %v", first, second)
	}
}

func TestCurrentDate(t *testing.T) {
	cases := []struct {
		name    string
		payload any
		want    int64
		wantOK  bool
	}{
		{name: "present", payload: map[string]any{"homeworks": []any{}, "current_date": float64(1700000000)}, want: 1700000000, wantOK: true},
		{name: "absent", payload: map[string]any{"homeworks": []any{}}, wantOK: false},
		{name: "wrong type", payload: map[string]any{"current_date": "soon"}, wantOK: false},
		{name: "not a mapping", payload: "nope", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CurrentDate(tc.payload)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("cursor = %d, want %d", got, tc.want)
			}
		})
	}
}
