package engine

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"homestock/internal/model"
)

// Candidate is a validated, typed update ready for merging.
type Candidate struct {
	Name     string
	Quantity float64
	Action   string

	Unit              model.Field[string]
	Category          model.Field[string]
	Location          model.Field[string]
	Brand             model.Field[string]
	Size              model.Field[string]
	Notes             model.Field[string]
	LowStockThreshold model.Field[float64]
	ExpirationDate    model.Field[time.Time]
}

// Normalize validates and coerces one raw update request into a Candidate.
// It returns a *ValidationError tagged with the offending field on failure.
// Tri-state optional fields pass through unchanged: absent means "leave the
// stored value alone", null/empty means "clear", a value means "set".
func Normalize(req model.UpdateRequest) (*Candidate, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationErr("name", "name is required")
	}

	quantity, err := parseQuantity(req.Quantity)
	if err != nil {
		return nil, err
	}

	action := strings.ToLower(strings.TrimSpace(req.Action))
	switch action {
	case model.ActionAdd, model.ActionSubtract, model.ActionSet:
	case "":
		return nil, validationErr("action", "action is required")
	default:
		return nil, validationErr("action", "unknown action %q (want add, subtract, or set)", req.Action)
	}

	if req.LowStockThreshold.Present && !req.LowStockThreshold.Null && req.LowStockThreshold.Value < 0 {
		return nil, validationErr("low_stock_threshold", "must not be negative")
	}

	expiration, err := parseExpiration(req.ExpirationDate)
	if err != nil {
		return nil, err
	}

	return &Candidate{
		Name:              name,
		Quantity:          quantity,
		Action:            action,
		Unit:              req.Unit,
		Category:          req.Category,
		Location:          req.Location,
		Brand:             req.Brand,
		Size:              req.Size,
		Notes:             req.Notes,
		LowStockThreshold: req.LowStockThreshold,
		ExpirationDate:    expiration,
	}, nil
}

// parseQuantity coerces a raw quantity (JSON number or numeric string) into
// a finite non-negative float.
func parseQuantity(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, validationErr("quantity", "quantity is required")
	}

	var q float64
	if err := json.Unmarshal(raw, &q); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, validationErr("quantity", "must be a number")
		}
		var perr error
		q, perr = strconv.ParseFloat(strings.TrimSpace(s), 64)
		if perr != nil {
			return 0, validationErr("quantity", "not a numeric value: %q", s)
		}
	}

	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, validationErr("quantity", "must be finite")
	}
	if q < 0 {
		return 0, validationErr("quantity", "must not be negative")
	}
	return q, nil
}

// storeTimestamp is the seconds/nanoseconds object shape produced by some
// document-store client libraries, with or without underscore prefixes.
type storeTimestamp struct {
	Seconds      *int64 `json:"seconds"`
	Nanoseconds  *int64 `json:"nanoseconds"`
	USeconds     *int64 `json:"_seconds"`
	UNanoseconds *int64 `json:"_nanoseconds"`
}

// parseExpiration normalizes the expiration date into a tri-state instant.
// Accepted value shapes, dispatched explicitly in order: ISO-8601 string,
// epoch-milliseconds number, and a seconds/nanoseconds timestamp object.
// Anything else is a per-item validation error, never a silent default.
func parseExpiration(raw json.RawMessage) (model.Field[time.Time], error) {
	var none model.Field[time.Time]
	if len(raw) == 0 {
		return none, nil
	}

	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		return model.Clear[time.Time](), nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return none, validationErr("expiration_date", "invalid date string")
		}
		t, err := parseDateString(s)
		if err != nil {
			return none, validationErr("expiration_date", "unparseable date string %q", s)
		}
		return model.Set(t), nil

	case '{':
		var ts storeTimestamp
		if err := json.Unmarshal(trimmed, &ts); err != nil {
			return none, validationErr("expiration_date", "invalid timestamp object")
		}
		sec, nsec := ts.Seconds, ts.Nanoseconds
		if sec == nil {
			sec, nsec = ts.USeconds, ts.UNanoseconds
		}
		if sec == nil {
			return none, validationErr("expiration_date", "timestamp object missing seconds")
		}
		var ns int64
		if nsec != nil {
			ns = *nsec
		}
		return model.Set(time.Unix(*sec, ns).UTC()), nil

	default:
		var ms float64
		if err := json.Unmarshal(trimmed, &ms); err != nil {
			return none, validationErr("expiration_date", "unsupported date value")
		}
		if math.IsNaN(ms) || math.IsInf(ms, 0) {
			return none, validationErr("expiration_date", "epoch milliseconds must be finite")
		}
		return model.Set(time.UnixMilli(int64(ms)).UTC()), nil
	}
}

func parseDateString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &time.ParseError{Layout: time.RFC3339, Value: s}
}
