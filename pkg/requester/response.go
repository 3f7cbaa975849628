package requester

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// maxBodySnippet bounds MalformedResponseError.Body.
const maxBodySnippet = 512

// Response is the success envelope returned for every call whose body carried
// a "data" field.
type Response struct {
	StatusCode int
	// Data is the nested "data" field, or the whole body for calls made with
	// WithTopLevelData.
	Data json.RawMessage
	// UnitsCharged is taken from the units_charged header. It is 0 when the
	// header is missing or not an integer.
	UnitsCharged int
}

// Decode unmarshals Data into v.
func (r *Response) Decode(v any) error {
	if r == nil || len(r.Data) == 0 {
		return fmt.Errorf("ensembledata: empty response data")
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("ensembledata: decode response data: %w", err)
	}
	return nil
}

// parseUnits reads the units_charged header. ok is false when the header is
// missing or unparseable.
func parseUnits(h http.Header) (units int, ok bool) {
	raw := strings.TrimSpace(h.Get(UnitsChargedHeader))
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	// "2.0" is a valid integer count for the API.
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == float64(int(f)) {
		return int(f), true
	}
	return 0, false
}

// classify turns a received response into either a Response or an error.
func classify(status int, units int, body []byte, topLevel bool) (*Response, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		if err == nil {
			err = fmt.Errorf("body is not a JSON object")
		}
		return nil, &MalformedResponseError{
			StatusCode:   status,
			UnitsCharged: units,
			Body:         snippet(body),
			Err:          err,
		}
	}

	if data, ok := fields["data"]; ok {
		resp := &Response{StatusCode: status, UnitsCharged: units, Data: data}
		if topLevel {
			resp.Data = json.RawMessage(bytes.TrimSpace(body))
		}
		return resp, nil
	}

	if detail, ok := fields["detail"]; ok {
		return nil, &APIError{
			StatusCode:   status,
			Detail:       detailText(detail),
			UnitsCharged: units,
		}
	}

	return nil, &MalformedResponseError{
		StatusCode:   status,
		UnitsCharged: units,
		Body:         snippet(body),
	}
}

// detailText returns the string value of detail, or its raw JSON text when it
// is not a string (validation errors come back as a list of objects).
func detailText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

func snippet(body []byte) []byte {
	if len(body) > maxBodySnippet {
		body = body[:maxBodySnippet]
	}
	return bytes.Clone(body)
}
