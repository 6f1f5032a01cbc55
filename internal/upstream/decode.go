package upstream

import (
	"bytes"
	"encoding/json"
	"strings"

	"hrportal/internal/domain"
	"hrportal/internal/utils"
)

// ExtractMessage resolves the user-facing message for a failure:
// body.message, then body.error, then err, then the generic text.
func ExtractMessage(body []byte, err error) string {
	var probe struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	var fromError, transport string
	if len(bytes.TrimSpace(body)) > 0 && json.Unmarshal(body, &probe) == nil {
		fromError, _ = probe.Error.(string)
	} else {
		probe.Message = ""
	}
	if err != nil {
		transport = err.Error()
	}
	if m := utils.FirstNonEmpty(probe.Message, fromError, transport); m != "" {
		return strings.TrimSpace(m)
	}
	return domain.GenericErrorMessage
}

// decode unmarshals a JSON body. Anything that is not the expected JSON shape
// is reported as an invalid response format.
func decode(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.UpstreamError{Message: domain.InvalidResponseMessage, Err: err}
	}
	return nil
}

// decodeEntity accepts both a bare object and one wrapped as {"data": {...}}.
func decodeEntity(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapper); err == nil {
			if inner, ok := wrapper["data"]; ok && len(wrapper) <= 2 {
				if _, hasID := wrapper["id"]; !hasID {
					return decode(inner, out)
				}
			}
		}
	}
	return decode(trimmed, out)
}

// decodeAction turns a start/end style response into an ActionResult. The
// backend answers an already applied transition with a success-shaped body
// {"error": sentinel}; that becomes already_done rather than a failure.
func decodeAction[T any](raw []byte, sentinel, notice string) (domain.ActionResult[T], error) {
	var probe struct {
		Error   any    `json:"error"`
		Message string `json:"message"`
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' || json.Unmarshal(trimmed, &probe) != nil {
		return domain.ActionResult[T]{}, domain.UpstreamError{Message: domain.InvalidResponseMessage}
	}
	if s, ok := probe.Error.(string); ok && s != "" {
		if s == sentinel {
			return domain.AlreadyDone[T](notice), nil
		}
		return domain.Failed[T](utils.FirstNonEmpty(probe.Message, s)), nil
	}
	var v T
	if err := decodeEntity(trimmed, &v); err != nil {
		return domain.ActionResult[T]{}, err
	}
	return domain.OK(v), nil
}
