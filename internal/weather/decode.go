package weather

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DecodeError reports a forecast payload that is not valid JSON or lacks
// a field the message needs.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode forecast response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeResponse parses and validates a raw forecast API body.
func DecodeResponse(body []byte) (Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return Response{}, &DecodeError{Err: err}
	}

	if err := validate.Struct(resp); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return Response{}, &DecodeError{Err: fmt.Errorf("field %s failed %q check", verrs[0].Namespace(), verrs[0].Tag())}
		}
		return Response{}, &DecodeError{Err: err}
	}

	if today := resp.today(); today != nil {
		if err := checkToday(today); err != nil {
			return Response{}, err
		}
	}

	return resp, nil
}

// checkToday reports fields the message needs from today's entry.
func checkToday(f *Forecast) error {
	if f.ChanceOfRain == nil {
		return &DecodeError{Err: fmt.Errorf("forecast %q has no chanceOfRain", f.DateLabel)}
	}
	return nil
}
