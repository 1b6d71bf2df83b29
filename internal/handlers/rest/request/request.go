package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"bakeryops/internal/entities"
	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidBody   = errors.New("invalid request body")
	ErrInvalidQuery  = errors.New("invalid query parameter")
	ErrInvalidParams = errors.New("request validation failed")
)

// DefaultOperator используется, когда оператор не передан в запросе.
const DefaultOperator = "default"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// DecodeJSON читает тело запроса в dest и проверяет validate-теги DTO.
func DecodeJSON(r *http.Request, dest any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	if err := validate.Struct(dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			fields := make([]string, 0, len(validationErrs))
			for _, fieldErr := range validationErrs {
				fields = append(fields, fieldErr.Namespace()+" "+fieldErr.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalidParams, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

// Day разбирает параметр day (YYYY-MM-DD) как полночь в часовом поясе магазина.
// Пустое значение - nil.
func Day(r *http.Request, location *time.Location) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("day"))
	if raw == "" {
		return nil, nil
	}

	day, err := time.ParseInLocation(time.DateOnly, raw, location)
	if err != nil {
		return nil, fmt.Errorf("%w: day %q", ErrInvalidQuery, raw)
	}
	return &day, nil
}

func Method(r *http.Request) (*entities.FulfillmentMethod, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("method"))
	if raw == "" {
		return nil, nil
	}

	method := entities.FulfillmentMethod(raw)
	switch method {
	case entities.StorePickup, entities.HomeDelivery:
		return &method, nil
	default:
		return nil, fmt.Errorf("%w: method %q", ErrInvalidQuery, raw)
	}
}

func Search(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("q"))
}

func Operator(r *http.Request) string {
	operator := strings.TrimSpace(r.URL.Query().Get("operator"))
	if operator == "" {
		return DefaultOperator
	}
	return operator
}

func Bool(r *http.Request, key string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	switch strings.ToLower(raw) {
	case "":
		return false, nil
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s %q", ErrInvalidQuery, key, raw)
	}
}
