package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Commands understood by App.Run.
const (
	CommandGen   = "gen"
	CommandBuild = "build"
	CommandKinds = "kinds"
)

// ErrInvalidConfig indicates a Config that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds everything one App run needs.
type Config struct {
	Command string `validate:"oneof=gen build kinds"`

	// gen
	Topology string        `validate:"required_if=Command gen"`
	Args     []interface{} `validate:"required_if=Command gen"`

	// build
	Manifest string `validate:"required_if=Command build"`

	// Out is a file for gen and a directory for build. Empty writes gen
	// output to stdout and makes build a dry run.
	Out    string
	Format string `validate:"omitempty,oneof=json yaml yml"`
	Verify bool

	LogFormat  string `validate:"oneof=text json"`
	LogLevel   string `validate:"oneof=debug info warn error"`
	MetricsOut string
}

var validate = validator.New()

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			field := strings.ToLower(e.Field())
			switch e.Tag() {
			case "oneof":
				msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", field, e.Param(), e.Value()))
			case "required_if":
				msgs = append(msgs, fmt.Sprintf("%s is required", field))
			default:
				msgs = append(msgs, fmt.Sprintf("%s failed %s", field, e.Tag()))
			}
		}

		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	return &cfg, nil
}
