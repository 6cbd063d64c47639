package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/contractor-evaluation/internal/common"
	"github.com/spf13/viper"
)

// DefaultProjectID is used when no project id is given on the command line.
const DefaultProjectID = "001gK00000CdBPhQAN"

// FormConfig holds evaluation form settings.
type FormConfig struct {
	DefaultProjectID string
	Theme            string
	ToastDuration    time.Duration
}

// LoadFormConfig loads form settings from Viper, falling back to defaults.
func LoadFormConfig() (*FormConfig, error) {
	cfg := &FormConfig{
		DefaultProjectID: DefaultProjectID,
		Theme:            "default",
		ToastDuration:    200 * time.Millisecond,
	}

	if viper.IsSet("form.default_project_id") {
		cfg.DefaultProjectID = strings.TrimSpace(viper.GetString("form.default_project_id"))
	}
	if v := viper.GetString("form.theme"); v != "" {
		cfg.Theme = v
	}
	if viper.IsSet("form.toast_duration") {
		cfg.ToastDuration = viper.GetDuration("form.toast_duration")
	}

	if cfg.ToastDuration < 0 {
		return nil, fmt.Errorf("%w: form.toast_duration must not be negative", common.ErrInvalidConfig)
	}
	return cfg, nil
}
