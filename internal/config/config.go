// Package config loads docshift's settings: a docshift.yaml in the
// working directory or ~/.config/docshift/, overridable through
// DOCSHIFT_* environment variables. All settings have working defaults;
// a missing config file is not an error.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/yuanying/docshift/internal/convert"
)

// Styles configures the typography the rewrite phase normalizes toward.
type Styles struct {
	BodyFont     string  `mapstructure:"body_font"`
	BodySizePt   float64 `mapstructure:"body_size_pt"`
	MonoFont     string  `mapstructure:"mono_font"`
	ReplaceSerif string  `mapstructure:"replace_serif"`
}

// Config is the full settings tree.
type Config struct {
	// Timeout bounds each external-engine invocation.
	Timeout time.Duration  `mapstructure:"timeout"`
	Tuning  convert.Tuning `mapstructure:"tuning"`
	Styles  Styles         `mapstructure:"styles"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Timeout: convert.DefaultTimeout,
		Tuning:  convert.DefaultTuning(),
		Styles: Styles{
			BodyFont:     "Calibri",
			BodySizePt:   11,
			MonoFont:     "Consolas",
			ReplaceSerif: "times",
		},
	}
}

// Load reads the configuration. With a non-empty path only that file is
// read, and it must exist; otherwise the search path is consulted and a
// missing file falls back to the defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("DOCSHIFT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("docshift")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/docshift")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("timeout", d.Timeout)

	v.SetDefault("tuning.connected_border_tolerance", d.Tuning.ConnectedBorderTolerance)
	v.SetDefault("tuning.min_section_height", d.Tuning.MinSectionHeight)
	v.SetDefault("tuning.line_overlap_threshold", d.Tuning.LineOverlapThreshold)
	v.SetDefault("tuning.line_break_width_ratio", d.Tuning.LineBreakWidthRatio)
	v.SetDefault("tuning.line_break_free_space_ratio", d.Tuning.LineBreakFreeSpaceRatio)
	v.SetDefault("tuning.new_paragraph_free_space_ratio", d.Tuning.NewParagraphFreeSpaceRatio)
	v.SetDefault("tuning.float_image_ignorable_gap", d.Tuning.FloatImageIgnorableGap)
	v.SetDefault("tuning.page_margin_factor_top", d.Tuning.PageMarginFactorTop)
	v.SetDefault("tuning.page_margin_factor_bottom", d.Tuning.PageMarginFactorBottom)

	v.SetDefault("styles.body_font", d.Styles.BodyFont)
	v.SetDefault("styles.body_size_pt", d.Styles.BodySizePt)
	v.SetDefault("styles.mono_font", d.Styles.MonoFont)
	v.SetDefault("styles.replace_serif", d.Styles.ReplaceSerif)
}
