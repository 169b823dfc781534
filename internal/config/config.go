// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/iwvelando/gear-rental/pkg/constants"
	"github.com/iwvelando/gear-rental/pkg/validation"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override configuration
// values, e.g. GEAR_RENTAL_DISCOUNT=0.1.
const EnvPrefix = "GEAR_RENTAL"

// Configuration holds all configuration for gear-rental.
type Configuration struct {
	Discount   float64          `mapstructure:"discount"`
	Adjustment AdjustmentConfig `mapstructure:"adjustment"`
	Inventory  []NodeConfig     `mapstructure:"inventory"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Output     OutputConfig     `mapstructure:"output"`
}

// AdjustmentConfig holds the permanent price adjustment applied before
// discounting.
type AdjustmentConfig struct {
	Fraction float64 `mapstructure:"fraction"`
	Sign     string  `mapstructure:"sign"` // + or -
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format"` // pretty, csv
}

// NodeConfig describes one inventory node. Kind selects which of the other
// fields apply: camera and highspeed use the camera fields, lens uses
// LensType, kit uses Name, and kit and collection use Children.
type NodeConfig struct {
	Kind             string       `mapstructure:"kind"`
	Name             string       `mapstructure:"name"`
	Brand            string       `mapstructure:"brand"`
	Price            float64      `mapstructure:"price"`
	SensorType       string       `mapstructure:"sensorType"`
	Resolution       string       `mapstructure:"resolution"`
	DynamicRange     string       `mapstructure:"dynamicRange"`
	FrameRate        string       `mapstructure:"frameRate"`
	WorkflowSolution string       `mapstructure:"workflowSolution"`
	LensType         string       `mapstructure:"lensType"`
	Children         []NodeConfig `mapstructure:"children"`
}

// Default returns the configuration used when no config file is present.
func Default() *Configuration {
	return &Configuration{
		Discount: constants.DefaultDiscount,
		Adjustment: AdjustmentConfig{
			Fraction: constants.DefaultAdjustment,
			Sign:     constants.DefaultSign,
		},
		Output: OutputConfig{Format: constants.OutputFormatPretty},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults := Default()
	v.SetDefault("discount", defaults.Discount)
	v.SetDefault("adjustment.fraction", defaults.Adjustment.Fraction)
	v.SetDefault("adjustment.sign", defaults.Adjustment.Sign)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationOrDefault loads the configuration at configPath, falling
// back to defaults (still subject to environment overrides) when the file
// does not exist.
func LoadConfigurationOrDefault(configPath string) (*Configuration, bool, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		conf, err := decode(newViper())
		return conf, false, err
	}
	conf, err := LoadConfiguration(configPath)
	return conf, err == nil, err
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	validator := validation.ConfigValidator{
		Discount:   c.Discount,
		Adjustment: c.Adjustment.Fraction,
		Inventory:  toNodeInfo(c.Inventory),
	}
	return validator.ValidateAll()
}

func toNodeInfo(nodes []NodeConfig) []validation.NodeInfo {
	if nodes == nil {
		return nil
	}
	infos := make([]validation.NodeInfo, 0, len(nodes))
	for _, node := range nodes {
		infos = append(infos, validation.NodeInfo{
			Kind:     node.Kind,
			Name:     node.Name,
			Brand:    node.Brand,
			Price:    node.Price,
			Children: toNodeInfo(node.Children),
		})
	}
	return infos
}
