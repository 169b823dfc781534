// Package constants provides shared constants for the gear-rental application.
package constants

// Pricing constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencySymbol prefixes every rendered rental price (South African rand)
	CurrencySymbol = "R"

	// DefaultDiscount is the kit discount fraction used when none is configured
	DefaultDiscount = 0.05

	// DefaultAdjustment is the price adjustment fraction used when none is configured
	DefaultAdjustment = 0.12
)

// Price adjustment signs
const (
	// SignIncrease raises prices by the adjustment fraction
	SignIncrease = "+"

	// SignDecrease lowers prices by the adjustment fraction
	SignDecrease = "-"

	// DefaultSign is the adjustment sign used when none is configured
	DefaultSign = SignIncrease
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Logging constants
const (
	// DefaultLogLevel is the log level used when neither config nor CLI set one
	DefaultLogLevel = "info"

	// LogFormatJSON writes one JSON object per log entry
	LogFormatJSON = "json"

	// LogFormatConsole writes human-readable log lines
	LogFormatConsole = "console"

	// DefaultLogFormat is the log format used when none is configured
	DefaultLogFormat = LogFormatJSON
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Inventory node kinds as written in configuration files
const (
	KindCamera     = "camera"
	KindHighSpeed  = "highspeed"
	KindLens       = "lens"
	KindCollection = "collection"
	KindKit        = "kit"
)

// Rendering constants
const (
	// IndentWidth is the number of spaces per depth level in pretty output
	IndentWidth = 4

	// LabelTotalBefore labels a kit's sum of rental prices before discount
	LabelTotalBefore = "Total before discount:"

	// LabelTotalAfter labels a kit's sum of rental prices after discount
	LabelTotalAfter = "Total after discount:"

	// LabelDiscount labels the amount saved by renting the kit
	LabelDiscount = "Total discount amount:"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)
