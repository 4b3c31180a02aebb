package config

const (
	BuildVersion = "v0.1.0-BUILD_VERSION"

	OutputFormatText = "text"
	OutputFormatJSON = "json"

	DecimalPlacesMaximum = 32
)

var Banner = []string{
	"### Welcome to Fraction Fun ###",
	"Enter a fraction equation where arguments follow the convention W_n/d or n/d:",
	"Valid operators are + - x /",
	"Example: -2_4/7 x 3/8",
	"Example: 4/7 - -3",
}
