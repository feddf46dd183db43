package passgen

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// BuildPool concatenates the alphabets of every enabled class in the fixed
// order uppercase, lowercase, numbers, symbols. It returns an empty string
// when no class is enabled.
func BuildPool(cfg Config) string {
	var pool string
	if cfg.Uppercase {
		pool += uppercaseChars
	}
	if cfg.Lowercase {
		pool += lowercaseChars
	}
	if cfg.Numbers {
		pool += numberChars
	}
	if cfg.Symbols {
		pool += symbolChars
	}
	return pool
}

// EnabledClasses returns the names of the enabled character classes.
func EnabledClasses(cfg Config) []string {
	var classes []string
	if cfg.Uppercase {
		classes = append(classes, "uppercase")
	}
	if cfg.Lowercase {
		classes = append(classes, "lowercase")
	}
	if cfg.Numbers {
		classes = append(classes, "numbers")
	}
	if cfg.Symbols {
		classes = append(classes, "symbols")
	}
	return classes
}
