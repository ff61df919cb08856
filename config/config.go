// Package config loads static ARP entries from a TOML file.
//
//	[[entry]]
//	ip = "192.168.0.3"
//	mac = "aa:bb:cc:dd:ee:ff"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
)

type Config struct {
	Entries []Entry `toml:"entry" validate:"dive"`
}

type Entry struct {
	IP  string `toml:"ip" validate:"required,ipv4"`
	MAC string `toml:"mac" validate:"required,mac"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	// report fields by their toml key
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func Load(path string) (*Config, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(content)
}

func Parse(content []byte) (*Config, error) {
	var c Config
	if err := toml.Unmarshal(content, &c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse config file at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ValidationError names the entry and field that failed.
type ValidationError struct {
	Index   int
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("entry.%d.%s: %s", e.Index, e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(ve), strings.Join(msgs, "; "))
}

func (c *Config) Validate() error {
	var errs ValidationErrors
	seen := make(map[string]int)
	for i := range c.Entries {
		if err := validate.Struct(&c.Entries[i]); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return err
			}
			for _, e := range verrs {
				errs = append(errs, ValidationError{Index: i, Field: e.Field(), Message: message(e)})
			}
			continue
		}
		ip, err := ipv4.StringToIPAddress(c.Entries[i].IP)
		if err != nil {
			errs = append(errs, ValidationError{Index: i, Field: "ip", Message: "must be a valid IPv4 address"})
			continue
		}
		if first, ok := seen[ip.String()]; ok {
			errs = append(errs, ValidationError{Index: i, Field: "ip", Message: fmt.Sprintf("duplicate of entry.%d", first)})
			continue
		}
		seen[ip.String()] = i
		if _, err := ethernet.StringToHardwareAddress(c.Entries[i].MAC); err != nil {
			errs = append(errs, ValidationError{Index: i, Field: "mac", Message: "must be a 6 byte hardware address"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "ipv4":
		return "must be a valid IPv4 address"
	case "mac":
		return "must be a valid hardware address"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// Addresses returns the parsed form of e. It only fails for entries that
// did not pass Validate.
func (e Entry) Addresses() (ipv4.IPAddress, ethernet.HardwareAddress, error) {
	ip, err := ipv4.StringToIPAddress(e.IP)
	if err != nil {
		return ipv4.IPAddress{}, ethernet.HardwareAddress{}, err
	}
	mac, err := ethernet.StringToHardwareAddress(e.MAC)
	if err != nil {
		return ipv4.IPAddress{}, ethernet.HardwareAddress{}, err
	}
	return *ip, *mac, nil
}
