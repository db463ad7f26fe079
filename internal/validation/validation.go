// Package validation holds the input grammars shared by the list loader and
// the interactive front end.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agentstation/addrename/pkg/constants"
	"github.com/agentstation/addrename/pkg/errors"
)

var (
	// objectNamePattern is the PAN-OS address object name grammar.
	objectNamePattern = regexp.MustCompile(`^[A-Za-z0-9][\w .-]{0,61}[\w.-]?$`)

	ipv4Pattern     = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)
	fqdnLabel       = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)
	tldPattern      = regexp.MustCompile(`^[a-zA-Z]{2,63}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,24}$`)
)

// ObjectName checks name against the address object name grammar.
func ObjectName(name string) error {
	if len(name) > constants.MaxObjectNameLength {
		return fmt.Errorf("name %q is %d characters, limit is %d", name, len(name), constants.MaxObjectNameLength)
	}
	if !objectNamePattern.MatchString(name) {
		return fmt.Errorf("name %q must start with a letter or digit and contain only letters, digits, spaces, '_', '.' or '-'", name)
	}
	return nil
}

// Host accepts a dotted IPv4 address or a fully qualified domain name.
func Host(host string) error {
	if ipv4Pattern.MatchString(host) || isFQDN(host) {
		return nil
	}
	return errors.NewValidationError("host", fmt.Sprintf("%q is not an IPv4 address or FQDN", host))
}

// Username accepts 3 to 24 letters, digits, '_' or '-'.
func Username(username string) error {
	if !usernamePattern.MatchString(username) {
		return errors.NewValidationError("username", "must be 3-24 letters, digits, '_' or '-'")
	}
	return nil
}

// Password accepts 5 to 50 characters of any kind.
func Password(password string) error {
	n := len([]rune(password))
	if n < 5 || n > 50 {
		return errors.NewValidationError("password", "must be 5-50 characters")
	}
	return nil
}

func isFQDN(host string) bool {
	if len(host) < 4 || len(host) > 253 {
		return false
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels[:len(labels)-1] {
		if !fqdnLabel.MatchString(l) {
			return false
		}
	}
	return tldPattern.MatchString(labels[len(labels)-1])
}
