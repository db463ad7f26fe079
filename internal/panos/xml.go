package panos

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/agentstation/addrename/internal/transport"
	"github.com/agentstation/addrename/pkg/errors"
)

// envelope is the status wrapper every API response carries.
type envelope struct {
	XMLName xml.Name `xml:"response"`
	Status  string   `xml:"status,attr"`
	Code    string   `xml:"code,attr"`
	Msg     message  `xml:"msg"`
	Result  struct {
		Msg message `xml:"msg"`
	} `xml:"result"`
}

// message holds either plain text or a list of <line> elements.
type message struct {
	Text  string   `xml:",chardata"`
	Lines []string `xml:"line"`
}

func (m message) String() string {
	parts := make([]string, 0, len(m.Lines)+1)
	if t := strings.TrimSpace(m.Text); t != "" {
		parts = append(parts, t)
	}
	for _, l := range m.Lines {
		if t := strings.TrimSpace(l); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "; ")
}

func (e envelope) message() string {
	if msg := e.Result.Msg.String(); msg != "" {
		return msg
	}
	return e.Msg.String()
}

type keygenResult struct {
	Key string `xml:"result>key"`
}

type deviceGroupResult struct {
	Entries []struct {
		Name string `xml:"name,attr"`
	} `xml:"result>device-group>entry"`
}

type addressEntry struct {
	Name       string `xml:"name,attr"`
	IPNetmask  string `xml:"ip-netmask"`
	IPRange    string `xml:"ip-range"`
	IPWildcard string `xml:"ip-wildcard"`
	FQDN       string `xml:"fqdn"`
}

// value returns the object's value and the element it was stored under.
func (a addressEntry) value() (string, string) {
	switch {
	case a.IPNetmask != "":
		return strings.TrimSpace(a.IPNetmask), "ip-netmask"
	case a.IPRange != "":
		return strings.TrimSpace(a.IPRange), "ip-range"
	case a.IPWildcard != "":
		return strings.TrimSpace(a.IPWildcard), "ip-wildcard"
	case a.FQDN != "":
		return strings.TrimSpace(a.FQDN), "fqdn"
	}
	return "", ""
}

type addressResult struct {
	Entries []addressEntry `xml:"result>address>entry"`
}

type dgNode struct {
	Name     string   `xml:"name,attr"`
	Children []dgNode `xml:"dg"`
}

type hierarchyResult struct {
	Roots []dgNode `xml:"result>dg-hierarchy>dg"`
}

// findPath returns the names from a root down to the parent of name.
func findPath(nodes []dgNode, name string, trail []string) ([]string, bool) {
	for _, n := range nodes {
		if n.Name == name {
			return trail, true
		}
		next := append(append([]string(nil), trail...), n.Name)
		if p, ok := findPath(n.Children, name, next); ok {
			return p, true
		}
	}
	return nil, false
}

// decode checks the response status and unmarshals the body into v.
func decode(action string, resp *transport.Response, v any) error {
	var env envelope
	if err := xml.Unmarshal(resp.Body, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return &errors.APIError{Action: action, StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return errors.WrapParse("xml", action, err)
	}
	if resp.StatusCode != http.StatusOK || env.Status != "success" {
		return &errors.APIError{
			Action:     action,
			StatusCode: resp.StatusCode,
			Code:       env.Code,
			Message:    env.message(),
		}
	}
	if v == nil {
		return nil
	}
	if err := xml.Unmarshal(resp.Body, v); err != nil {
		return errors.WrapParse("xml", action, err)
	}
	return nil
}
