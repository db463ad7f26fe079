package app

import (
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"sync"
)

var entryName = regexp.MustCompile(`entry\[@name='([^']+)'\]`)

// fakeDevice is a stateful PAN-OS XML API double.
type fakeDevice struct {
	mu      sync.Mutex
	key     string
	scopes  map[string][][2]string // scope -> ordered (name, ip-netmask)
	parents map[string]string
	renames int
}

func newFirewall(objs ...[2]string) *fakeDevice {
	return &fakeDevice{key: "K", scopes: map[string][][2]string{"": objs}, parents: map[string]string{}}
}

func (f *fakeDevice) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	q := r.URL.Query()
	if q.Get("type") == "keygen" {
		if q.Get("user") == "admin" && q.Get("password") == "paloalto" {
			fmt.Fprintf(w, `<response status="success"><result><key>%s</key></result></response>`, f.key)
			return
		}
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `<response status="error" code="403"><result><msg>Invalid Credential</msg></result></response>`)
		return
	}
	if q.Get("key") != f.key {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `<response status="error" code="403"><result><msg>Invalid credentials.</msg></result></response>`)
		return
	}

	xpath := q.Get("xpath")
	switch {
	case q.Get("type") == "op":
		f.writeHierarchy(w)
	case q.Get("action") == "get" && strings.HasSuffix(xpath, "/device-group"):
		var b strings.Builder
		for _, name := range f.groups() {
			fmt.Fprintf(&b, `<entry name="%s"/>`, name)
		}
		fmt.Fprintf(w, `<response status="success"><result><device-group>%s</device-group></result></response>`, b.String())
	case q.Get("action") == "get":
		var b strings.Builder
		for _, o := range f.scopes[f.scopeOf(xpath)] {
			fmt.Fprintf(&b, `<entry name="%s"><ip-netmask>%s</ip-netmask></entry>`, o[0], o[1])
		}
		fmt.Fprintf(w, `<response status="success"><result><address>%s</address></result></response>`, b.String())
	case q.Get("action") == "rename":
		names := entryName.FindAllStringSubmatch(xpath, -1)
		scope := f.scopeOf(xpath)
		target := names[len(names)-1][1]
		for i, o := range f.scopes[scope] {
			if o[0] == target {
				f.scopes[scope][i][0] = q.Get("newname")
				f.renames++
				fmt.Fprint(w, `<response status="success" code="20"><msg>command succeeded</msg></response>`)
				return
			}
		}
		fmt.Fprint(w, `<response status="error" code="7"><msg><line>No such node</line></msg></response>`)
	default:
		w.WriteHeader(http.StatusBadRequest)
	}
}

// scopeOf returns the device group named in xpath, or "" for the firewall.
func (f *fakeDevice) scopeOf(xpath string) string {
	if !strings.Contains(xpath, "/device-group/") {
		return ""
	}
	return entryName.FindStringSubmatch(xpath)[1]
}

func (f *fakeDevice) writeHierarchy(w http.ResponseWriter) {
	var write func(parent string) string
	write = func(parent string) string {
		var b strings.Builder
		for _, name := range f.groups() {
			if f.parents[name] == parent {
				fmt.Fprintf(&b, `<dg name="%s">%s</dg>`, name, write(name))
			}
		}
		return b.String()
	}
	fmt.Fprintf(w, `<response status="success"><result><dg-hierarchy>%s</dg-hierarchy></result></response>`, write(""))
}

// groups returns the device group names sorted.
func (f *fakeDevice) groups() []string {
	var out []string
	for name := range f.scopes {
		if name != "" {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func (f *fakeDevice) names(scope string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, o := range f.scopes[scope] {
		out = append(out, o[0])
	}
	return out
}
