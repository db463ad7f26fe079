package list

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/addrename/internal/appcontext"
	"github.com/agentstation/addrename/internal/config"
	"github.com/agentstation/addrename/internal/panos"
)

func TestListDeviceGroup(t *testing.T) {
	var gotXPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotXPath = r.URL.Query().Get("xpath")
		fmt.Fprint(w, `<response status="success"><result><address>
			<entry name="hq-web"><ip-netmask>10.1.0.1</ip-netmask></entry>
			<entry name="hq-site"><fqdn>hq.example.com</fqdn></entry>
		</address></result></response>`)
	}))
	defer server.Close()

	app := &appcontext.Mock{
		ConnectFunc: func(context.Context, *config.Settings) (*panos.Session, error) {
			s, err := panos.NewSession(server.URL, panos.Options{})
			if err != nil {
				return nil, err
			}
			s.SetAPIKey("K")
			return s, nil
		},
	}

	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--device-group", "HQ"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "/config/devices/entry/device-group/entry[@name='HQ']/address", gotXPath)
	assert.Contains(t, out.String(), "hq-web")
	assert.Contains(t, out.String(), "hq.example.com")
}
