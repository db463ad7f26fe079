package app

import (
	"context"
	"strings"

	"github.com/agentstation/addrename/internal/config"
	"github.com/agentstation/addrename/internal/panos"
	"github.com/agentstation/addrename/internal/validation"
	"github.com/agentstation/addrename/pkg/errors"
)

// Connect opens an authenticated session. A configured api_key is used as
// is; otherwise keygen runs with the configured or prompted credentials.
// Rejected credentials are prompted for again, and a connection failure
// aborts.
func (a *App) Connect(ctx context.Context, s *config.Settings) (*panos.Session, error) {
	p := a.Prompter()

	host := s.Host
	if host == "" {
		var err error
		if host, err = p.Host(); err != nil {
			return nil, err
		}
	} else if !strings.Contains(host, "://") {
		if err := validation.Host(host); err != nil {
			return nil, err
		}
	}

	sess, err := panos.NewSession(host, panos.Options{
		Timeout:     s.Timeout,
		Insecure:    s.Insecure,
		Vsys:        s.Vsys,
		KeyInHeader: s.KeyHeader,
	})
	if err != nil {
		return nil, err
	}

	if s.APIKey != "" {
		sess.SetAPIKey(s.APIKey)
		return sess, nil
	}

	user, password := s.Username, s.Password
	for {
		if user == "" {
			if user, err = p.Username(); err != nil {
				return nil, err
			}
		}
		if password == "" {
			if password, err = p.Password(); err != nil {
				return nil, err
			}
		}

		_, err = sess.Keygen(ctx, user, password)
		if err == nil {
			a.logger.Debug().Str("host", sess.Host()).Str("user", user).Msg("Authenticated")
			return sess, nil
		}
		if !errors.IsAuthentication(err) {
			return nil, err
		}

		a.logger.Warn().Err(err).Msg("Keygen rejected")
		p.BadCredentials()
		user, password = "", ""
	}
}
