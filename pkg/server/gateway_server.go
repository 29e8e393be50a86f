package server

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/config"
	"github.com/teatime-labs/moodgate/pkg/server/router"
)

type (
	GatewayServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	GatewayServer struct {
		*BaseServer
	}
)

// NewGatewayServer serves the classification function and the journal API
// from a single fiber app.
func NewGatewayServer(di GatewayServerDI) (*GatewayServer, error) {
	base, err := NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...)
	if err != nil {
		return nil, err
	}
	return &GatewayServer{BaseServer: base}, nil
}

func (s *GatewayServer) Run() error {
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting gateway server")
	return s.Router.Listen(addr)
}

func (s *GatewayServer) Shutdown() error {
	return errors.Join(s.Router.Shutdown(), s.shutdownMetrics())
}
