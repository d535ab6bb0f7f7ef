package test

import (
	"net/http/httptest"

	"github.com/emicklei/go-restful"
)

// StartMockServer mounts the routes registered by handlerLoader on a fresh go-restful container
// and serves it from an httptest server, caller must Close it.
func StartMockServer(handlerLoader func(*restful.WebService)) *httptest.Server {
	svcContainer := restful.NewContainer()
	ws := new(restful.WebService)
	if handlerLoader != nil {
		handlerLoader(ws)
	}
	svcContainer.Add(ws)
	return httptest.NewServer(svcContainer)
}
