package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"

	api "github.com/dx3mirror/IntegralCalculator/api/v1alpha1"
	"github.com/dx3mirror/IntegralCalculator/pkg/version"
)

// (GET /api/v1alpha1/info)
func (s *ServiceHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()

	render.JSON(w, r, api.Info{
		GitCommit:   versionInfo.GitCommit,
		VersionName: versionInfo.GitVersion,
	})
}
