package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	api "github.com/dx3mirror/IntegralCalculator/api/v1alpha1"
	"github.com/dx3mirror/IntegralCalculator/internal/handlers/validator"
	"github.com/dx3mirror/IntegralCalculator/internal/service"
	"github.com/dx3mirror/IntegralCalculator/internal/service/mappers"
	"github.com/dx3mirror/IntegralCalculator/pkg/requestid"
)

type ServiceHandler struct {
	calculationSrv *service.CalculationService
}

func NewServiceHandler(calculationService *service.CalculationService) *ServiceHandler {
	return &ServiceHandler{
		calculationSrv: calculationService,
	}
}

// (POST /api/v1alpha1/calculations)
func (s *ServiceHandler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	body := api.CalculationCreate{}
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		renderError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	v := validator.NewValidator()
	v.Register(validator.NewCalculationValidationRules()...)
	if err := v.Struct(body); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	calculation, err := s.calculationSrv.Compute(r.Context(), mappers.CalculationFormFromApi(body))
	if err != nil {
		switch err.(type) {
		case *service.ErrInvalidCalculation:
			renderError(w, r, http.StatusBadRequest, err.Error())
		default:
			renderError(w, r, http.StatusInternalServerError, "failed to compute the calculation")
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, mappers.CalculationToApi(calculation))
}

// (GET /api/v1alpha1/calculations)
func (s *ServiceHandler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	var filter *service.CalculationFilter
	if rule := r.URL.Query().Get("rule"); rule != "" {
		filter = service.NewCalculationFilter(service.WithRule(rule))
	}

	calculations, err := s.calculationSrv.ListCalculations(r.Context(), filter)
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, "failed to list calculations")
		return
	}

	render.JSON(w, r, mappers.CalculationListToApi(calculations))
}

// (GET /api/v1alpha1/calculations/{id})
func (s *ServiceHandler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "invalid calculation id")
		return
	}

	calculation, err := s.calculationSrv.GetCalculation(r.Context(), id)
	if err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			renderError(w, r, http.StatusNotFound, err.Error())
		default:
			renderError(w, r, http.StatusInternalServerError, "failed to get the calculation")
		}
		return
	}

	render.JSON(w, r, mappers.CalculationToApi(*calculation))
}

// (DELETE /api/v1alpha1/calculations/{id})
func (s *ServiceHandler) DeleteCalculation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "invalid calculation id")
		return
	}

	if err := s.calculationSrv.DeleteCalculation(r.Context(), id); err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			renderError(w, r, http.StatusNotFound, err.Error())
		default:
			renderError(w, r, http.StatusInternalServerError, "failed to delete the calculation")
		}
		return
	}

	render.JSON(w, r, struct{}{})
}

// (GET /api/v1alpha1/rules)
func (s *ServiceHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	rules, defaultRule := s.calculationSrv.Rules()
	render.JSON(w, r, api.RuleList{Rules: rules, Default: defaultRule})
}

// (GET /health)
func (s *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, api.Error{Message: message, RequestId: requestid.FromContextPtr(r.Context())})
}
